package widget

import "github.com/decker502/tftui/pkg/display"

// Hold 普通按钮的按住反馈
//
// 流程：
//  1. 切换到按下配色并 Draw
//  2. 阻塞排空触摸源，直到手指离开
//  3. 切换到松开配色并 Draw
//
// 不修改开关状态
func (b *Button) Hold(r display.Renderer, t display.TouchSource) error {
	const op = "widget.Hold"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	if t == nil {
		return kindError(op, KindHandle, b.id, ErrNilTouch)
	}

	b.press()
	b.drawBase(r)

	samples := display.Drain(t)

	b.releaseResting()
	b.drawBase(r)

	b.factory.logger.Debug("button held", "id", b.id, "samples", samples)
	return nil
}

// HoldOnOff 开关按钮的按住反馈
//
// 与 Hold 相同的按下配色和排空，松开后翻转状态（恰好一次），
// 按新状态选择配色，同步状态文字，并 DrawOnOff
func (b *Button) HoldOnOff(r display.Renderer, t display.TouchSource) error {
	const op = "widget.HoldOnOff"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	if t == nil {
		return kindError(op, KindHandle, b.id, ErrNilTouch)
	}
	if b.typ != ButtonTypeOnOff {
		return kindError(op, KindState, b.id, ErrNotOnOff)
	}

	b.press()
	b.drawOnOff(r)

	samples := display.Drain(t)

	err := b.releaseToggle(op)
	b.drawOnOff(r)
	if err != nil {
		return err
	}

	b.factory.logger.Debug("button toggled", "id", b.id, "samples", samples, "state", b.status.String())
	return nil
}

// Press 按下（事件驱动的宿主使用）
// 切换到按下配色并按类型重绘，之后必须调用 Release
func (b *Button) Press(r display.Renderer) error {
	const op = "widget.Press"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}

	b.press()
	b.render(r)

	b.factory.logger.Debug("button pressed", "id", b.id)
	return nil
}

// Release 松开（事件驱动的宿主使用）
// 只有处于按下状态时才生效，因此重复调用不会多次翻转状态
func (b *Button) Release(r display.Renderer) error {
	const op = "widget.Release"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	if !b.pressed {
		return nil
	}

	if b.typ == ButtonTypeOnOff {
		err := b.releaseToggle(op)
		b.drawOnOff(r)
		if err != nil {
			return err
		}
		b.factory.logger.Debug("button toggled", "id", b.id, "state", b.status.String())
		return nil
	}

	b.releaseResting()
	b.drawBase(r)
	b.factory.logger.Debug("button released", "id", b.id)
	return nil
}

func (b *Button) press() {
	if !b.pressed {
		b.unpressed = b.palette
	}
	b.pressed = true
	b.palette = b.factory.scheme.Pressed
}

func (b *Button) releaseResting() {
	b.pressed = false
	b.palette = b.factory.scheme.Resting
}

// releaseToggle 翻转状态并选择对应配色
// 状态文字分配失败时保持原状态，并恢复按下前的配色
func (b *Button) releaseToggle(op string) error {
	next := !b.state
	if err := b.setState(next); err != nil {
		b.pressed = false
		b.palette = b.unpressed
		b.factory.logger.Warn("toggle failed", "id", b.id, "err", err)
		return allocationError(op, b.id, err)
	}
	b.pressed = false
	b.palette = b.factory.scheme.ForState(next)
	return nil
}
