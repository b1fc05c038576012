package widget

import "github.com/decker502/tftui/pkg/display"

// Draw 绘制按钮
//
// 调用顺序：
//  1. 选择字体（fat 为大字体）
//  2. 文字背景色、填充色，填充圆角矩形
//  3. 边框色，描绘圆角矩形边框
//  4. 文字颜色，绘制主标签
//
// 绘制只读取当前属性，不分配内存，不修改按钮
func (b *Button) Draw(r display.Renderer) error {
	const op = "widget.Draw"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	b.drawBase(r)
	return nil
}

// DrawOnOff 绘制开关按钮：在 Draw 的基础上再绘制第二标签和状态文字
// 状态文字在状态变更时已同步，这里只读取
func (b *Button) DrawOnOff(r display.Renderer) error {
	const op = "widget.DrawOnOff"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	if b.typ != ButtonTypeOnOff {
		return kindError(op, KindState, b.id, ErrNotOnOff)
	}
	b.drawOnOff(r)
	return nil
}

// Render 按按钮类型选择 DrawOnOff 或 Draw
func (b *Button) Render(r display.Renderer) error {
	const op = "widget.Render"
	if err := b.checkRenderer(op, r); err != nil {
		return err
	}
	b.render(r)
	return nil
}

func (b *Button) render(r display.Renderer) {
	if b.typ == ButtonTypeOnOff {
		b.drawOnOff(r)
		return
	}
	b.drawBase(r)
}

func (b *Button) drawBase(r display.Renderer) {
	font := display.FontSmall
	if b.fat {
		font = display.FontBig
	}
	r.SetFont(font)

	r.SetBackColor(b.palette.TextBackground)
	r.SetColor(b.palette.Fill)
	r.FillRoundRect(b.rect.X1, b.rect.Y1, b.rect.X2, b.rect.Y2)

	r.SetColor(b.palette.Border)
	r.DrawRoundRect(b.rect.X1, b.rect.Y1, b.rect.X2, b.rect.Y2)

	r.SetColor(b.palette.Font)
	r.Print(b.label.String(), b.labelAt.X, b.labelAt.Y)
}

func (b *Button) drawOnOff(r display.Renderer) {
	b.drawBase(r)
	r.Print(b.label2.String(), b.label2At.X, b.label2At.Y)
	r.Print(b.status.String(), b.statusAt.X, b.statusAt.Y)
}

func (b *Button) checkRenderer(op string, r display.Renderer) error {
	if b.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}
	if r == nil {
		return kindError(op, KindHandle, b.id, ErrNilRenderer)
	}
	return nil
}
