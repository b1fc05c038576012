// Package widget 实现触摸屏按钮：绘制、按住反馈和可选的开关状态
package widget

import (
	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/identity"
	"github.com/decker502/tftui/pkg/text"
)

// ButtonType 按钮类型
type ButtonType int

const (
	// ButtonTypeEmpty 空按钮（默认构造）
	ButtonTypeEmpty ButtonType = iota
	// ButtonTypeSimple 普通按钮：一个标签
	ButtonTypeSimple
	// ButtonTypeOnOff 开关按钮：两个标签加状态文字
	ButtonTypeOnOff
)

func (t ButtonType) String() string {
	switch t {
	case ButtonTypeSimple:
		return "simple"
	case ButtonTypeOnOff:
		return "onoff"
	default:
		return "empty"
	}
}

const (
	statusOn  = "ON"
	statusOff = "OFF"
)

func statusText(state bool) string {
	if state {
		return statusOn
	}
	return statusOff
}

// Button 触摸屏按钮
//
// 所有文字缓冲区由按钮独占：
//   - Clone / CopyFrom 深拷贝
//   - Destroy 释放全部缓冲区（恰好一次）
//
// 开关按钮的状态文字总是与 state 一致（"ON" / "OFF"），
// 所有状态变更都经过 setState。
//
// 注意：不支持并发访问
type Button struct {
	id  identity.ID
	typ ButtonType

	rect    Rect
	palette colors.Palette

	label    text.Buffer
	labelAt  Point
	label2   text.Buffer
	label2At Point
	status   text.Buffer
	statusAt Point

	fat   bool
	state bool

	// pressed 处于按下和松开之间
	pressed   bool
	destroyed bool

	// unpressed 按下前的配色，翻转失败时恢复
	unpressed colors.Palette

	factory *Factory
}

// ===== Getters =====

// ID 返回按钮标识符
func (b *Button) ID() identity.ID { return b.id }

// Type 返回按钮类型
func (b *Button) Type() ButtonType { return b.typ }

// IsOnOff 是否为开关按钮
func (b *Button) IsOnOff() bool { return b.typ == ButtonTypeOnOff }

// State 开关状态
func (b *Button) State() bool { return b.state }

// StatusText 状态文字，非开关按钮为空
func (b *Button) StatusText() string { return b.status.String() }

// Bounds 按钮矩形
func (b *Button) Bounds() Rect { return b.rect }

// Contains 检测点是否在按钮内
func (b *Button) Contains(x, y int) bool { return b.rect.Contains(x, y) }

// Label 主标签
func (b *Button) Label() Caption { return Caption{Text: b.label.String(), At: b.labelAt} }

// Label2 第二标签
func (b *Button) Label2() Caption { return Caption{Text: b.label2.String(), At: b.label2At} }

// StatusAt 状态文字位置
func (b *Button) StatusAt() Point { return b.statusAt }

// Fat 是否使用大字体
func (b *Button) Fat() bool { return b.fat }

// Palette 当前配色
func (b *Button) Palette() colors.Palette { return b.palette }

// Pressed 是否处于按下状态
func (b *Button) Pressed() bool { return b.pressed }

// Destroyed 是否已销毁
func (b *Button) Destroyed() bool { return b.destroyed }

// ===== Setters =====

// SetFillColor 设置填充色
func (b *Button) SetFillColor(c colors.RGB) { b.palette.Fill = c }

// SetBorderColor 设置边框色
func (b *Button) SetBorderColor(c colors.RGB) { b.palette.Border = c }

// SetFontColor 设置文字颜色
func (b *Button) SetFontColor(c colors.RGB) { b.palette.Font = c }

// SetTextBackgroundColor 设置文字背景色
func (b *Button) SetTextBackgroundColor(c colors.RGB) { b.palette.TextBackground = c }

// SetPalette 一次替换全部四个颜色
func (b *Button) SetPalette(p colors.Palette) { b.palette = p }

// SetFat 设置字体大小
func (b *Button) SetFat(fat bool) { b.fat = fat }

// SetLabelAt 设置主标签位置
func (b *Button) SetLabelAt(p Point) { b.labelAt = p }

// SetLabel2At 设置第二标签位置
func (b *Button) SetLabel2At(p Point) { b.label2At = p }

// SetStatusAt 设置状态文字位置
func (b *Button) SetStatusAt(p Point) { b.statusAt = p }

// SetBounds 设置矩形，无效坐标时保留原矩形
func (b *Button) SetBounds(r Rect) error {
	const op = "widget.SetBounds"
	if b.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}
	if !r.Valid() {
		return geometryError(op, b.id, r)
	}
	b.rect = r
	return nil
}

// SetLabel 替换主标签文字
// 先分配新文字再释放旧文字，失败时保留原文字
func (b *Button) SetLabel(s string) error {
	const op = "widget.SetLabel"
	if b.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}
	if err := b.label.Replace(s); err != nil {
		return allocationError(op, b.id, err)
	}
	return nil
}

// SetLabel2 替换第二标签文字，仅开关按钮有该标签
func (b *Button) SetLabel2(s string) error {
	const op = "widget.SetLabel2"
	if b.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}
	if b.typ != ButtonTypeOnOff {
		return kindError(op, KindLabel, b.id, ErrNoLabelSlot)
	}
	if err := b.label2.Replace(s); err != nil {
		return allocationError(op, b.id, err)
	}
	return nil
}

// SetState 设置开关状态并同步状态文字
func (b *Button) SetState(on bool) error {
	const op = "widget.SetState"
	if b.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}
	if b.typ != ButtonTypeOnOff {
		return kindError(op, KindState, b.id, ErrNotOnOff)
	}
	if err := b.setState(on); err != nil {
		return allocationError(op, b.id, err)
	}
	return nil
}

// setState 状态与状态文字的唯一写入点
// 新文字分配失败时状态保持不变
func (b *Button) setState(on bool) error {
	if err := b.status.Replace(statusText(on)); err != nil {
		return err
	}
	b.state = on
	return nil
}

// ===== 生命周期 =====

// Clone 深拷贝按钮
// 副本拥有独立的文字缓冲区和新分配的ID
func (b *Button) Clone() (*Button, error) {
	const op = "widget.Clone"
	if b.destroyed {
		return nil, kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}

	label, label2, status, err := b.cloneBuffers()
	if err != nil {
		return nil, allocationError(op, b.id, err)
	}

	c := &Button{
		id:       b.factory.ids.Allocate(),
		typ:      b.typ,
		rect:     b.rect,
		palette:  b.palette,
		label:    label,
		labelAt:  b.labelAt,
		label2:   label2,
		label2At: b.label2At,
		status:   status,
		statusAt: b.statusAt,
		fat:      b.fat,
		state:    b.state,
		factory:  b.factory,
	}

	b.factory.logger.Debug("cloned button", "id", b.id, "clone", c.id)
	return c, nil
}

// CopyFrom 赋值：用 src 的内容替换 b 的内容
// b 保留自己的ID；先复制 src 的全部缓冲区，失败时 b 不变
func (b *Button) CopyFrom(src *Button) error {
	const op = "widget.CopyFrom"
	if src == nil {
		return kindError(op, KindHandle, b.id, ErrNilSource)
	}
	if src == b {
		return nil
	}
	if b.destroyed || src.destroyed {
		return kindError(op, KindLifecycle, b.id, ErrDestroyed)
	}

	label, label2, status, err := src.cloneBuffers()
	if err != nil {
		return allocationError(op, b.id, err)
	}

	b.releaseBuffers()

	b.typ = src.typ
	b.rect = src.rect
	b.palette = src.palette
	b.label = label
	b.labelAt = src.labelAt
	b.label2 = label2
	b.label2At = src.label2At
	b.status = status
	b.statusAt = src.statusAt
	b.fat = src.fat
	b.state = src.state
	b.pressed = false

	return nil
}

// Destroy 释放全部文字缓冲区和ID
// 重复调用无效果
func (b *Button) Destroy() {
	if b.destroyed {
		return
	}
	b.releaseBuffers()
	b.factory.ids.Release(b.id)
	b.destroyed = true
	b.pressed = false

	b.factory.logger.Debug("destroyed button", "id", b.id)
}

// cloneBuffers 深拷贝三个缓冲区，任一失败时释放已拷贝的部分
func (b *Button) cloneBuffers() (label, label2, status text.Buffer, err error) {
	label, err = b.label.Clone()
	if err != nil {
		return
	}
	label2, err = b.label2.Clone()
	if err != nil {
		label.Release()
		return
	}
	status, err = b.status.Clone()
	if err != nil {
		label.Release()
		label2.Release()
		return
	}
	return label, label2, status, nil
}

func (b *Button) releaseBuffers() {
	b.label.Release()
	b.label2.Release()
	b.status.Release()
}
