package widget

import "github.com/decker502/tftui/pkg/colors"

// Point 显示坐标（像素）
type Point struct {
	X, Y int
}

// Rect 按钮矩形，(X1,Y1) 为左上角，(X2,Y2) 为右下角（均包含）
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Valid 检查 X1<=X2 且 Y1<=Y2
func (r Rect) Valid() bool {
	return r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// Contains 检测点是否在矩形内（边界包含）
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 &&
		x <= r.X2 &&
		y >= r.Y1 &&
		y <= r.Y2
}

// Width 矩形宽度（像素）
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height 矩形高度（像素）
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Caption 一段标签文字及其绘制位置
type Caption struct {
	Text string
	At   Point
}

// Spec 普通按钮的构造参数
type Spec struct {
	// Palette 初始配色
	Palette colors.Palette
	// Rect 按钮矩形
	Rect Rect
	// Label 主标签
	Label Caption
	// Fat true 使用大字体，false 使用小字体
	Fat bool
}

// OnOffSpec 开关按钮的构造参数
type OnOffSpec struct {
	Spec
	// Label2 第二标签
	Label2 Caption
	// StatusAt 状态文字（ON/OFF）的位置
	StatusAt Point
	// State 初始状态
	State bool
}
