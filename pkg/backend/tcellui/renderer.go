// Package tcellui 在终端中显示按钮屏幕
//
// 像素坐标按固定的字符单元尺寸映射到终端单元格，
// 鼠标左键充当触摸笔。
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/display"
)

// 默认字符单元尺寸（像素）
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// 圆角边框字符
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '╭'
	runeTopRight    = '╮'
	runeBottomLeft  = '╰'
	runeBottomRight = '╯'
)

// Renderer 将绘制调用映射到终端单元格的 display.Renderer 实现
type Renderer struct {
	screen tcell.Screen
	cellW  int
	cellH  int

	font  display.FontSize
	color colors.RGB
	back  colors.RGB
}

// NewRenderer 创建渲染器，单元尺寸不大于 0 时使用默认值
func NewRenderer(s tcell.Screen, cellW, cellH int) *Renderer {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Renderer{screen: s, cellW: cellW, cellH: cellH}
}

// CellSize 返回字符单元尺寸（像素）
func (r *Renderer) CellSize() (w, h int) { return r.cellW, r.cellH }

// ToCell 像素坐标转换为单元格坐标
func (r *Renderer) ToCell(x, y int) (col, row int) {
	return floorDiv(x, r.cellW), floorDiv(y, r.cellH)
}

// ToPixel 单元格中心的像素坐标
func (r *Renderer) ToPixel(col, row int) (x, y int) {
	return col*r.cellW + r.cellW/2, row*r.cellH + r.cellH/2
}

func (r *Renderer) SetFont(size display.FontSize) { r.font = size }

func (r *Renderer) SetColor(c colors.RGB) { r.color = c }

func (r *Renderer) SetBackColor(c colors.RGB) { r.back = c }

// FillRoundRect 用当前颜色的空格填充矩形覆盖的单元格
func (r *Renderer) FillRoundRect(x1, y1, x2, y2 int) {
	c1, r1 := r.ToCell(x1, y1)
	c2, r2 := r.ToCell(x2, y2)
	style := tcell.StyleDefault.Background(toColor(r.color))

	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawRoundRect 用圆角制表符绘制边框
// 背景使用文字背景色，按钮配色中它与填充色一致
func (r *Renderer) DrawRoundRect(x1, y1, x2, y2 int) {
	c1, r1 := r.ToCell(x1, y1)
	c2, r2 := r.ToCell(x2, y2)
	style := tcell.StyleDefault.Foreground(toColor(r.color)).Background(toColor(r.back))

	for col := c1 + 1; col < c2; col++ {
		r.screen.SetContent(col, r1, runeHorizontal, nil, style)
		r.screen.SetContent(col, r2, runeHorizontal, nil, style)
	}
	for row := r1 + 1; row < r2; row++ {
		r.screen.SetContent(c1, row, runeVertical, nil, style)
		r.screen.SetContent(c2, row, runeVertical, nil, style)
	}

	r.screen.SetContent(c1, r1, runeTopLeft, nil, style)
	r.screen.SetContent(c2, r1, runeTopRight, nil, style)
	r.screen.SetContent(c1, r2, runeBottomLeft, nil, style)
	r.screen.SetContent(c2, r2, runeBottomRight, nil, style)
}

// Print 从 (x, y) 所在单元格开始逐字符输出，大字体使用粗体
func (r *Renderer) Print(s string, x, y int) {
	col, row := r.ToCell(x, y)
	style := tcell.StyleDefault.
		Foreground(toColor(r.color)).
		Background(toColor(r.back)).
		Bold(r.font == display.FontBig)

	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func toColor(c colors.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// floorDiv 向下取整的整数除法（负坐标也映射到正确的单元格）
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
