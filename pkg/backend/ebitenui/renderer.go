// Package ebitenui 在 ebiten 窗口中显示按钮屏幕
//
// ebiten 每帧都会重绘整个画面，因此 Renderer 不直接绘制，
// 而是记录一份绘制列表，在 Game.Draw 中重放到帧图像上。
package ebitenui

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/display"
	"github.com/decker502/tftui/pkg/widget"
)

// 字号（像素）
const (
	SmallFontSize = 12
	BigFontSize   = 16
)

// CornerRadius 圆角半径（像素）
const CornerRadius = 4

// ItemKind 绘制列表项类型
type ItemKind int

const (
	ItemFill ItemKind = iota
	ItemOutline
	ItemText
)

// Item 一次已解析颜色和字体的绘制
type Item struct {
	Kind ItemKind

	// X1..Y2 矩形（包含边界）；文字时 X1,Y1 为左上角
	X1, Y1, X2, Y2 int

	Color colors.RGB
	// Back 文字背景色
	Back colors.RGB
	Font display.FontSize
	Text string
}

// Rect 绘制项的矩形
func (it Item) Rect() widget.Rect {
	return widget.Rect{X1: it.X1, Y1: it.Y1, X2: it.X2, Y2: it.Y2}
}

// Renderer 记录绘制列表的 display.Renderer 实现
type Renderer struct {
	font  display.FontSize
	color colors.RGB
	back  colors.RGB

	items []Item
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SetFont(size display.FontSize) { r.font = size }

func (r *Renderer) SetColor(c colors.RGB) { r.color = c }

func (r *Renderer) SetBackColor(c colors.RGB) { r.back = c }

func (r *Renderer) FillRoundRect(x1, y1, x2, y2 int) {
	r.items = append(r.items, Item{Kind: ItemFill, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: r.color})
}

func (r *Renderer) DrawRoundRect(x1, y1, x2, y2 int) {
	r.items = append(r.items, Item{Kind: ItemOutline, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: r.color})
}

func (r *Renderer) Print(s string, x, y int) {
	if s == "" {
		return
	}
	r.items = append(r.items, Item{Kind: ItemText, X1: x, Y1: y, Color: r.color, Back: r.back, Font: r.font, Text: s})
}

// Items 返回绘制列表的副本
func (r *Renderer) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len 绘制列表长度
func (r *Renderer) Len() int { return len(r.items) }

// Reset 清空绘制列表，保留当前字体和颜色
func (r *Renderer) Reset() { r.items = r.items[:0] }

// Replay 将绘制列表绘制到 dst
// 字体加载失败时仍绘制全部矩形，并返回加载错误
func (r *Renderer) Replay(dst *ebiten.Image) error {
	var textErr error
	for _, it := range r.items {
		switch it.Kind {
		case ItemFill:
			fillRoundRect(dst, it)
		case ItemOutline:
			strokeRoundRect(dst, it)
		case ItemText:
			if err := drawText(dst, it); err != nil && textErr == nil {
				textErr = err
			}
		}
	}
	return textErr
}

// roundRectGeometry 矩形的浮点坐标和实际可用的圆角半径
func roundRectGeometry(it Item) (x, y, w, h, radius float32) {
	rect := it.Rect()
	x, y = float32(rect.X1), float32(rect.Y1)
	w, h = float32(rect.Width()), float32(rect.Height())
	radius = float32(CornerRadius)
	if limit := min(w, h) / 2; radius > limit {
		radius = limit
	}
	return x, y, w, h, radius
}

// fillRoundRect 两个十字矩形加四个角圆
func fillRoundRect(dst *ebiten.Image, it Item) {
	x, y, w, h, rad := roundRectGeometry(it)
	if rad <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, it.Color, true)
		return
	}

	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, it.Color, true)
	vector.DrawFilledRect(dst, x, y+rad, w, h-2*rad, it.Color, true)

	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, it.Color, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, it.Color, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, it.Color, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, it.Color, true)
}

// strokeRoundRect 四条边加四段圆弧
func strokeRoundRect(dst *ebiten.Image, it Item) {
	const strokeWidth = 1
	x, y, w, h, rad := roundRectGeometry(it)

	// 上下左右四条边
	vector.StrokeLine(dst, x+rad, y, x+w-rad, y, strokeWidth, it.Color, true)
	vector.StrokeLine(dst, x+rad, y+h, x+w-rad, y+h, strokeWidth, it.Color, true)
	vector.StrokeLine(dst, x, y+rad, x, y+h-rad, strokeWidth, it.Color, true)
	vector.StrokeLine(dst, x+w, y+rad, x+w, y+h-rad, strokeWidth, it.Color, true)

	if rad <= 0 {
		return
	}

	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x + rad, y + rad, math.Pi},
		{x + w - rad, y + rad, 1.5 * math.Pi},
		{x + w - rad, y + h - rad, 0},
		{x + rad, y + h - rad, 0.5 * math.Pi},
	}
	for _, c := range corners {
		strokeArc(dst, c.cx, c.cy, rad, c.start, strokeWidth, it)
	}
}

// strokeArc 用折线近似四分之一圆弧
func strokeArc(dst *ebiten.Image, cx, cy, rad float32, start float64, width float32, it Item) {
	const segments = 6
	step := (math.Pi / 2) / segments
	px := cx + rad*float32(math.Cos(start))
	py := cy + rad*float32(math.Sin(start))
	for i := 1; i <= segments; i++ {
		a := start + float64(i)*step
		nx := cx + rad*float32(math.Cos(a))
		ny := cy + rad*float32(math.Sin(a))
		vector.StrokeLine(dst, px, py, nx, ny, width, it.Color, true)
		px, py = nx, ny
	}
}

// drawText 先用背景色填充文字区域，再绘制文字
func drawText(dst *ebiten.Image, it Item) error {
	face, err := faceFor(it.Font)
	if err != nil {
		return err
	}

	w, h := text.Measure(it.Text, face, 0)
	vector.DrawFilledRect(dst, float32(it.X1), float32(it.Y1), float32(w), float32(h), it.Back, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(it.X1), float64(it.Y1))
	op.ColorScale.ScaleWithColor(it.Color)
	text.Draw(dst, it.Text, face, op)
	return nil
}

var (
	facesOnce sync.Once
	faces     map[display.FontSize]*text.GoTextFace
	facesErr  error
)

// LoadFaces 加载 Go 字体，只在首次调用时加载
func LoadFaces() error {
	facesOnce.Do(func() {
		small, err := loadFace(goregular.TTF, SmallFontSize)
		if err != nil {
			facesErr = fmt.Errorf("failed to load small font: %w", err)
			return
		}
		big, err := loadFace(gobold.TTF, BigFontSize)
		if err != nil {
			facesErr = fmt.Errorf("failed to load big font: %w", err)
			return
		}
		faces = map[display.FontSize]*text.GoTextFace{
			display.FontSmall: small,
			display.FontBig:   big,
		}
	})
	return facesErr
}

// faceFor 返回字号对应的字体
func faceFor(size display.FontSize) (*text.GoTextFace, error) {
	if err := LoadFaces(); err != nil {
		return nil, err
	}
	face, ok := faces[size]
	if !ok {
		return nil, fmt.Errorf("no font for size %v", size)
	}
	return face, nil
}

// loadFace 从 TTF 数据创建字体
func loadFace(ttf []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
