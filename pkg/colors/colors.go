// Package colors 定义按钮使用的颜色三元组和调色板
package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB 三通道颜色（每通道 0-255）
// 零值为黑色，即"未设置"时的中性色
type RGB struct {
	R, G, B uint8
}

// 命名颜色常量（由环境提供的颜色表）
var (
	Black      = RGB{0, 0, 0}
	White      = RGB{255, 255, 255}
	Purple     = RGB{128, 0, 128}
	Yellow     = RGB{255, 255, 0}
	Red        = RGB{255, 0, 0}
	Green      = RGB{0, 255, 0}
	Background = RGB{0, 0, 64}

	// Neutral 未设置颜色时的默认值
	Neutral = Black
)

// named 名称到颜色的映射，供配置文件使用
var named = map[string]RGB{
	"black":      Black,
	"white":      White,
	"purple":     Purple,
	"yellow":     Yellow,
	"red":        Red,
	"green":      Green,
	"background": Background,
}

// Lookup 按名称查找命名颜色（不区分大小写）
func Lookup(name string) (RGB, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ParseRGB 解析颜色字符串
// 支持格式：
//   - "#rrggbb" 或 "rrggbb"
//   - 命名颜色（如 "purple"）
func ParseRGB(s string) (RGB, error) {
	if c, ok := Lookup(s); ok {
		return c, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb or a color name", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// String 返回 "#rrggbb" 形式
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA 实现 color.Color，供 ebiten 等图形后端直接使用
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
