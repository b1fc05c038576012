// Package display 定义按钮所依赖的外部能力：绘图（Renderer）与触摸采样（TouchSource）
//
// 按钮核心只通过这两个接口与硬件交互，具体实现位于 pkg/backend 下，
// 测试使用本包提供的 Recorder 与 ScriptedTouch。
package display

import "github.com/decker502/tftui/pkg/colors"

// FontSize 字体大小选择（设备只有两种字体）
type FontSize int

const (
	// FontSmall 小字体
	FontSmall FontSize = iota
	// FontBig 大字体
	FontBig
)

func (f FontSize) String() string {
	if f == FontBig {
		return "big"
	}
	return "small"
}

// Renderer 显示驱动提供的绘图原语
// 颜色与字体是驱动内部的状态，后续绘制调用使用当前值
type Renderer interface {
	// SetFont 选择字体
	SetFont(size FontSize)
	// SetColor 设置前景色（填充、描边、文字）
	SetColor(c colors.RGB)
	// SetBackColor 设置文字背景色
	SetBackColor(c colors.RGB)
	// FillRoundRect 用前景色填充圆角矩形
	FillRoundRect(x1, y1, x2, y2 int)
	// DrawRoundRect 用前景色描绘圆角矩形边框
	DrawRoundRect(x1, y1, x2, y2 int)
	// Print 在 (x, y) 处绘制文字
	Print(text string, x, y int)
}

// TouchSource 触摸驱动提供的采样接口
// 按钮核心只把它当作"排空"信号，不读取触摸坐标
type TouchSource interface {
	// DataAvailable 是否仍有触摸采样（手指仍在屏幕上）
	DataAvailable() bool
	// Read 消费一个采样
	Read()
}

// Drain 阻塞轮询触摸源直到不再有采样，返回消费的采样数
//
// 没有超时也没有取消：传感器卡住时会一直等待
func Drain(t TouchSource) int {
	n := 0
	for t.DataAvailable() {
		t.Read()
		n++
	}
	return n
}
