package display

import (
	"fmt"
	"strings"

	"github.com/decker502/tftui/pkg/colors"
)

// Op 绘图调用类型
type Op int

const (
	OpSetFont Op = iota
	OpSetColor
	OpSetBackColor
	OpFillRoundRect
	OpDrawRoundRect
	OpPrint
)

var opNames = [...]string{
	OpSetFont:       "setFont",
	OpSetColor:      "setColor",
	OpSetBackColor:  "setBackColor",
	OpFillRoundRect: "fillRoundRect",
	OpDrawRoundRect: "drawRoundRect",
	OpPrint:         "print",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Call 一次被记录的绘图调用
// 只有与 Op 相关的字段有意义
type Call struct {
	Op    Op
	Font  FontSize
	Color colors.RGB
	X1    int
	Y1    int
	X2    int
	Y2    int
	Text  string
}

func (c Call) String() string {
	switch c.Op {
	case OpSetFont:
		return fmt.Sprintf("setFont(%s)", c.Font)
	case OpSetColor, OpSetBackColor:
		return fmt.Sprintf("%s(%d,%d,%d)", c.Op, c.Color.R, c.Color.G, c.Color.B)
	case OpFillRoundRect, OpDrawRoundRect:
		return fmt.Sprintf("%s(%d,%d,%d,%d)", c.Op, c.X1, c.Y1, c.X2, c.Y2)
	case OpPrint:
		return fmt.Sprintf("print(%q,%d,%d)", c.Text, c.X1, c.Y1)
	default:
		return c.Op.String()
	}
}

// Recorder 记录所有调用的 Renderer 实现
// 用于测试断言绘制顺序，也用于 trace 命令输出
type Recorder struct {
	calls []Call
}

// NewRecorder 创建记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetFont(size FontSize) {
	r.calls = append(r.calls, Call{Op: OpSetFont, Font: size})
}

func (r *Recorder) SetColor(c colors.RGB) {
	r.calls = append(r.calls, Call{Op: OpSetColor, Color: c})
}

func (r *Recorder) SetBackColor(c colors.RGB) {
	r.calls = append(r.calls, Call{Op: OpSetBackColor, Color: c})
}

func (r *Recorder) FillRoundRect(x1, y1, x2, y2 int) {
	r.calls = append(r.calls, Call{Op: OpFillRoundRect, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) DrawRoundRect(x1, y1, x2, y2 int) {
	r.calls = append(r.calls, Call{Op: OpDrawRoundRect, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Print(text string, x, y int) {
	r.calls = append(r.calls, Call{Op: OpPrint, Text: text, X1: x, Y1: y})
}

// Calls 返回记录的调用副本
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Ops 只返回调用类型序列
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// Len 记录的调用数
func (r *Recorder) Len() int { return len(r.calls) }

// Reset 清空记录
func (r *Recorder) Reset() { r.calls = r.calls[:0] }

// String 每行一个调用
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.calls {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ScriptedTouch 预设采样数的 TouchSource 实现
// 前 Samples 次 DataAvailable 返回 true，之后一直返回 false
type ScriptedTouch struct {
	Samples int

	// Polls DataAvailable 被调用的次数
	Polls int
	// Reads Read 被调用的次数
	Reads int
}

// NewScriptedTouch 模拟一次持续 samples 个采样的按压
func NewScriptedTouch(samples int) *ScriptedTouch {
	return &ScriptedTouch{Samples: samples}
}

func (s *ScriptedTouch) DataAvailable() bool {
	s.Polls++
	return s.Reads < s.Samples
}

func (s *ScriptedTouch) Read() {
	s.Reads++
}

// Press 追加一次新的按压
func (s *ScriptedTouch) Press(samples int) {
	s.Samples = s.Reads + samples
}
