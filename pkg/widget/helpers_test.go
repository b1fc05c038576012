package widget

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/display"
	"github.com/decker502/tftui/pkg/text"
)

// newTestFactory 创建静默日志、可追踪分配的工厂
func newTestFactory(t *testing.T, opts ...Option) (*Factory, *text.Tracker) {
	t.Helper()
	tr := text.NewTracker(nil)
	base := []Option{
		WithAllocator(tr),
		WithLogger(log.New(io.Discard)),
	}
	return NewFactory(append(base, opts...)...), tr
}

// pumpSpec 端到端测试使用的开关按钮："PUMP"/"" 位于 (10,10)-(60,30)，初始关闭
func pumpSpec() OnOffSpec {
	return OnOffSpec{
		Spec: Spec{
			Palette: colors.Uniform(colors.Red, colors.White),
			Rect:    Rect{X1: 10, Y1: 10, X2: 60, Y2: 30},
			Label:   Caption{Text: "PUMP", At: Point{X: 15, Y: 15}},
			Fat:     false,
		},
		Label2:   Caption{Text: "", At: Point{X: 15, Y: 22}},
		StatusAt: Point{X: 40, Y: 15},
		State:    false,
	}
}

func newPump(t *testing.T, f *Factory) *Button {
	t.Helper()
	b, err := f.NewOnOffButton(pumpSpec())
	if err != nil {
		t.Fatalf("NewOnOffButton failed: %v", err)
	}
	return b
}

// baseSequence 期望的 Draw 调用序列
func baseSequence(font display.FontSize, p colors.Palette, r Rect, label Caption) []display.Call {
	return []display.Call{
		{Op: display.OpSetFont, Font: font},
		{Op: display.OpSetBackColor, Color: p.TextBackground},
		{Op: display.OpSetColor, Color: p.Fill},
		{Op: display.OpFillRoundRect, X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2},
		{Op: display.OpSetColor, Color: p.Border},
		{Op: display.OpDrawRoundRect, X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2},
		{Op: display.OpSetColor, Color: p.Font},
		{Op: display.OpPrint, Text: label.Text, X1: label.At.X, Y1: label.At.Y},
	}
}

// onOffSequence 期望的 DrawOnOff 调用序列
func onOffSequence(spec OnOffSpec, p colors.Palette, status string) []display.Call {
	font := display.FontSmall
	if spec.Fat {
		font = display.FontBig
	}
	calls := baseSequence(font, p, spec.Rect, spec.Label)
	return append(calls,
		display.Call{Op: display.OpPrint, Text: spec.Label2.Text, X1: spec.Label2.At.X, Y1: spec.Label2.At.Y},
		display.Call{Op: display.OpPrint, Text: status, X1: spec.StatusAt.X, Y1: spec.StatusAt.Y},
	)
}

func assertCalls(t *testing.T, got, want []display.Call) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d renderer calls, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}
