package display

import (
	"strings"
	"testing"

	"github.com/decker502/tftui/pkg/colors"
)

func TestDrain_ConsumesAllSamples(t *testing.T) {
	tests := []struct {
		name    string
		samples int
	}{
		{name: "无采样", samples: 0},
		{name: "单个采样", samples: 1},
		{name: "长按", samples: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			touch := NewScriptedTouch(tt.samples)

			n := Drain(touch)

			if n != tt.samples {
				t.Errorf("Drain() = %d, want %d", n, tt.samples)
			}
			if touch.Reads != tt.samples {
				t.Errorf("Reads = %d, want %d", touch.Reads, tt.samples)
			}
			// 最后一次轮询返回 false
			if touch.Polls != tt.samples+1 {
				t.Errorf("Polls = %d, want %d", touch.Polls, tt.samples+1)
			}
		})
	}
}

func TestScriptedTouch_Press(t *testing.T) {
	touch := NewScriptedTouch(2)
	Drain(touch)

	touch.Press(3)
	if n := Drain(touch); n != 3 {
		t.Errorf("second Drain() = %d, want 3", n)
	}
}

func TestRecorder_RecordsInOrder(t *testing.T) {
	r := NewRecorder()
	var _ Renderer = r

	r.SetFont(FontBig)
	r.SetBackColor(colors.Yellow)
	r.SetColor(colors.Purple)
	r.FillRoundRect(1, 2, 3, 4)
	r.DrawRoundRect(1, 2, 3, 4)
	r.Print("OK", 5, 6)

	want := []Op{OpSetFont, OpSetBackColor, OpSetColor, OpFillRoundRect, OpDrawRoundRect, OpPrint}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("got %d calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}

	out := r.String()
	for _, s := range []string{"setFont(big)", "setColor(128,0,128)", "fillRoundRect(1,2,3,4)", `print("OK",5,6)`} {
		if !strings.Contains(out, s) {
			t.Errorf("String() missing %q:\n%s", s, out)
		}
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d", r.Len())
	}
}

func TestRecorder_CallsIsCopy(t *testing.T) {
	r := NewRecorder()
	r.Print("A", 0, 0)

	calls := r.Calls()
	calls[0].Text = "B"

	if r.Calls()[0].Text != "A" {
		t.Error("Calls() must return a copy")
	}
}
