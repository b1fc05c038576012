package widget

import (
	"errors"
	"testing"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/display"
	"github.com/decker502/tftui/pkg/text"
)

// TestHoldOnOff_PumpPressRelease 端到端：按住并松开 PUMP 按钮
func TestHoldOnOff_PumpPressRelease(t *testing.T) {
	f, _ := newTestFactory(t)
	b := newPump(t, f)
	rec := display.NewRecorder()
	touch := display.NewScriptedTouch(7)
	scheme := f.Scheme()

	if err := b.HoldOnOff(rec, touch); err != nil {
		t.Fatalf("HoldOnOff failed: %v", err)
	}

	spec := pumpSpec()
	want := append(
		onOffSequence(spec, scheme.Pressed, "OFF"),
		onOffSequence(spec, scheme.On, "ON")...,
	)
	assertCalls(t, rec.Calls(), want)

	if touch.Reads != 7 {
		t.Errorf("drained %d samples, want 7", touch.Reads)
	}
	if !b.State() || b.StatusText() != "ON" {
		t.Errorf("state=%v status=%q, want true/ON", b.State(), b.StatusText())
	}
	if b.Palette() != scheme.On {
		t.Errorf("palette = %+v, want on palette", b.Palette())
	}
	if b.Pressed() {
		t.Error("button should not remain pressed")
	}
}

// TestHoldOnOff_TogglesOncePerCycle 无论按住多久，每次按压只翻转一次
func TestHoldOnOff_TogglesOncePerCycle(t *testing.T) {
	for _, samples := range []int{0, 1, 2, 17, 1000} {
		f, _ := newTestFactory(t)
		b := newPump(t, f)
		rec := display.NewRecorder()
		touch := display.NewScriptedTouch(0)

		for cycle := 1; cycle <= 4; cycle++ {
			touch.Press(samples)
			if err := b.HoldOnOff(rec, touch); err != nil {
				t.Fatalf("samples=%d cycle=%d: %v", samples, cycle, err)
			}

			wantState := cycle%2 == 1
			if b.State() != wantState {
				t.Errorf("samples=%d cycle=%d: state=%v, want %v", samples, cycle, b.State(), wantState)
			}
			wantStatus := "OFF"
			if wantState {
				wantStatus = "ON"
			}
			if b.StatusText() != wantStatus {
				t.Errorf("samples=%d cycle=%d: status=%q, want %q", samples, cycle, b.StatusText(), wantStatus)
			}
			if b.Palette() != f.Scheme().ForState(wantState) {
				t.Errorf("samples=%d cycle=%d: wrong steady palette %+v", samples, cycle, b.Palette())
			}
		}
	}
}

func TestHoldOnOff_OffPalette(t *testing.T) {
	f, _ := newTestFactory(t)
	spec := pumpSpec()
	spec.State = true
	b, err := f.NewOnOffButton(spec)
	if err != nil {
		t.Fatal(err)
	}
	rec := display.NewRecorder()

	if err := b.HoldOnOff(rec, display.NewScriptedTouch(3)); err != nil {
		t.Fatal(err)
	}

	if b.State() || b.StatusText() != "OFF" {
		t.Errorf("state=%v status=%q, want false/OFF", b.State(), b.StatusText())
	}
	calls := rec.Calls()
	last := calls[len(calls)-10:]
	assertCalls(t, last, onOffSequence(spec, f.Scheme().Off, "OFF"))
}

func TestHold_SimpleButton(t *testing.T) {
	f, _ := newTestFactory(t)
	spec := Spec{
		Palette: colors.Uniform(colors.Background, colors.White),
		Rect:    Rect{X1: 0, Y1: 200, X2: 80, Y2: 239},
		Label:   Caption{Text: "BACK", At: Point{X: 10, Y: 212}},
		Fat:     true,
	}
	b, err := f.NewButton(spec)
	if err != nil {
		t.Fatal(err)
	}
	rec := display.NewRecorder()
	touch := display.NewScriptedTouch(4)

	if err := b.Hold(rec, touch); err != nil {
		t.Fatalf("Hold failed: %v", err)
	}

	scheme := f.Scheme()
	want := append(
		baseSequence(display.FontBig, scheme.Pressed, spec.Rect, spec.Label),
		baseSequence(display.FontBig, scheme.Resting, spec.Rect, spec.Label)...,
	)
	assertCalls(t, rec.Calls(), want)
	if touch.Reads != 4 {
		t.Errorf("drained %d samples, want 4", touch.Reads)
	}
}

func TestHold_NeverMutatesState(t *testing.T) {
	f, _ := newTestFactory(t)
	b := newPump(t, f)
	rec := display.NewRecorder()

	for i := 0; i < 3; i++ {
		if err := b.Hold(rec, display.NewScriptedTouch(2)); err != nil {
			t.Fatal(err)
		}
	}

	if b.State() || b.StatusText() != "OFF" {
		t.Errorf("Hold changed state: state=%v status=%q", b.State(), b.StatusText())
	}
	// Hold 使用 Draw：每次 8 + 8 个调用
	if rec.Len() != 3*16 {
		t.Errorf("recorded %d calls, want %d", rec.Len(), 3*16)
	}
}

func TestHoldOnOff_SimpleButtonRejected(t *testing.T) {
	f, _ := newTestFactory(t)
	b, _ := f.NewButton(Spec{Rect: Rect{X2: 10, Y2: 10}, Label: Caption{Text: "A"}})
	rec := display.NewRecorder()
	touch := display.NewScriptedTouch(1)

	if err := b.HoldOnOff(rec, touch); !errors.Is(err, ErrNotOnOff) {
		t.Errorf("expected ErrNotOnOff, got %v", err)
	}
	if rec.Len() != 0 || touch.Polls != 0 {
		t.Error("rejected hold must not draw or poll")
	}
}

func TestHold_NilTouch(t *testing.T) {
	f, _ := newTestFactory(t)
	b := newPump(t, f)
	rec := display.NewRecorder()

	if err := b.Hold(rec, nil); !errors.Is(err, ErrNilTouch) {
		t.Errorf("Hold: expected ErrNilTouch, got %v", err)
	}
	if err := b.HoldOnOff(rec, nil); !errors.Is(err, ErrNilTouch) {
		t.Errorf("HoldOnOff: expected ErrNilTouch, got %v", err)
	}
	if rec.Len() != 0 {
		t.Error("rejected hold must not draw")
	}
}

func TestPressRelease_EdgeTriggered(t *testing.T) {
	f, _ := newTestFactory(t)
	b := newPump(t, f)
	rec := display.NewRecorder()
	spec := pumpSpec()

	if err := b.Press(rec); err != nil {
		t.Fatal(err)
	}
	if !b.Pressed() || b.Palette() != f.Scheme().Pressed {
		t.Error("Press should apply the pressed palette")
	}
	assertCalls(t, rec.Calls(), onOffSequence(spec, f.Scheme().Pressed, "OFF"))

	rec.Reset()
	if err := b.Release(rec); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, rec.Calls(), onOffSequence(spec, f.Scheme().On, "ON"))

	// 没有新的按下，重复 Release 不翻转
	rec.Reset()
	for i := 0; i < 5; i++ {
		if err := b.Release(rec); err != nil {
			t.Fatal(err)
		}
	}
	if !b.State() || b.StatusText() != "ON" {
		t.Errorf("duplicate releases toggled state: %v %q", b.State(), b.StatusText())
	}
	if rec.Len() != 0 {
		t.Errorf("duplicate releases drew %d calls", rec.Len())
	}
}

func TestPressRelease_SimpleButton(t *testing.T) {
	f, _ := newTestFactory(t)
	b, _ := f.NewButton(Spec{Rect: Rect{X2: 40, Y2: 20}, Label: Caption{Text: "OK"}})
	rec := display.NewRecorder()

	if err := b.Press(rec); err != nil {
		t.Fatal(err)
	}
	if err := b.Release(rec); err != nil {
		t.Fatal(err)
	}

	if b.Palette() != f.Scheme().Resting {
		t.Errorf("palette = %+v, want resting", b.Palette())
	}
	if rec.Len() != 16 {
		t.Errorf("recorded %d calls, want 16", rec.Len())
	}
}

func TestHoldOnOff_AllocationFailureKeepsState(t *testing.T) {
	// PUMP(4) + OFF(3) = 7；翻转需要临时再分配 "ON"(2)
	arena := text.NewArena(8)
	f, _ := newTestFactory(t, WithAllocator(arena))
	b := newPump(t, f)
	rec := display.NewRecorder()

	err := b.HoldOnOff(rec, display.NewScriptedTouch(1))
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if b.State() || b.StatusText() != "OFF" {
		t.Errorf("failed toggle changed state: %v %q", b.State(), b.StatusText())
	}
	if b.Pressed() {
		t.Error("failed toggle left the button pressed")
	}
	if b.Palette() != pumpSpec().Palette {
		t.Errorf("palette = %+v, want the palette before the press", b.Palette())
	}

	// 按下绘制一次，失败后按原配色再绘制一次
	want := []colors.RGB{f.Scheme().Pressed.Fill, colors.Red}
	if got := fillColors(rec); !equalRGB(got, want) {
		t.Errorf("fills = %v, want %v", got, want)
	}

	// 已不处于按下状态，Release 无效果
	calls := rec.Len()
	if err := b.Release(rec); err != nil {
		t.Errorf("Release after failed toggle: %v", err)
	}
	if rec.Len() != calls {
		t.Error("Release after failed toggle should not redraw")
	}
}

func TestRelease_AllocationFailureRestoresPalette(t *testing.T) {
	arena := text.NewArena(8)
	f, _ := newTestFactory(t, WithAllocator(arena))
	b := newPump(t, f)
	rec := display.NewRecorder()

	if err := b.Press(rec); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	// 重复按下不覆盖按下前的配色
	if err := b.Press(rec); err != nil {
		t.Fatalf("Press failed: %v", err)
	}

	if err := b.Release(rec); !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if b.Pressed() || b.State() {
		t.Errorf("pressed=%v state=%v after failed release", b.Pressed(), b.State())
	}
	if b.Palette() != pumpSpec().Palette {
		t.Errorf("palette = %+v, want the palette before the press", b.Palette())
	}
	fills := fillColors(rec)
	if len(fills) != 3 || fills[2] != colors.Red {
		t.Errorf("fills = %v, want a final redraw in red", fills)
	}
}

// fillColors 按顺序返回每次 FillRoundRect 使用的填充色
func fillColors(rec *display.Recorder) []colors.RGB {
	var fills []colors.RGB
	var current colors.RGB
	for _, c := range rec.Calls() {
		switch c.Op {
		case display.OpSetColor:
			current = c.Color
		case display.OpFillRoundRect:
			fills = append(fills, current)
		}
	}
	return fills
}

func equalRGB(a, b []colors.RGB) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestStatusInvariant 任意操作序列后状态文字与状态保持一致
func TestStatusInvariant(t *testing.T) {
	f, _ := newTestFactory(t)
	b := newPump(t, f)
	rec := display.NewRecorder()
	touch := display.NewScriptedTouch(0)

	check := func(step string) {
		t.Helper()
		want := "OFF"
		if b.State() {
			want = "ON"
		}
		if b.StatusText() != want {
			t.Fatalf("%s: state=%v but status=%q", step, b.State(), b.StatusText())
		}
	}

	check("construct")
	for i := 0; i < 20; i++ {
		switch i % 4 {
		case 0:
			touch.Press(i)
			_ = b.HoldOnOff(rec, touch)
			check("HoldOnOff")
		case 1:
			_ = b.SetState(i%3 == 0)
			check("SetState")
		case 2:
			_ = b.Press(rec)
			_ = b.Release(rec)
			check("Press/Release")
		case 3:
			c, err := b.Clone()
			if err != nil {
				t.Fatal(err)
			}
			if c.State() != b.State() || c.StatusText() != b.StatusText() {
				t.Fatal("clone desynchronized")
			}
			c.Destroy()
		}
	}
}
