package colors

import (
	"image/color"
	"testing"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "带井号", input: "#ff8000", want: RGB{255, 128, 0}},
		{name: "不带井号", input: "00ff7f", want: RGB{0, 255, 127}},
		{name: "命名颜色", input: "Purple", want: Purple},
		{name: "命名颜色带空格", input: "  yellow ", want: Yellow},
		{name: "长度错误", input: "#fff", wantErr: true},
		{name: "非十六进制", input: "#gggggg", wantErr: true},
		{name: "未知名称", input: "teal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRGB(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRGB(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGB_String(t *testing.T) {
	if got := (RGB{1, 2, 255}).String(); got != "#0102ff" {
		t.Errorf("String() = %q, want %q", got, "#0102ff")
	}
}

func TestRGB_ImplementsColor(t *testing.T) {
	var c color.Color = White
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = (%x, %x, %x, %x), want all 0xffff", r, g, b, a)
	}

	r, _, _, _ = Black.RGBA()
	if r != 0 {
		t.Errorf("Black red channel = %x, want 0", r)
	}
}

func TestZeroValueIsNeutral(t *testing.T) {
	var p Palette
	if p.Fill != Neutral || p.Border != Neutral || p.Font != Neutral || p.TextBackground != Neutral {
		t.Errorf("zero Palette should be all neutral, got %+v", p)
	}
}

func TestDefaultScheme(t *testing.T) {
	s := DefaultScheme()

	if s.Pressed.Fill != Yellow || s.Pressed.TextBackground != Yellow {
		t.Errorf("pressed background should be yellow, got %+v", s.Pressed)
	}
	if s.Pressed.Border != Purple || s.Pressed.Font != Purple {
		t.Errorf("pressed foreground should be purple, got %+v", s.Pressed)
	}
	if s.ForState(true) != s.On {
		t.Error("ForState(true) should return On palette")
	}
	if s.ForState(false) != s.Off {
		t.Error("ForState(false) should return Off palette")
	}
	if s.On == s.Off {
		t.Error("On and Off palettes must differ")
	}
}
