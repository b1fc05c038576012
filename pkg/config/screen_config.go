package config

import (
	_ "embed"
	"fmt"

	"github.com/decker502/tftui/pkg/colors"
)

//go:embed defaults/screen.yaml
var defaultScreenYAML []byte

// 按钮类型
const (
	KindSimple = "simple"
	KindOnOff  = "onoff"
)

// 屏幕默认尺寸（2.8 寸 TFT 横屏）
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// ScreenConfig 屏幕布局配置
type ScreenConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`

	// LabelArena 标签文字的字节预算，0 表示不限制
	LabelArena int `yaml:"labelArena" toml:"labelArena"`

	// Theme 可选的内联配色方案
	Theme *ThemeConfig `yaml:"theme" toml:"theme"`

	Buttons []ButtonConfig `yaml:"buttons" toml:"buttons"`
}

// ButtonConfig 单个按钮配置
//
// 坐标格式：
//   - Rect: [x1, y1, x2, y2]
//   - LabelAt / Label2At / StatusAt: [x, y]
type ButtonConfig struct {
	Name     string `yaml:"name" toml:"name"`
	Kind     string `yaml:"kind" toml:"kind"` // "simple" 或 "onoff"，默认 "simple"
	Rect     []int  `yaml:"rect" toml:"rect"`
	Label    string `yaml:"label" toml:"label"`
	LabelAt  []int  `yaml:"labelAt" toml:"labelAt"`
	Label2   string `yaml:"label2" toml:"label2"`
	Label2At []int  `yaml:"label2At" toml:"label2At"`
	StatusAt []int  `yaml:"statusAt" toml:"statusAt"`
	Fat      bool   `yaml:"fat" toml:"fat"`
	State    bool   `yaml:"state" toml:"state"`

	// Palette 初始配色，未配置时使用配色方案
	Palette *PaletteConfig `yaml:"palette" toml:"palette"`
}

// LoadScreenConfig 从 YAML 或 TOML 文件加载屏幕布局
func LoadScreenConfig(path string) (*ScreenConfig, error) {
	data, format, err := readConfigFile("screen", path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseScreenConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseScreenConfig 解析屏幕布局数据
func ParseScreenConfig(data []byte, format Format) (*ScreenConfig, error) {
	var cfg ScreenConfig
	if err := decode(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse screen config %s: %w", format, err)
	}

	applyScreenDefaults(&cfg)

	if err := validateScreenConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid screen config: %w", err)
	}
	return &cfg, nil
}

// DefaultScreenConfig 返回内置的演示布局
func DefaultScreenConfig() *ScreenConfig {
	cfg, err := ParseScreenConfig(defaultScreenYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default screen config is invalid: %v", err))
	}
	return cfg
}

// Scheme 返回布局使用的配色方案
func (c *ScreenConfig) Scheme() (colors.Scheme, error) {
	return c.Theme.Scheme()
}

// Button 按名称查找按钮配置
func (c *ScreenConfig) Button(name string) (ButtonConfig, bool) {
	for _, b := range c.Buttons {
		if b.Name == name {
			return b, true
		}
	}
	return ButtonConfig{}, false
}

// IsOnOff 是否为开关按钮
func (b ButtonConfig) IsOnOff() bool { return b.Kind == KindOnOff }

// Bounds 返回矩形坐标
func (b ButtonConfig) Bounds() (x1, y1, x2, y2 int) {
	return b.Rect[0], b.Rect[1], b.Rect[2], b.Rect[3]
}

// applyScreenDefaults 为缺失的可选字段设置默认值
func applyScreenDefaults(cfg *ScreenConfig) {
	if cfg.Name == "" {
		cfg.Name = "main"
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}

	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]
		if b.Kind == "" {
			b.Kind = KindSimple
		}
		// 标签默认位于矩形左上角内侧
		if len(b.LabelAt) == 0 && len(b.Rect) == 4 {
			b.LabelAt = []int{b.Rect[0] + 4, b.Rect[1] + 4}
		}
		if b.Kind != KindOnOff {
			continue
		}
		if len(b.Label2At) == 0 && len(b.LabelAt) == 2 {
			b.Label2At = []int{b.LabelAt[0], b.LabelAt[1] + 12}
		}
		if len(b.StatusAt) == 0 && len(b.Rect) == 4 {
			b.StatusAt = []int{b.Rect[2] - 28, b.Rect[1] + 4}
		}
	}
}

// validateScreenConfig 验证屏幕布局的完整性和合法性
func validateScreenConfig(cfg *ScreenConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.LabelArena < 0 {
		return fmt.Errorf("labelArena cannot be negative, got %d", cfg.LabelArena)
	}
	if _, err := cfg.Theme.Scheme(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Buttons))
	for i, b := range cfg.Buttons {
		if b.Name == "" {
			return fmt.Errorf("button %d: name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("button %d: duplicate name %q", i, b.Name)
		}
		seen[b.Name] = true

		if b.Kind != KindSimple && b.Kind != KindOnOff {
			return fmt.Errorf("button %q: kind must be one of: simple, onoff, got %q", b.Name, b.Kind)
		}
		if len(b.Rect) != 4 {
			return fmt.Errorf("button %q: rect must have 4 values [x1, y1, x2, y2], got %d", b.Name, len(b.Rect))
		}

		points := []struct {
			name string
			v    []int
		}{
			{"labelAt", b.LabelAt},
			{"label2At", b.Label2At},
			{"statusAt", b.StatusAt},
		}
		for _, p := range points {
			if len(p.v) != 0 && len(p.v) != 2 {
				return fmt.Errorf("button %q: %s must have 2 values [x, y], got %d", b.Name, p.name, len(p.v))
			}
		}

		if b.Kind == KindSimple && b.Label2 != "" {
			return fmt.Errorf("button %q: label2 requires kind onoff", b.Name)
		}
		if _, err := b.Palette.Resolve(colors.Palette{}); err != nil {
			return fmt.Errorf("button %q: palette: %w", b.Name, err)
		}
	}
	return nil
}
