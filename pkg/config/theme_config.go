package config

import (
	"fmt"

	"github.com/decker502/tftui/pkg/colors"
)

// PaletteConfig 单个调色板的配置
// 每个颜色为 "#rrggbb" 或命名颜色，留空时使用基准调色板的对应颜色
type PaletteConfig struct {
	Fill           string `yaml:"fill" toml:"fill"`
	Border         string `yaml:"border" toml:"border"`
	Font           string `yaml:"font" toml:"font"`
	TextBackground string `yaml:"textBackground" toml:"textBackground"`
}

// ThemeConfig 交互配色方案配置
// 未配置的调色板使用 colors.DefaultScheme 中的对应项
type ThemeConfig struct {
	Pressed *PaletteConfig `yaml:"pressed" toml:"pressed"`
	Resting *PaletteConfig `yaml:"resting" toml:"resting"`
	On      *PaletteConfig `yaml:"on" toml:"on"`
	Off     *PaletteConfig `yaml:"off" toml:"off"`
}

// LoadTheme 从 YAML 或 TOML 文件加载配色方案
func LoadTheme(path string) (colors.Scheme, error) {
	data, format, err := readConfigFile("theme", path)
	if err != nil {
		return colors.Scheme{}, err
	}

	scheme, err := ParseTheme(data, format)
	if err != nil {
		return colors.Scheme{}, fmt.Errorf("%s: %w", path, err)
	}
	return scheme, nil
}

// ParseTheme 解析配色方案数据
func ParseTheme(data []byte, format Format) (colors.Scheme, error) {
	var cfg ThemeConfig
	if err := decode(data, format, &cfg); err != nil {
		return colors.Scheme{}, fmt.Errorf("failed to parse theme config %s: %w", format, err)
	}

	scheme, err := cfg.Scheme()
	if err != nil {
		return colors.Scheme{}, fmt.Errorf("invalid theme config: %w", err)
	}
	return scheme, nil
}

// Scheme 将配置转换为配色方案
func (c *ThemeConfig) Scheme() (colors.Scheme, error) {
	scheme := colors.DefaultScheme()
	if c == nil {
		return scheme, nil
	}

	slots := []struct {
		name string
		cfg  *PaletteConfig
		dst  *colors.Palette
	}{
		{"pressed", c.Pressed, &scheme.Pressed},
		{"resting", c.Resting, &scheme.Resting},
		{"on", c.On, &scheme.On},
		{"off", c.Off, &scheme.Off},
	}

	for _, s := range slots {
		p, err := s.cfg.Resolve(*s.dst)
		if err != nil {
			return colors.Scheme{}, fmt.Errorf("%s: %w", s.name, err)
		}
		*s.dst = p
	}
	return scheme, nil
}

// Resolve 以 base 为基准解析调色板
func (p *PaletteConfig) Resolve(base colors.Palette) (colors.Palette, error) {
	if p == nil {
		return base, nil
	}

	fields := []struct {
		name  string
		value string
		dst   *colors.RGB
	}{
		{"fill", p.Fill, &base.Fill},
		{"border", p.Border, &base.Border},
		{"font", p.Font, &base.Font},
		{"textBackground", p.TextBackground, &base.TextBackground},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := colors.ParseRGB(f.value)
		if err != nil {
			return colors.Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return base, nil
}
