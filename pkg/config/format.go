// Package config 加载配色方案和屏幕布局配置
//
// 支持两种文件格式，按扩展名选择：
//   - .yaml / .yml: gopkg.in/yaml.v3
//   - .toml: github.com/BurntSushi/toml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath 根据文件扩展名判断格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// decode 按格式解析数据到 v
func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// readConfigFile 读取配置文件并判断格式
func readConfigFile(kind, path string) ([]byte, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load %s config %s: %w", kind, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s config file %s: %w", kind, path, err)
	}
	return data, format, nil
}
