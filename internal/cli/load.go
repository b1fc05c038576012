package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decker502/tftui/internal/logger"
	"github.com/decker502/tftui/pkg/config"
	"github.com/decker502/tftui/pkg/screen"
	"github.com/decker502/tftui/pkg/widget"
)

// screenFlags 各命令共用的布局参数
type screenFlags struct {
	screenPath string
	themePath  string
}

// loadConfig 加载布局，未指定文件时使用内置布局
func (f *screenFlags) loadConfig() (*config.ScreenConfig, error) {
	if f.screenPath == "" {
		return config.DefaultScreenConfig(), nil
	}
	return config.LoadScreenConfig(f.screenPath)
}

// build 按参数构造屏幕，--theme 覆盖布局中的配色方案
func (f *screenFlags) build(ctx context.Context, opts ...screen.Option) (*screen.Screen, error) {
	l := logger.FromContext(ctx)

	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}

	var factoryOpts []widget.Option
	if f.themePath != "" {
		scheme, err := config.LoadTheme(f.themePath)
		if err != nil {
			return nil, err
		}
		factoryOpts = append(factoryOpts, widget.WithScheme(scheme))
	}

	factory, err := screen.NewFactory(cfg, l, factoryOpts...)
	if err != nil {
		return nil, err
	}

	s, err := screen.New(factory, cfg, append([]screen.Option{screen.WithLogger(l)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("build screen: %w", err)
	}

	l.Debug("loaded screen", "name", s.Name(), "buttons", s.Len())
	return s, nil
}

func (f *screenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.screenPath, "screen", "s", "", "screen layout file (.yaml, .yml or .toml); built-in demo when empty")
	cmd.Flags().StringVarP(&f.themePath, "theme", "t", "", "theme file overriding the layout's interaction palettes")
}
