// Package cli 实现 tftui 命令行
//
// 命令：
//   - run: 在 ebiten 窗口或终端中运行按钮屏幕
//   - trace: 将屏幕绘制到记录器并输出绘制调用序列
//   - inspect: 以表格列出屏幕上的按钮
//
// 所有命令支持 --verbose (-v) 输出调试日志，日志器通过 context 传递。
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/tftui/internal/logger"
)

var version = "dev"

// SetVersion 设置 --version 显示的版本号
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute 运行命令行
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand 创建根命令及全部子命令
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "tftui",
		Short:        "tftui drives touchscreen buttons on a TFT panel or a simulator",
		Long:         `tftui loads a screen layout of touchscreen buttons and runs it in an ebiten window or a terminal, or traces the drawing calls it would send to the panel.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l := logger.New(os.Stderr, logger.Level(verbose))
			cmd.SetContext(logger.WithContext(cmd.Context(), l))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newInspectCmd())

	return root
}
