// Package logger 创建带时间戳的 charmbracelet/log 日志器，并通过 context 传递
package logger

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// New 创建日志器，时间格式为 "15:04:05.00"
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level 根据 verbose 标志选择日志级别
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

type ctxKey int

const loggerKey ctxKey = 0

// WithContext 将日志器附加到 context
func WithContext(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext 取出 context 中的日志器，没有时返回 log.Default()
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
