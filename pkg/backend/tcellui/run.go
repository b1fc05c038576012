package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/tftui/pkg/screen"
)

// Options 终端运行参数
type Options struct {
	// CellWidth / CellHeight 字符单元尺寸（像素），0 使用默认值
	CellWidth  int
	CellHeight int
	// PollInterval 按住期间的采样间隔
	PollInterval time.Duration
	// Screen 使用已有的终端屏幕（测试时注入模拟屏幕），为 nil 时新建
	Screen tcell.Screen
	Logger *log.Logger
}

// Run 运行终端事件循环，直到 ctx 取消或按下 Esc / q / Ctrl-C
//
// 左键按下命中按钮时调用 screen.Touch 阻塞式处理按住，
// 松开后重绘整屏。
func Run(ctx context.Context, s *screen.Screen, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("TcellUI")

	scr := opts.Screen
	if scr == nil {
		var err error
		scr, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create terminal screen: %w", err)
		}
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer scr.Fini()
	scr.EnableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	renderer := NewRenderer(scr, opts.CellWidth, opts.CellHeight)
	touch := NewTouch(events, opts.PollInterval, scr.Show)
	loop := &eventLoop{screen: s, term: scr, renderer: renderer, touch: touch, logger: logger}

	if err := loop.redraw(); err != nil {
		return err
	}

	for {
		for _, ev := range touch.TakePending() {
			if done, err := loop.handle(ev); done || err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if done, err := loop.handle(ev); done || err != nil {
				return err
			}
		}
	}
}

type eventLoop struct {
	screen   *screen.Screen
	term     tcell.Screen
	renderer *Renderer
	touch    *Touch
	logger   *log.Logger
}

// handle 处理一个事件，返回 true 表示退出
func (l *eventLoop) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			l.logger.Debug("quit requested")
			return true, nil
		}

	case *tcell.EventResize:
		l.term.Sync()
		return false, l.redraw()

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false, nil
		}
		col, row := ev.Position()
		x, y := l.renderer.ToPixel(col, row)

		l.touch.Begin()
		name, err := l.screen.Touch(l.renderer, l.touch, x, y)
		if err != nil {
			l.logger.Warn("touch failed", "button", name, "err", err)
		}
		if name != "" {
			l.logger.Debug("touch handled", "button", name, "samples", l.touch.Samples())
		}
		return false, l.redraw()
	}
	return false, nil
}

// redraw 清屏后重绘全部按钮
func (l *eventLoop) redraw() error {
	l.term.Clear()
	if err := l.screen.Draw(l.renderer); err != nil {
		return fmt.Errorf("failed to draw screen: %w", err)
	}
	l.term.Show()
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
