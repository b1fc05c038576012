package ebitenui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/display"
	"github.com/decker502/tftui/pkg/screen"
)

// PointerEvent 一帧内的指针边沿
type PointerEvent struct {
	// JustPressed 本帧刚按下，X/Y 为按下位置
	JustPressed bool
	// JustReleased 本帧刚松开
	JustReleased bool
	X, Y         int
}

// ReadPointer 读取本帧的指针边沿
// 同时支持触摸和鼠标，优先检测触摸
func ReadPointer() PointerEvent {
	var ev PointerEvent

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		ev.JustPressed = true
		ev.X, ev.Y = ebiten.TouchPosition(ids[0])
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.JustPressed = true
		ev.X, ev.Y = ebiten.CursorPosition()
	}

	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		ev.JustReleased = true
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ev.JustReleased = true
	}

	return ev
}

// Game 实现 ebiten.Game
//
// 每帧流程：
//  1. Update 读取指针边沿，分发到 screen.PointerDown / PointerUp
//  2. Update 按当前按钮状态重建绘制列表
//  3. Draw 清屏后重放绘制列表
type Game struct {
	screen   *screen.Screen
	renderer *Renderer
	logger   *log.Logger

	// input 指针读取函数，测试时可替换
	input func() PointerEvent

	// textFailed 文字绘制失败已记录，避免每帧重复告警
	textFailed bool
}

// NewGame 创建游戏循环
func NewGame(s *screen.Screen, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		screen:   s,
		renderer: NewRenderer(),
		logger:   logger.WithPrefix("EbitenUI"),
		input:    ReadPointer,
	}
}

// Renderer 返回绘制列表
func (g *Game) Renderer() *Renderer { return g.renderer }

// Update 处理输入并重建绘制列表
func (g *Game) Update() error {
	return g.step(g.input())
}

// step 处理一帧的指针事件
// 同一帧内先处理按下再处理松开，快速点击也能完成一次完整的按压
func (g *Game) step(ev PointerEvent) error {
	var r display.Renderer = g.renderer

	if ev.JustPressed {
		if _, err := g.screen.PointerDown(r, ev.X, ev.Y); err != nil {
			g.logger.Warn("press failed", "x", ev.X, "y", ev.Y, "err", err)
		}
	}
	if ev.JustReleased {
		if _, err := g.screen.PointerUp(r); err != nil {
			g.logger.Warn("release failed", "err", err)
		}
	}

	g.renderer.Reset()
	if err := g.screen.Draw(r); err != nil {
		return fmt.Errorf("failed to draw screen: %w", err)
	}
	return nil
}

// Draw 清屏并重放绘制列表
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(colors.Background)
	if err := g.renderer.Replay(dst); err != nil && !g.textFailed {
		g.textFailed = true
		g.logger.Error("failed to draw text", "err", err)
	}
}

// Layout 返回屏幕的逻辑尺寸
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Size()
}

// Run 打开窗口并运行，scale 为窗口相对逻辑尺寸的放大倍数
func Run(s *screen.Screen, title string, scale int, logger *log.Logger) error {
	if scale < 1 {
		scale = 1
	}
	if err := LoadFaces(); err != nil {
		return err
	}
	w, h := s.Size()
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)

	game := NewGame(s, logger)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
