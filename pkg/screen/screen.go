// Package screen 将屏幕布局组装为一组按钮，并负责触摸的命中检测与分发
package screen

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/config"
	"github.com/decker502/tftui/pkg/display"
	"github.com/decker502/tftui/pkg/text"
	"github.com/decker502/tftui/pkg/widget"
)

var (
	ErrNilConfig  = errors.New("nil screen config")
	ErrNilFactory = errors.New("nil button factory")
	ErrNoButton   = errors.New("no such button")
)

// entry 一个具名按钮
type entry struct {
	name   string
	button *widget.Button
}

// Screen 一屏按钮
//
// 职责：
//   - 按布局构造全部按钮（失败时销毁已构造的按钮）
//   - 命中检测：后声明的按钮在上层
//   - 分发触摸：阻塞式 Touch，或事件驱动的 PointerDown / PointerUp
//
// 注意：不支持并发访问
type Screen struct {
	name   string
	width  int
	height int

	entries []entry
	byName  map[string]*widget.Button

	// active PointerDown 命中的按钮，等待 PointerUp
	active *entry

	onToggle func(name string, on bool)
	onClick  func(name string)

	factory *widget.Factory
	logger  *log.Logger
}

// Option 屏幕配置项
type Option func(*Screen)

// WithOnToggle 开关按钮松开并翻转后的回调
func WithOnToggle(fn func(name string, on bool)) Option {
	return func(s *Screen) { s.onToggle = fn }
}

// WithOnClick 普通按钮松开后的回调
func WithOnClick(fn func(name string)) Option {
	return func(s *Screen) { s.onClick = fn }
}

// WithLogger 使用指定的日志记录器
func WithLogger(l *log.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewFactory 按布局创建按钮工厂
// 布局设置了 LabelArena 时使用固定容量的分配器；opts 在布局设置之后应用
func NewFactory(cfg *config.ScreenConfig, logger *log.Logger, opts ...widget.Option) (*widget.Factory, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, fmt.Errorf("screen %q: %w", cfg.Name, err)
	}

	var alloc text.Allocator = text.NewHeap()
	if cfg.LabelArena > 0 {
		alloc = text.NewArena(cfg.LabelArena)
	}

	base := []widget.Option{
		widget.WithAllocator(alloc),
		widget.WithScheme(scheme),
		widget.WithLogger(logger),
	}
	return widget.NewFactory(append(base, opts...)...), nil
}

// New 按布局构造屏幕
func New(f *widget.Factory, cfg *config.ScreenConfig, opts ...Option) (*Screen, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if f == nil {
		return nil, fmt.Errorf("screen %q: %w", cfg.Name, ErrNilFactory)
	}
	s := &Screen{
		name:    cfg.Name,
		width:   cfg.Width,
		height:  cfg.Height,
		byName:  make(map[string]*widget.Button, len(cfg.Buttons)),
		factory: f,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("Screen")

	for _, bc := range cfg.Buttons {
		if _, dup := s.byName[bc.Name]; dup {
			s.Destroy()
			return nil, fmt.Errorf("screen %q: duplicate button name %q", s.name, bc.Name)
		}

		b, err := s.build(bc)
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("screen %q: button %q: %w", s.name, bc.Name, err)
		}

		s.entries = append(s.entries, entry{name: bc.Name, button: b})
		s.byName[bc.Name] = b
	}

	s.logger.Debug("screen built", "name", s.name, "buttons", len(s.entries))
	return s, nil
}

// build 根据按钮配置构造按钮
// 未配置配色时：普通按钮使用松开配色，开关按钮使用初始状态对应的配色
func (s *Screen) build(bc config.ButtonConfig) (*widget.Button, error) {
	scheme := s.factory.Scheme()
	base := scheme.Resting
	if bc.IsOnOff() {
		base = scheme.ForState(bc.State)
	}
	palette, err := bc.Palette.Resolve(base)
	if err != nil {
		return nil, err
	}

	spec := widget.Spec{
		Palette: palette,
		Rect:    rectOf(bc.Rect),
		Label:   widget.Caption{Text: bc.Label, At: pointOf(bc.LabelAt)},
		Fat:     bc.Fat,
	}

	if !bc.IsOnOff() {
		return s.factory.NewButton(spec)
	}

	return s.factory.NewOnOffButton(widget.OnOffSpec{
		Spec:     spec,
		Label2:   widget.Caption{Text: bc.Label2, At: pointOf(bc.Label2At)},
		StatusAt: pointOf(bc.StatusAt),
		State:    bc.State,
	})
}

func rectOf(v []int) widget.Rect {
	if len(v) != 4 {
		return widget.Rect{}
	}
	return widget.Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
}

func pointOf(v []int) widget.Point {
	if len(v) != 2 {
		return widget.Point{}
	}
	return widget.Point{X: v[0], Y: v[1]}
}

// Name 屏幕名称
func (s *Screen) Name() string { return s.name }

// Size 屏幕尺寸（像素）
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// Factory 返回构造按钮的工厂
func (s *Screen) Factory() *widget.Factory { return s.factory }

// Scheme 返回交互配色方案
func (s *Screen) Scheme() colors.Scheme { return s.factory.Scheme() }

// Button 按名称查找按钮
func (s *Screen) Button(name string) (*widget.Button, bool) {
	b, ok := s.byName[name]
	return b, ok
}

// Names 按声明顺序返回按钮名称
func (s *Screen) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Len 按钮数量
func (s *Screen) Len() int { return len(s.entries) }

// Draw 按声明顺序绘制全部按钮
func (s *Screen) Draw(r display.Renderer) error {
	for _, e := range s.entries {
		if err := e.button.Render(r); err != nil {
			return fmt.Errorf("draw %q: %w", e.name, err)
		}
	}
	return nil
}

// HitTest 查找包含点 (x, y) 的最上层按钮
func (s *Screen) HitTest(x, y int) (string, *widget.Button, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.button.Contains(x, y) {
			return e.name, e.button, true
		}
	}
	return "", nil, false
}

// Touch 阻塞式分发一次触摸
// 开关按钮执行 HoldOnOff，普通按钮执行 Hold；未命中任何按钮时返回 ""
func (s *Screen) Touch(r display.Renderer, t display.TouchSource, x, y int) (string, error) {
	name, b, ok := s.HitTest(x, y)
	if !ok {
		s.logger.Debug("touch missed", "x", x, "y", y)
		return "", nil
	}
	return name, s.hold(name, b, r, t)
}

// Press 阻塞式按下指定名称的按钮，不做命中检测
func (s *Screen) Press(r display.Renderer, t display.TouchSource, name string) error {
	b, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("screen %q: %w: %q", s.name, ErrNoButton, name)
	}
	return s.hold(name, b, r, t)
}

func (s *Screen) hold(name string, b *widget.Button, r display.Renderer, t display.TouchSource) error {
	if b.IsOnOff() {
		if err := b.HoldOnOff(r, t); err != nil {
			return err
		}
		s.notifyToggle(name, b)
		return nil
	}

	if err := b.Hold(r, t); err != nil {
		return err
	}
	s.notifyClick(name)
	return nil
}

// PointerDown 按下（事件驱动的宿主使用）
// 已有按下的按钮时忽略，保证每对 down/up 只产生一次按压
func (s *Screen) PointerDown(r display.Renderer, x, y int) (string, error) {
	if s.active != nil {
		return s.active.name, nil
	}

	name, b, ok := s.HitTest(x, y)
	if !ok {
		return "", nil
	}
	if err := b.Press(r); err != nil {
		return name, err
	}

	s.active = &entry{name: name, button: b}
	return name, nil
}

// PointerUp 松开（事件驱动的宿主使用）
// 没有按下的按钮时无效果
func (s *Screen) PointerUp(r display.Renderer) (string, error) {
	if s.active == nil {
		return "", nil
	}
	e := *s.active
	s.active = nil

	if err := e.button.Release(r); err != nil {
		return e.name, err
	}

	if e.button.IsOnOff() {
		s.notifyToggle(e.name, e.button)
	} else {
		s.notifyClick(e.name)
	}
	return e.name, nil
}

// Active 当前按下的按钮名称
func (s *Screen) Active() (string, bool) {
	if s.active == nil {
		return "", false
	}
	return s.active.name, true
}

func (s *Screen) notifyToggle(name string, b *widget.Button) {
	s.logger.Info("toggled", "button", name, "state", b.StatusText())
	if s.onToggle != nil {
		s.onToggle(name, b.State())
	}
}

func (s *Screen) notifyClick(name string) {
	s.logger.Info("clicked", "button", name)
	if s.onClick != nil {
		s.onClick(name)
	}
}

// Destroy 销毁全部按钮
// 重复调用无效果
func (s *Screen) Destroy() {
	for _, e := range s.entries {
		e.button.Destroy()
	}
	s.entries = nil
	s.byName = make(map[string]*widget.Button)
	s.active = nil
}
