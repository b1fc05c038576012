package widget

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/tftui/pkg/colors"
	"github.com/decker502/tftui/pkg/identity"
	"github.com/decker502/tftui/pkg/text"
)

// Factory 按钮工厂
// 持有标识符计数器、文字分配器和交互配色方案，
// 所有按钮都通过工厂构造
type Factory struct {
	ids    *identity.Registry
	alloc  text.Allocator
	scheme colors.Scheme
	logger *log.Logger
}

// Option 工厂配置项
type Option func(*Factory)

// WithRegistry 使用指定的标识符分配器（测试中可注入确定性的ID）
func WithRegistry(r *identity.Registry) Option {
	return func(f *Factory) {
		if r != nil {
			f.ids = r
		}
	}
}

// WithAllocator 使用指定的文字分配器
func WithAllocator(a text.Allocator) Option {
	return func(f *Factory) {
		if a != nil {
			f.alloc = a
		}
	}
}

// WithScheme 使用指定的交互配色方案
func WithScheme(s colors.Scheme) Option {
	return func(f *Factory) {
		f.scheme = s
	}
}

// WithLogger 使用指定的日志记录器
func WithLogger(l *log.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory 创建按钮工厂
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		ids:    identity.NewRegistry(),
		alloc:  text.NewHeap(),
		scheme: colors.DefaultScheme(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.WithPrefix("ButtonFactory")
	return f
}

// Registry 返回标识符分配器
func (f *Factory) Registry() *identity.Registry { return f.ids }

// Allocator 返回文字分配器
func (f *Factory) Allocator() text.Allocator { return f.alloc }

// Scheme 返回交互配色方案
func (f *Factory) Scheme() colors.Scheme { return f.scheme }

// NewEmpty 创建空按钮
// 坐标和文字为零值，所有颜色为中性色，状态为 false
func (f *Factory) NewEmpty() *Button {
	b := f.newButton(ButtonTypeEmpty)
	f.logger.Debug("created empty button", "id", b.id)
	return b
}

// NewButton 创建普通按钮
func (f *Factory) NewButton(spec Spec) (*Button, error) {
	const op = "widget.NewButton"

	if !spec.Rect.Valid() {
		f.logger.Warn("rejected button geometry", "rect", spec.Rect)
		return nil, geometryError(op, identity.Invalid, spec.Rect)
	}

	label, err := text.New(f.alloc, spec.Label.Text)
	if err != nil {
		return nil, allocationError(op, identity.Invalid, err)
	}

	b := f.newButton(ButtonTypeSimple)
	b.rect = spec.Rect
	b.palette = spec.Palette
	b.label = label
	b.labelAt = spec.Label.At
	b.fat = spec.Fat

	f.logger.Debug("created button", "id", b.id, "label", spec.Label.Text)
	return b, nil
}

// NewOnOffButton 创建开关按钮
// 状态文字在构造时立即根据初始状态生成
func (f *Factory) NewOnOffButton(spec OnOffSpec) (*Button, error) {
	const op = "widget.NewOnOffButton"

	if !spec.Rect.Valid() {
		f.logger.Warn("rejected button geometry", "rect", spec.Rect)
		return nil, geometryError(op, identity.Invalid, spec.Rect)
	}

	label, err := text.New(f.alloc, spec.Label.Text)
	if err != nil {
		return nil, allocationError(op, identity.Invalid, err)
	}

	label2, err := text.New(f.alloc, spec.Label2.Text)
	if err != nil {
		label.Release()
		return nil, allocationError(op, identity.Invalid, err)
	}

	status, err := text.New(f.alloc, statusText(spec.State))
	if err != nil {
		label.Release()
		label2.Release()
		return nil, allocationError(op, identity.Invalid, err)
	}

	b := f.newButton(ButtonTypeOnOff)
	b.rect = spec.Rect
	b.palette = spec.Palette
	b.label = label
	b.labelAt = spec.Label.At
	b.label2 = label2
	b.label2At = spec.Label2.At
	b.status = status
	b.statusAt = spec.StatusAt
	b.fat = spec.Fat
	b.state = spec.State

	f.logger.Debug("created on/off button", "id", b.id, "label", spec.Label.Text, "state", b.StatusText())
	return b, nil
}

// newButton 分配ID并初始化空缓冲区
func (f *Factory) newButton(typ ButtonType) *Button {
	return &Button{
		id:      f.ids.Allocate(),
		typ:     typ,
		label:   text.Empty(f.alloc),
		label2:  text.Empty(f.alloc),
		status:  text.Empty(f.alloc),
		factory: f,
	}
}
