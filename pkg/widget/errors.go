package widget

import (
	"errors"
	"fmt"

	"github.com/decker502/tftui/pkg/identity"
)

// ErrorKind 错误类别
type ErrorKind int

const (
	// KindUnknown 未知错误
	KindUnknown ErrorKind = iota
	// KindGeometry 矩形坐标无效
	KindGeometry
	// KindLabel 标签槽不存在
	KindLabel
	// KindAllocation 文字缓冲区分配失败
	KindAllocation
	// KindHandle 缺少渲染器或触摸源
	KindHandle
	// KindState 该按钮类型不支持开关状态
	KindState
	// KindLifecycle 按钮已销毁
	KindLifecycle
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindLabel:
		return "label"
	case KindAllocation:
		return "allocation"
	case KindHandle:
		return "handle"
	case KindState:
		return "state"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// 可用 errors.Is 匹配的哨兵错误
var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrNoLabelSlot     = errors.New("button has no such label")
	ErrAllocation      = errors.New("label allocation failed")
	ErrNilRenderer     = errors.New("nil renderer")
	ErrNilTouch        = errors.New("nil touch source")
	ErrNilSource       = errors.New("nil source button")
	ErrNotOnOff        = errors.New("not an on/off button")
	ErrDestroyed       = errors.New("button destroyed")
)

// Error 按钮操作失败时返回的结构化错误
// 失败的操作不会修改按钮的任何状态
type Error struct {
	// Op 失败的操作（如 "widget.NewButton"）
	Op string
	// Kind 错误类别
	Kind ErrorKind
	// ID 相关按钮的ID，构造失败时为 identity.Invalid
	ID identity.ID
	// Err 底层错误
	Err error
}

func (e *Error) Error() string {
	if e.ID != identity.Invalid {
		return fmt.Sprintf("%s [%s] button=%d: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func geometryError(op string, id identity.ID, r Rect) error {
	return &Error{Op: op, Kind: KindGeometry, ID: id, Err: fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidGeometry, r.X1, r.Y1, r.X2, r.Y2)}
}

func allocationError(op string, id identity.ID, cause error) error {
	return &Error{Op: op, Kind: KindAllocation, ID: id, Err: fmt.Errorf("%w: %w", ErrAllocation, cause)}
}

func kindError(op string, kind ErrorKind, id identity.ID, err error) error {
	return &Error{Op: op, Kind: kind, ID: id, Err: err}
}
