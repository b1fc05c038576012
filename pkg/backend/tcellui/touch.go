package tcellui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultPollInterval 按住期间的采样间隔
const DefaultPollInterval = 20 * time.Millisecond

// Touch 由鼠标事件驱动的 display.TouchSource
//
// 左键按住期间 DataAvailable 返回 true，每次等待至多一个采样间隔；
// 按住期间收到的非鼠标事件暂存起来，由事件循环随后处理。
type Touch struct {
	events   <-chan tcell.Event
	interval time.Duration

	// flush 每次采样前调用，用于把按下配色显示到终端
	flush func()

	held    bool
	samples int
	pending []tcell.Event
}

// NewTouch 创建触摸源，interval 不大于 0 时使用默认值
func NewTouch(events <-chan tcell.Event, interval time.Duration, flush func()) *Touch {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Touch{events: events, interval: interval, flush: flush}
}

// Begin 标记一次按下的开始（由触发按下的鼠标事件调用）
func (t *Touch) Begin() {
	t.held = true
	t.samples = 0
}

// Held 左键是否仍按住
func (t *Touch) Held() bool { return t.held }

// Samples 本次按下读取的采样数
func (t *Touch) Samples() int { return t.samples }

// DataAvailable 左键仍按住时返回 true
func (t *Touch) DataAvailable() bool {
	if t.flush != nil {
		t.flush()
	}
	if !t.held {
		return false
	}

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			t.held = false
			return false
		}
		t.handle(ev)
	case <-timer.C:
	}
	return t.held
}

// Read 读取一个采样
func (t *Touch) Read() {
	t.samples++
}

// TakePending 取出按住期间暂存的事件
func (t *Touch) TakePending() []tcell.Event {
	out := t.pending
	t.pending = nil
	return out
}

func (t *Touch) handle(ev tcell.Event) {
	if m, ok := ev.(*tcell.EventMouse); ok {
		t.held = m.Buttons()&tcell.Button1 != 0
		return
	}
	t.pending = append(t.pending, ev)
}
