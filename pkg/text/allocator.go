// Package text 提供按钮独占的文字缓冲区及可替换的分配器
//
// 设备内存有限，标签文字的字节预算由 Allocator 统一记账：
// 每个非空缓冲区持有一个 Handle，释放时归还预算。
package text

import "errors"

// Handle 一次分配的所有权凭证
// NoHandle 表示没有分配（空文字）
type Handle uint64

// NoHandle 空缓冲区使用的凭证
const NoHandle Handle = 0

var (
	// ErrExhausted 分配器预算不足
	ErrExhausted = errors.New("text: label arena exhausted")
	// ErrNoAllocator 缓冲区没有可用的分配器
	ErrNoAllocator = errors.New("text: no allocator")
)

// Allocator 文字缓冲区分配器接口
// 用于依赖注入，支持测试时 mock
type Allocator interface {
	// Allocate 为 n 字节申请一个凭证
	Allocate(n int) (Handle, error)
	// Release 归还凭证，未知凭证应被忽略
	Release(h Handle)
}

// Heap 不限容量的分配器
type Heap struct {
	next Handle
}

// NewHeap 创建堆分配器
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate 总是成功
func (h *Heap) Allocate(n int) (Handle, error) {
	h.next++
	return h.next, nil
}

// Release 由 GC 回收，无需记账
func (h *Heap) Release(Handle) {}

// ArenaStats 固定容量分配器的统计信息
type ArenaStats struct {
	Capacity        int
	Used            int
	Live            int
	Failed          int
	UnknownReleases int
}

// Arena 固定字节容量的分配器
// 模拟嵌入式设备上有限的标签内存
type Arena struct {
	capacity int
	used     int
	next     Handle
	sizes    map[Handle]int
	failed   int
	unknown  int
}

// NewArena 创建容量为 capacity 字节的分配器
func NewArena(capacity int) *Arena {
	return &Arena{
		capacity: capacity,
		sizes:    make(map[Handle]int),
	}
}

// Allocate 预算不足时返回 ErrExhausted
func (a *Arena) Allocate(n int) (Handle, error) {
	if n < 0 || a.used+n > a.capacity {
		a.failed++
		return NoHandle, ErrExhausted
	}
	a.next++
	a.sizes[a.next] = n
	a.used += n
	return a.next, nil
}

// Release 归还预算
func (a *Arena) Release(h Handle) {
	n, ok := a.sizes[h]
	if !ok {
		a.unknown++
		return
	}
	delete(a.sizes, h)
	a.used -= n
}

// Stats 返回当前统计
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		Capacity:        a.capacity,
		Used:            a.used,
		Live:            len(a.sizes),
		Failed:          a.failed,
		UnknownReleases: a.unknown,
	}
}

// Tracker 记录每次分配与释放的分配器包装
// 用于验证"每个缓冲区恰好释放一次"
type Tracker struct {
	inner          Allocator
	live           map[Handle]int
	released       map[Handle]bool
	allocations    int
	releases       int
	doubleReleases int
}

// NewTracker 包装 inner；inner 为 nil 时使用 Heap
func NewTracker(inner Allocator) *Tracker {
	if inner == nil {
		inner = NewHeap()
	}
	return &Tracker{
		inner:    inner,
		live:     make(map[Handle]int),
		released: make(map[Handle]bool),
	}
}

// Allocate 委托给被包装的分配器并记录
func (t *Tracker) Allocate(n int) (Handle, error) {
	h, err := t.inner.Allocate(n)
	if err != nil {
		return NoHandle, err
	}
	t.allocations++
	t.live[h] = n
	delete(t.released, h)
	return h, nil
}

// Release 记录释放；重复释放会被计数但不会转发
func (t *Tracker) Release(h Handle) {
	if t.released[h] {
		t.doubleReleases++
		return
	}
	if _, ok := t.live[h]; !ok {
		return
	}
	delete(t.live, h)
	t.released[h] = true
	t.releases++
	t.inner.Release(h)
}

// Live 尚未释放的分配数
func (t *Tracker) Live() int { return len(t.live) }

// LiveBytes 尚未释放的字节数
func (t *Tracker) LiveBytes() int {
	total := 0
	for _, n := range t.live {
		total += n
	}
	return total
}

// Allocations 成功分配的次数
func (t *Tracker) Allocations() int { return t.allocations }

// Releases 有效释放的次数
func (t *Tracker) Releases() int { return t.releases }

// DoubleReleases 重复释放的次数
func (t *Tracker) DoubleReleases() int { return t.doubleReleases }
