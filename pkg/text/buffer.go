package text

import "strings"

// Buffer 独占的文字缓冲区
//
// 所有权规则：
//   - 每个非空 Buffer 持有一个分配凭证，只有一个所有者
//   - 复制必须使用 Clone（深拷贝，获得新凭证）
//   - Replace 先分配新内容，失败时保留旧内容
//   - Release 只释放一次，重复调用无效果
//
// 直接对 Buffer 做值复制会共享凭证，调用方不应这样做。
type Buffer struct {
	s      string
	handle Handle
	alloc  Allocator
}

// Empty 创建绑定到分配器的空缓冲区
func Empty(a Allocator) Buffer {
	return Buffer{alloc: a}
}

// New 复制 s 到新缓冲区
// 空字符串不占用分配
func New(a Allocator, s string) (Buffer, error) {
	if a == nil {
		return Buffer{}, ErrNoAllocator
	}
	if s == "" {
		return Buffer{alloc: a}, nil
	}

	h, err := a.Allocate(len(s))
	if err != nil {
		return Buffer{alloc: a}, err
	}

	return Buffer{s: strings.Clone(s), handle: h, alloc: a}, nil
}

// String 返回文字内容（不分配）
func (b Buffer) String() string { return b.s }

// Len 文字字节长度
func (b Buffer) Len() int { return len(b.s) }

// IsEmpty 是否为空
func (b Buffer) IsEmpty() bool { return b.s == "" }

// Handle 返回分配凭证
func (b Buffer) Handle() Handle { return b.handle }

// Replace 替换内容
// 先分配新副本，成功后才释放旧凭证，失败时内容不变
func (b *Buffer) Replace(s string) error {
	nb, err := New(b.alloc, s)
	if err != nil {
		return err
	}
	b.Release()
	*b = nb
	return nil
}

// Clone 深拷贝（获得新的分配凭证）
func (b Buffer) Clone() (Buffer, error) {
	return New(b.alloc, b.s)
}

// Release 释放凭证并清空内容
// 缓冲区之后仍可通过 Replace 复用
func (b *Buffer) Release() {
	if b.handle != NoHandle && b.alloc != nil {
		b.alloc.Release(b.handle)
	}
	b.s = ""
	b.handle = NoHandle
}
