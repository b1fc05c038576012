// Package identity 为按钮分配进程内唯一的标识符
package identity

// ID 按钮的唯一标识符
// 0 保留为无效ID
type ID uint64

// Invalid 无效ID
const Invalid ID = 0

// Registry 标识符分配器
// 持有唯一的递增计数器，由按钮工厂显式持有（不使用全局变量）
//
// 注意：不支持并发访问，设备只有一个控制循环
type Registry struct {
	nextID uint64
	// 当前存活的ID集合
	live map[ID]struct{}
}

// NewRegistry 创建一个新的 Registry 实例
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1, // ID从1开始,0保留为无效ID
		live:   make(map[ID]struct{}),
	}
}

// Allocate 分配新ID并标记为存活
// 已分配的ID永不复用，即使已被释放
func (r *Registry) Allocate() ID {
	id := ID(r.nextID)
	r.nextID++
	r.live[id] = struct{}{}
	return id
}

// Release 释放ID（标记为不再存活）
// 对未分配或已释放的ID调用是安全的
func (r *Registry) Release(id ID) {
	delete(r.live, id)
}

// Alive 检查ID是否存活
func (r *Registry) Alive(id ID) bool {
	_, ok := r.live[id]
	return ok
}

// Live 返回存活ID数量
func (r *Registry) Live() int {
	return len(r.live)
}

// Peek 返回下一个将被分配的ID（不分配）
func (r *Registry) Peek() ID {
	return ID(r.nextID)
}

// Reset 重置计数器并清空存活集合
// 仅用于测试，获得确定性的ID序列
func (r *Registry) Reset() {
	r.nextID = 1
	r.live = make(map[ID]struct{})
}
