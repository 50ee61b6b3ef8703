package deque

import (
	"container/list"
)

var _ Dequeue[int] = &BlockDeque[int]{}

// blockCapacity 每个分段的固定容量, 分段本身是一个不扩容的 Deque
const blockCapacity = 1 << 7

// BlockDeque 由定长分段组成的双向链表. 扩容只需要追加一个新分段,
// 不会像 Deque 那样整体拷贝. 链表中不会保留空分段.
// 零值可以直接使用. 不是并发安全的.
type BlockDeque[T any] struct {
	size   int
	blocks list.List
}

func NewBlock[T any]() *BlockDeque[T] {
	return &BlockDeque[T]{}
}

func (b *BlockDeque[T]) AddBeg(value T) {
	var segment *Deque[T]
	if front := b.blocks.Front(); front != nil {
		segment = front.Value.(*Deque[T])
	}
	if segment == nil || segment.Count() == blockCapacity {
		segment = NewWithCap[T](blockCapacity)
		b.blocks.PushFront(segment)
	}
	segment.AddBeg(value)
	b.size++
}

func (b *BlockDeque[T]) AddEnd(value T) {
	var segment *Deque[T]
	if back := b.blocks.Back(); back != nil {
		segment = back.Value.(*Deque[T])
	}
	if segment == nil || segment.Count() == blockCapacity {
		segment = NewWithCap[T](blockCapacity)
		b.blocks.PushBack(segment)
	}
	segment.AddEnd(value)
	b.size++
}

func (b *BlockDeque[T]) RemBeg() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	front := b.blocks.Front()
	segment := front.Value.(*Deque[T])
	result, _ := segment.RemBeg()
	if segment.IsEmpty() {
		b.blocks.Remove(front)
	}
	b.size--
	return result, nil
}

func (b *BlockDeque[T]) RemEnd() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	back := b.blocks.Back()
	segment := back.Value.(*Deque[T])
	result, _ := segment.RemEnd()
	if segment.IsEmpty() {
		b.blocks.Remove(back)
	}
	b.size--
	return result, nil
}

func (b *BlockDeque[T]) PeekBeg() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	return b.blocks.Front().Value.(*Deque[T]).PeekBeg()
}

func (b *BlockDeque[T]) PeekEnd() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	return b.blocks.Back().Value.(*Deque[T]).PeekEnd()
}

func (b *BlockDeque[T]) Count() int {
	return b.size
}

func (b *BlockDeque[T]) IsEmpty() bool {
	return b.size == 0
}

// Blocks reports how many segments are currently linked.
func (b *BlockDeque[T]) Blocks() int {
	return b.blocks.Len()
}

func (b *BlockDeque[T]) Clear() {
	b.blocks.Init()
	b.size = 0
}

func (b *BlockDeque[T]) ForEach(f func(value T, index int) bool) {
	offset := 0
	for e := b.blocks.Front(); e != nil; e = e.Next() {
		segment := e.Value.(*Deque[T])
		stopped := false
		segment.ForEach(func(value T, index int) bool {
			if !f(value, offset+index) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
		offset += segment.Count()
	}
}

func (b *BlockDeque[T]) Values() []T {
	res := make([]T, 0, b.size)
	b.ForEach(func(value T, _ int) bool {
		res = append(res, value)
		return true
	})
	return res
}
