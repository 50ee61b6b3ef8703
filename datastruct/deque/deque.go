package deque

import "errors"

var _ Dequeue[int] = &Deque[int]{}

const minCapacity int = 1 << 4

var (
	// ErrorEmpty is returned by RemBeg, RemEnd, PeekBeg and PeekEnd when the
	// container holds no elements. The container is left untouched.
	ErrorEmpty = errors.New("Deque is empty.")
)

// Deque 使用切片实现的循环队列, 容量总是 2 的幂, 下标通过掩码回绕.
// 零值可以直接使用. 不是并发安全的, 多个 goroutine 使用时需要调用方加锁.
type Deque[T any] struct {
	head     int
	size     int
	elements []T
}

// New creates an empty deque with the default capacity.
func New[T any]() *Deque[T] {
	return NewWithCap[T](minCapacity)
}

// NewWithCap creates an empty deque able to hold at least c elements before
// growing. A non-positive c defers allocation to the first insertion.
func NewWithCap[T any](c int) *Deque[T] {
	if c <= 0 {
		return &Deque[T]{}
	}
	return &Deque[T]{
		elements: make([]T, calculateCapacity(c-1)),
	}
}

func (d *Deque[T]) AddBeg(value T) {
	if d.size == len(d.elements) {
		d.grow()
	}
	d.head = (d.head - 1) & d.mask()
	d.elements[d.head] = value
	d.size++
}

func (d *Deque[T]) AddEnd(value T) {
	if d.size == len(d.elements) {
		d.grow()
	}
	d.elements[(d.head+d.size)&d.mask()] = value
	d.size++
}

func (d *Deque[T]) RemBeg() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrorEmpty
	}
	result := d.elements[d.head]
	// 释放引用, 避免被移除的元素无法回收
	d.elements[d.head] = zero
	d.head = (d.head + 1) & d.mask()
	d.size--
	return result, nil
}

func (d *Deque[T]) RemEnd() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrorEmpty
	}
	t := (d.head + d.size - 1) & d.mask()
	result := d.elements[t]
	d.elements[t] = zero
	d.size--
	return result, nil
}

func (d *Deque[T]) PeekBeg() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	return d.elements[d.head], nil
}

func (d *Deque[T]) PeekEnd() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrorEmpty
	}
	return d.elements[(d.head+d.size-1)&d.mask()], nil
}

func (d *Deque[T]) Count() int {
	return d.size
}

func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// Cap reports the size of the backing store.
func (d *Deque[T]) Cap() int {
	return len(d.elements)
}

// Clear removes every element but keeps the backing store.
func (d *Deque[T]) Clear() {
	clear(d.elements)
	d.head = 0
	d.size = 0
}

// Trim shrinks the backing store to the smallest power of two that still
// holds every element. It never grows the store.
func (d *Deque[T]) Trim() {
	newCap := calculateCapacity(d.size - 1)
	if newCap >= d.Cap() {
		return
	}
	d.resize(newCap)
}

// ForEach 从头到尾遍历, f 返回 false 时停止
func (d *Deque[T]) ForEach(f func(value T, index int) bool) {
	for i := 0; i < d.size; i++ {
		if !f(d.elements[(d.head+i)&d.mask()], i) {
			break
		}
	}
}

// Values returns a copy of the elements from front to back.
func (d *Deque[T]) Values() []T {
	res := make([]T, d.size)
	d.copyTo(res)
	return res
}

func (d *Deque[T]) mask() int {
	return len(d.elements) - 1
}

func (d *Deque[T]) grow() {
	newCapacity := d.Cap() << 1
	if newCapacity == 0 {
		newCapacity = minCapacity
	}
	d.resize(newCapacity)
}

// resize 按逻辑顺序把元素搬到新数组的 0 位置开始
func (d *Deque[T]) resize(newCapacity int) {
	newElements := make([]T, newCapacity)
	d.copyTo(newElements)
	d.elements = newElements
	d.head = 0
}

func (d *Deque[T]) copyTo(dst []T) {
	if d.size == 0 {
		return
	}
	if d.head+d.size <= d.Cap() {
		copy(dst, d.elements[d.head:d.head+d.size])
		return
	}
	n := copy(dst, d.elements[d.head:])
	copy(dst[n:], d.elements[:d.size-n])
}

func calculateCapacity(expected int) int {
	initialCapacity := minCapacity
	if expected >= initialCapacity {
		initialCapacity = expected
		initialCapacity |= initialCapacity >> 1
		initialCapacity |= initialCapacity >> 2
		initialCapacity |= initialCapacity >> 4
		initialCapacity |= initialCapacity >> 8
		initialCapacity |= initialCapacity >> 16
		initialCapacity |= initialCapacity >> 32
		initialCapacity++
	}
	return initialCapacity
}
