package deque

import (
	"strings"

	"github.com/pkg/errors"
)

// Dequeue 双端队列, 只能访问两端
type Dequeue[T any] interface {
	AddBeg(value T)
	AddEnd(value T)
	RemBeg() (T, error)
	RemEnd() (T, error)
	PeekBeg() (T, error)
	PeekEnd() (T, error)
	// Count 元素个数
	Count() int
	IsEmpty() bool
	Clear()
	// ForEach 从头到尾遍历双端队列
	ForEach(f func(value T, index int) bool)
	Values() []T
}

// Impl names a storage strategy.
type Impl string

const (
	ImplRing  Impl = "ring"
	ImplBlock Impl = "block"
)

var ErrorUnknownImpl = errors.New("unknown deque implementation")

// ParseImpl maps a case-insensitive name onto an Impl.
func ParseImpl(name string) (Impl, error) {
	switch impl := Impl(strings.ToLower(strings.TrimSpace(name))); impl {
	case ImplRing, ImplBlock:
		return impl, nil
	default:
		return "", errors.Wrapf(ErrorUnknownImpl, "%q", name)
	}
}

// NewDequeue builds an empty Dequeue backed by impl. capacity is only a hint
// for the ring implementation; segments of the block implementation have a
// fixed size.
func NewDequeue[T any](impl Impl, capacity int) (Dequeue[T], error) {
	switch impl {
	case ImplRing:
		return NewWithCap[T](capacity), nil
	case ImplBlock:
		return NewBlock[T](), nil
	default:
		return nil, errors.Wrapf(ErrorUnknownImpl, "%q", string(impl))
	}
}
