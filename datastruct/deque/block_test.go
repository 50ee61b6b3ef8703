package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockDeque_Segments(t *testing.T) {
	testCases := []struct {
		name       string
		addBeg     int
		addEnd     int
		wantBlocks int
	}{
		{name: "empty", wantBlocks: 0},
		{name: "one full segment from back", addEnd: blockCapacity, wantBlocks: 1},
		{name: "spill over from back", addEnd: blockCapacity + 1, wantBlocks: 2},
		{name: "spill over from front", addBeg: blockCapacity + 1, wantBlocks: 2},
		{name: "both ends", addBeg: blockCapacity, addEnd: blockCapacity, wantBlocks: 2},
		{name: "many segments", addEnd: blockCapacity*4 + 3, wantBlocks: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deque := NewBlock[int]()
			for i := 0; i < tc.addBeg; i++ {
				deque.AddBeg(-i - 1)
			}
			for i := 0; i < tc.addEnd; i++ {
				deque.AddEnd(i)
			}
			assert.Equal(t, tc.addBeg+tc.addEnd, deque.Count())
			assert.Equal(t, tc.wantBlocks, deque.Blocks())

			values := deque.Values()
			for i := 1; i < len(values); i++ {
				assert.Less(t, values[i-1], values[i])
			}
		})
	}
}

// 分段清空后要从链表中摘除
func TestBlockDeque_ReleaseSegments(t *testing.T) {
	deque := NewBlock[int]()
	for i := 0; i < blockCapacity*3; i++ {
		deque.AddEnd(i)
	}
	require.Equal(t, 3, deque.Blocks())

	for i := 0; i < blockCapacity; i++ {
		v, err := deque.RemBeg()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 2, deque.Blocks())

	for i := blockCapacity*3 - 1; i >= blockCapacity*2; i-- {
		v, err := deque.RemEnd()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 1, deque.Blocks())

	for !deque.IsEmpty() {
		_, err := deque.RemEnd()
		require.NoError(t, err)
	}
	assert.Equal(t, 0, deque.Blocks())
}

// 只从一端取, 跨过分段边界
func TestBlockDeque_DrainAcrossSegments(t *testing.T) {
	deque := NewBlock[int]()
	n := blockCapacity*2 + 5
	for i := 0; i < n; i++ {
		deque.AddBeg(i)
	}
	for i := 0; i < n; i++ {
		v, err := deque.RemEnd()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err := deque.PeekBeg()
	assert.Equal(t, ErrorEmpty, err)
}

func TestBlockDeque_ForEachStops(t *testing.T) {
	deque := NewBlock[int]()
	for i := 0; i < blockCapacity*2; i++ {
		deque.AddEnd(i)
	}
	visited := 0
	deque.ForEach(func(value int, index int) bool {
		assert.Equal(t, index, value)
		visited++
		return index < blockCapacity+2
	})
	assert.Equal(t, blockCapacity+3, visited)
}

func TestBlockDeque_Clear(t *testing.T) {
	var deque BlockDeque[string]
	deque.AddBeg("a")
	deque.AddEnd("b")
	deque.Clear()
	assert.True(t, deque.IsEmpty())
	assert.Equal(t, 0, deque.Blocks())

	deque.AddEnd("c")
	v, err := deque.PeekBeg()
	assert.NoError(t, err)
	assert.Equal(t, "c", v)
}
