package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, cap(bb.B))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, "some data"...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Empty(t, bb.Bytes())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3, 4, 5, 6, 7, 8)
		bb.Grow(1)
		assert.Equal(t, 8+StreamBufferDefaultSize, cap(bb.B))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * StreamBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = append(bb.B, make([]byte, size)...)
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(10 * StreamBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B), 10*StreamBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(2)
		bb.B = append(bb.B, 0xAA, 0xBB)
		bb.Grow(100)
		assert.Equal(t, []byte{0xAA, 0xBB}, bb.Bytes())
	})
}

func TestStreamBuffer_GetPut(t *testing.T) {
	bb := GetStreamBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, "geometry"...)
	PutStreamBuffer(bb)

	again := GetStreamBuffer()
	require.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
	PutStreamBuffer(again)

	PutStreamBuffer(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(128)
	big.B = append(big.B, 'x')
	p.Put(big)

	got := p.Get()
	require.NotSame(t, big, got, "oversized buffer must not be pooled")
	require.Equal(t, 16, cap(got.B))
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bb := GetStreamBuffer()
			defer PutStreamBuffer(bb)
			bb.B = append(bb.B, byte(i))
			assert.Equal(t, 1, bb.Len())
		}(i)
	}
	wg.Wait()
}
