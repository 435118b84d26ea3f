package pool

import "sync"

// IndexSliceMaxThreshold is the largest slice capacity, in indices, returned to the pool.
const IndexSliceMaxThreshold = 1 << 16

// indexSlicePool holds scratch slices of curve indices, one ring or part at a time.
var indexSlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetIndexSlice retrieves a uint64 slice of length size from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
// Slices that grew beyond IndexSliceMaxThreshold are dropped instead.
//
// Example:
//
//	indices, cleanup := pool.GetIndexSlice(len(ring))
//	defer cleanup()
func GetIndexSlice(size int) ([]uint64, func()) {
	ptr, _ := indexSlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > IndexSliceMaxThreshold {
			return
		}
		indexSlicePool.Put(ptr)
	}
}
