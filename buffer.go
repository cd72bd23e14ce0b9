// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

// Buffer incrementally materializes a Source into a randomly-indexable
// cache, pulling only as many elements as have ever been requested.
// The cache is append-only and never shrinks; once the source reports
// exhaustion the buffer stays exhausted for its lifetime.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	src       Source[T]
	cache     []T
	exhausted bool
}

// NewBuffer wraps src in an empty incremental buffer.
func NewBuffer[T any](src Source[T]) *Buffer[T] {
	return &Buffer[T]{src: src}
}

// Len returns the count of cached elements.
func (b *Buffer[T]) Len() int { return len(b.cache) }

// Exhausted reports whether the source has signaled that no further
// elements remain. Once true it never resets.
func (b *Buffer[T]) Exhausted() bool { return b.exhausted }

// At returns the cached element at index i.
// Callers must only index positions already fetched; an out-of-range
// index is a programming error and panics.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= len(b.cache) {
		panic("comb: buffer index out of range")
	}
	return b.cache[i]
}

// Fetch pulls one element from the source and appends it to the cache,
// returning true. It returns false without side effect if the buffer is
// already exhausted, or marks the buffer exhausted and returns false if
// the source has no further element. Fetch is the single point of
// contact between single-step enumeration growth and the source.
func (b *Buffer[T]) Fetch() bool {
	if b.exhausted {
		return false
	}
	v, ok := b.src()
	if !ok {
		b.exhausted = true
		return false
	}
	b.cache = append(b.cache, v)
	return true
}

// Prefill pulls elements until at least n are cached, if the source has
// that many. If the source runs out first the buffer is left short and
// marked exhausted. Already-satisfied or already-exhausted buffers are
// left untouched.
func (b *Buffer[T]) Prefill(n int) {
	for !b.exhausted && len(b.cache) < n {
		v, ok := b.src()
		if !ok {
			b.exhausted = true
			return
		}
		b.cache = append(b.cache, v)
	}
}
