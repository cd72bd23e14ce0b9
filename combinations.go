// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"fmt"
	"iter"
)

// Enumerator produces the k-element combinations of a Source in
// lexicographic index order, as an external iterator.
//
// Input elements are pulled on demand: position n of the input is
// pulled only when the enumeration first reaches it. Pulled elements
// are cached in an internal [Buffer] and reused across traversals, so
// [Enumerator.Reset] never re-consumes the source.
//
// Enumerator is not safe for concurrent use.
type Enumerator[T any] struct {
	k       int
	indices []int
	pool    *Buffer[T]
	started bool
}

// Combinations creates an enumerator of the k-element combinations of
// src. Negative k is rejected. k == 0 is valid and enumerates exactly
// one empty combination; k larger than the total available input
// enumerates nothing.
func Combinations[T any](src Source[T], k int) (*Enumerator[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("comb: combination size must be non-negative, got %d", k)
	}
	e := &Enumerator[T]{
		k:       k,
		indices: make([]int, k),
		pool:    NewBuffer(src),
	}
	e.Reset()
	return e, nil
}

// K returns the combination size fixed at construction.
func (e *Enumerator[T]) K() int { return e.k }

// Reset rewinds the enumeration to its initial state. Cached input is
// kept; only the index tuple and the started flag reset, so the next
// traversal yields the identical sequence without re-pulling input the
// previous traversal already saw.
func (e *Enumerator[T]) Reset() {
	for i := range e.indices {
		e.indices[i] = i
	}
	e.started = false
	e.pool.Prefill(e.k)
}

// Next advances to the next combination and returns its elements.
// It returns (nil, false) once the enumeration is exhausted. The
// returned slice is a fresh snapshot; callers may retain or mutate it
// without affecting combinations emitted before or after.
func (e *Enumerator[T]) Next() ([]T, bool) {
	ix, ok := e.advance()
	if !ok {
		return nil, false
	}
	out := make([]T, e.k)
	for j, i := range ix {
		out[j] = e.pool.At(i)
	}
	return out, true
}

// NextIndices advances to the next combination and returns a copy of
// its strictly increasing index tuple instead of the selected elements.
func (e *Enumerator[T]) NextIndices() ([]int, bool) {
	ix, ok := e.advance()
	if !ok {
		return nil, false
	}
	out := make([]int, e.k)
	copy(out, ix)
	return out, true
}

// All returns the combinations as a restartable range-over-func
// sequence. Each invocation first calls [Enumerator.Reset], so ranging
// twice yields the identical sequence both times while the underlying
// source is consumed at most once.
func (e *Enumerator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		e.Reset()
		for c, ok := e.Next(); ok; c, ok = e.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Indices is [Enumerator.All] for index tuples.
func (e *Enumerator[T]) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		e.Reset()
		for ix, ok := e.NextIndices(); ok; ix, ok = e.NextIndices() {
			if !yield(ix) {
				return
			}
		}
	}
}

// advance moves indices to the lexicographically next combination,
// growing the buffer by one element when the tuple reaches the current
// cache tail. The returned slice is the internal index state, valid
// until the next call.
func (e *Enumerator[T]) advance() ([]int, bool) {
	if !e.started {
		// Seed emission. The buffer was prefilled to k at construction
		// or Reset; fewer than k cached elements means the whole input
		// is smaller than k.
		if e.pool.Len() < e.k {
			return nil, false
		}
		e.started = true
		return e.indices, true
	}
	if e.k == 0 {
		// The single empty combination has been emitted.
		return nil, false
	}
	n := e.pool.Len()
	if n == 0 {
		return nil, false
	}
	// Probe the source for one more element before scanning, but only
	// when the last index sits at the cache tail. At most one pull per
	// distinct new maximum index.
	if e.indices[e.k-1] == n-1 && e.pool.Fetch() {
		n++
	}
	// Rightmost index not pinned at its maximum value i+n-k.
	i := e.k - 1
	for e.indices[i] == i+n-e.k {
		if i == 0 {
			return nil, false
		}
		i--
	}
	e.indices[i]++
	for j := i + 1; j < e.k; j++ {
		e.indices[j] = e.indices[j-1] + 1
	}
	return e.indices, true
}
