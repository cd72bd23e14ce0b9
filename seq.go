// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "iter"

// Lazy-sequence helpers surrounding the enumerator: integer ranges,
// bounded prefixes, and materialization.

// Range returns a sequence of n consecutive integers starting at start.
// Non-positive n yields nothing.
func Range(start, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Naturals returns the infinite sequence 0, 1, 2, ….
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Take returns a sequence of at most the n leading elements of seq.
// The underlying sequence is not pulled past the n-th element, so Take
// of an infinite sequence is finite.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range seq {
			if !yield(v) {
				return
			}
			if left--; left == 0 {
				return
			}
		}
	}
}

// Collect materializes seq into a slice, in order.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Binomial returns the binomial coefficient C(n, k): the number of
// k-element combinations of an n-element set. k < 0 or k > n gives 0.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	// Multiply before dividing; each prefix product is itself a
	// binomial coefficient, keeping the division exact.
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}
