// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "iter"

// Source is a pull-based producer of elements.
// Each call returns the next element and true, or the zero value and
// false once the producer is exhausted. Exhaustion is not an error;
// a Source must keep reporting false after it first reports false.
//
// A pull may be arbitrarily expensive (for example wrapping I/O);
// callers that cannot tolerate a blocking pull must not pull.
type Source[T any] func() (T, bool)

// Of returns a Source over the given values in order.
func Of[T any](vals ...T) Source[T] {
	return SliceSource(vals)
}

// SliceSource returns a Source that yields the elements of s in order.
func SliceSource[T any](s []T) Source[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	}
}

// FromSeq adapts a range-over-func sequence into a Source.
// Elements are pulled one at a time via [iter.Pull]; the pull iterator
// is stopped when the sequence reports exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	}
}

// Generate returns an infinite Source whose i-th pull yields f(i).
func Generate[T any](f func(i int) T) Source[T] {
	i := 0
	return func() (T, bool) {
		v := f(i)
		i++
		return v, true
	}
}
