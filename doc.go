// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package comb provides lazy enumeration of k-element combinations over
// pull-based sources in Go.
//
// The core type [Enumerator] produces the combinations of an input
// sequence in lexicographic index order without materializing the input
// upfront. Input elements are pulled one at a time, only when the
// enumeration first reaches them, and are cached for reuse by later
// combinations and later traversals.
//
// # Design Philosophy
//
// comb provides:
//   - An explicit external iterator instead of suspended generator state
//   - On-demand input growth: at most one pull per new input position
//   - Restartable traversal that never re-consumes the input source
//
// # Sources
//
// [Source] is the pull contract consumed by the enumerator: each call
// yields the next element, or reports exhaustion. Exhaustion is normal
// termination, never a failure.
//
//   - [Of], [SliceSource]: Bounded sources over explicit values
//   - [FromSeq]: Adapt an [iter.Seq] via [iter.Pull]
//   - [Generate]: Infinite generated source
//
// # Incremental Buffer
//
// [Buffer] sits between the enumerator and its source. It pulls lazily
// and caches permanently: the cache is append-only, and exhaustion is
// sticky once signaled.
//
//   - [NewBuffer]: Wrap a source in an empty buffer
//   - [Buffer.Len], [Buffer.At]: Inspect cached elements
//   - [Buffer.Fetch]: Single-step growth, the enumeration hot path
//   - [Buffer.Prefill]: Bulk growth used at construction and reset
//   - [Buffer.Exhausted]: Sticky exhaustion state
//
// [Buffer.At] with an out-of-range index is a programming error and
// panics; the enumeration algorithm only indexes positions it has
// already fetched.
//
// # Enumeration
//
// [Combinations] builds an [Enumerator] from a source and a fixed k.
// Negative k is rejected at construction. k == 0 enumerates exactly the
// one empty combination; k larger than the total input enumerates
// nothing.
//
//   - [Enumerator.Next]: Next combination's elements, or end
//   - [Enumerator.NextIndices]: Next combination's index tuple, or end
//   - [Enumerator.Reset]: Rewind without re-consuming the source
//   - [Enumerator.All], [Enumerator.Indices]: Restartable range-over-func views
//
// Emitted slices are fresh snapshots. Mutating one emitted combination
// never corrupts another.
//
// # Laziness
//
// Enumerating combinations of an infinite source is well-defined: the
// enumerator pulls a new element only when the current combination's
// last index reaches the cache tail. Bounding the traversal (for
// example with [Take] over [Enumerator.All]) bounds the pulls.
//
// # Sequence Helpers
//
//   - [Range]: Bounded run of consecutive integers
//   - [Naturals]: Infinite 0, 1, 2, …
//   - [Take]: Bounded prefix of a sequence
//   - [Collect]: Materialize a sequence into a slice
//   - [Binomial]: C(n, k), the expected combination count
//
// # Tree Traversal
//
// [TreeNode], [Walk], and [WalkBreadth] traverse n-ary trees with
// explicit work stacks and queues rather than recursion, yielding
// (depth, value) pairs.
//
// # Concurrency
//
// All types are single-owner and pull-based. Neither [Buffer] nor
// [Enumerator] is safe for concurrent use; sharing across goroutines
// requires external exclusive access. Stopping a traversal is the only
// cancellation: a partially-consumed enumerator stays valid and
// restartable.
//
// # Example
//
//	e, err := comb.Combinations(comb.Of("a", "b", "c", "d"), 2)
//	if err != nil {
//		panic(err)
//	}
//	for c := range e.All() {
//		fmt.Println(c)
//	}
//	// [a b] [a c] [a d] [b c] [b d] [c d]
package comb
