// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"iter"

	"github.com/eapache/queue/v2"
	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

// TreeNode is an n-ary tree node carrying a value.
type TreeNode[T any] struct {
	Value    T
	Children []*TreeNode[T]
}

// walkEntry is a pending traversal position: a node and its depth.
type walkEntry[T any] struct {
	node  *TreeNode[T]
	depth int
}

// Walk traverses the tree rooted at root depth-first in pre-order,
// yielding each node's depth and value. The traversal keeps an explicit
// work stack instead of recursing, so arbitrarily deep trees cannot
// overflow the call stack. A nil root yields nothing; nil children are
// skipped.
func Walk[T any](root *TreeNode[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if root == nil {
			return
		}
		pending := arraystack.New[walkEntry[T]]()
		pending.Push(walkEntry[T]{node: root})
		for {
			e, ok := pending.Pop()
			if !ok {
				return
			}
			if !yield(e.depth, e.node.Value) {
				return
			}
			// Push children right-to-left so the leftmost pops first.
			for i := len(e.node.Children) - 1; i >= 0; i-- {
				if c := e.node.Children[i]; c != nil {
					pending.Push(walkEntry[T]{node: c, depth: e.depth + 1})
				}
			}
		}
	}
}

// WalkBreadth traverses the tree rooted at root level by level,
// yielding each node's depth and value. A nil root yields nothing;
// nil children are skipped.
func WalkBreadth[T any](root *TreeNode[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if root == nil {
			return
		}
		pending := queue.New[walkEntry[T]]()
		pending.Add(walkEntry[T]{node: root})
		for pending.Length() > 0 {
			e := pending.Remove()
			if !yield(e.depth, e.node.Value) {
				return
			}
			for _, c := range e.node.Children {
				if c != nil {
					pending.Add(walkEntry[T]{node: c, depth: e.depth + 1})
				}
			}
		}
	}
}
