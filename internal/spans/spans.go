// Package spans indexes values by nested [start,end] position ranges.
//
// Spans of an index must form a forest: any two of them are either disjoint or one
// contains the other. Disjoint spans live in one red-black tree, contained spans live
// in the tree of their container.
package spans

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/sirkon/rbtree"
)

var (
	// ErrPartialOverlap is returned for spans that cross an indexed one.
	ErrPartialOverlap = errors.New("partially overlapping spans")

	// ErrOuterAfterInner is returned for a span containing an indexed one. Spans are
	// added outer first.
	ErrOuterAfterInner = errors.New("span added after a span it contains")
)

// Index of values by span.
type Index[T any] struct {
	tree *rbtree.Tree[*node[T]]
	size int
}

// New creates an empty index.
func New[T any]() *Index[T] {
	return &Index[T]{tree: rbtree.New[*node[T]]()}
}

type node[T any] struct {
	start token.Pos
	end   token.Pos

	value    T
	children *rbtree.Tree[*node[T]]
}

// Cmp orders disjoint spans, overlapping ones compare equal. InsertReturn
// then hands back the overlapping node and the nesting is resolved by hand.
func (n *node[T]) Cmp(other *node[T]) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func (n *node[T]) contains(other *node[T]) bool {
	return n.start <= other.start && n.end >= other.end
}

// Add registers v at [start,end]. An equal span goes under the indexed one.
func (ix *Index[T]) Add(v T, start, end token.Pos) error {
	if end < start {
		return fmt.Errorf("invalid span [%d,%d]", start, end)
	}

	if err := attach(ix.tree, &node[T]{start: start, end: end, value: v}); err != nil {
		return fmt.Errorf("add span [%d,%d]: %w", start, end, err)
	}

	ix.size++
	return nil
}

func attach[T any](t *rbtree.Tree[*node[T]], s *node[T]) error {
	r := t.InsertReturn(s)
	if r == s {
		return nil
	}

	switch {
	case r.contains(s):
		if r.children == nil {
			r.children = rbtree.New[*node[T]]()
		}
		return attach(r.children, s)
	case s.contains(r):
		return fmt.Errorf("%w: [%d,%d] is indexed", ErrOuterAfterInner, r.start, r.end)
	default:
		return fmt.Errorf("%w: crosses [%d,%d]", ErrPartialOverlap, r.start, r.end)
	}
}

// Len returns the number of indexed spans.
func (ix *Index[T]) Len() int {
	return ix.size
}

// Outermost returns the value of the top level span covering pos.
func (ix *Index[T]) Outermost(pos token.Pos) (T, bool) {
	res := ix.tree.Search(probe[T](pos))
	if res == nil {
		var zero T
		return zero, false
	}

	return res.value, true
}

func probe[T any](pos token.Pos) *node[T] {
	return &node[T]{start: pos, end: pos}
}
