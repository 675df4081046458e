package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Tree is a binary tree with values of type A at its leaves.
// The only implementations are the ones created by Leaf and Branch.
type Tree[A any] interface {
	Match() Matcher[A]
	String() string
	isTree()
}

type leaf[A any] struct {
	value A
}

type branch[A any] struct {
	left, right Tree[A]
}

// Leaf creates a tree consisting of a single value.
func Leaf[A any](value A) Tree[A] {
	return &leaf[A]{value: value}
}

// Branch creates a tree with two subtrees. Both subtrees must be non-nil.
// The subtrees are shared, not copied.
func Branch[A any](left, right Tree[A]) Tree[A] {
	assertThat(left != nil && right != nil, "branch needs two subtrees")
	return &branch[A]{left: left, right: right}
}

func (l *leaf[A]) isTree()   {}
func (b *branch[A]) isTree() {}

func (l *leaf[A]) Match() Matcher[A] {
	return matcher[A]{t: l}
}

func (b *branch[A]) Match() Matcher[A] {
	return matcher[A]{t: b}
}

func (l *leaf[A]) String() string {
	return fmt.Sprintf("Leaf(%v)", l.value)
}

func (b *branch[A]) String() string {
	return fmt.Sprintf("Branch(%s, %s)", b.left, b.right)
}

// --- Folding ---------------------------------------------------------------

// Fold reduces t to a single value: leafFn transforms the value of every leaf,
// branchFn combines the already folded results of the two subtrees of a branch.
func Fold[A, B any](t Tree[A], leafFn func(A) B, branchFn func(B, B) B) B {
	switch n := t.(type) {
	case *leaf[A]:
		return leafFn(n.value)
	case *branch[A]:
		return branchFn(Fold(n.left, leafFn, branchFn), Fold(n.right, leafFn, branchFn))
	}
	panic(fmt.Sprintf("persistent.tree: unknown tree node %T", t))
}

// Size counts the nodes of t, leaves and branches.
func Size[A any](t Tree[A]) int {
	return Fold(t, func(A) int {
		return 1
	}, func(l, r int) int {
		return l + r + 1
	})
}

// Maximum returns the largest value in t.
func Maximum[A constraints.Ordered](t Tree[A]) A {
	return Fold(t, func(a A) A {
		return a
	}, func(l, r A) A {
		if l > r {
			return l
		}
		return r
	})
}

// Depth returns the number of nodes on the longest path from the root to a leaf.
// A single leaf has depth 1.
func Depth[A any](t Tree[A]) int {
	return Fold(t, func(A) int {
		return 1
	}, func(l, r int) int {
		if l > r {
			return l + 1
		}
		return r + 1
	})
}

// Map creates a tree of the same shape as t, with f applied to every leaf value.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Fold(t, func(a A) Tree[B] {
		return Leaf(f(a))
	}, Branch[B])
}

// Equal returns true if a and b have the same shape and equal leaf values.
func Equal[A comparable](a, b Tree[A]) bool {
	switch x := a.(type) {
	case *leaf[A]:
		y, ok := b.(*leaf[A])
		return ok && x.value == y.value
	case *branch[A]:
		y, ok := b.(*branch[A])
		return ok && (x == y || Equal(x.left, y.left) && Equal(x.right, y.right))
	}
	return false
}

// Render draws t as an indented tree, one node per line.
func Render[A any](t Tree[A]) string {
	tracer().Debugf("render tree of size %d", Size(t))
	printer := treeprint.New()
	addNodes(printer, t)
	return printer.String()
}

func addNodes[A any](p treeprint.Tree, t Tree[A]) {
	var v A
	var l, r Tree[A]
	switch m := t.Match(); m {
	case m.Leaf(&v):
		p.AddNode(v)
	case m.Branch(&l, &r):
		b := p.AddBranch("•")
		addNodes(b, l)
		addNodes(b, r)
	}
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-statement on the variants of a Tree.
type Matcher[A any] interface {
	Leaf(*A) Matcher[A]
	Branch(left, right *Tree[A]) Matcher[A]
}

type matcher[A any] struct {
	t Tree[A]
}

func (m matcher[A]) Leaf(v *A) Matcher[A] {
	if l, ok := m.t.(*leaf[A]); ok {
		*v = l.value
		return m
	}
	return nil
}

func (m matcher[A]) Branch(left, right *Tree[A]) Matcher[A] {
	if b, ok := m.t.(*branch[A]); ok {
		*left, *right = b.left, b.right
		return m
	}
	return nil
}
