package washline

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
	"unicode/utf8"
)

// Rope is a text document, stored as a binary tree of immutable text fragments.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use rune offsets.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Append        |   O(1)          |   O(n)
//	CharAt        |   O(depth)      |   O(n) for runes
//	Substring     |   O(depth + l)  |   O(n) for runes
//	String        |   O(n)          |   O(1)
//
// depth is linear in the number of appends until Rebuild is called, and
// logarithmic in the number of leaves afterwards.
type Rope struct {
	head node
}

// New creates a new and empty rope.
func New() *Rope {
	return &Rope{}
}

// FromString creates a rope from a single fragment.
func FromString(s string) *Rope {
	r := New()
	r.Append(s)
	return r
}

// Snapshot returns a copy of the rope which shares all nodes with r. Later
// modifications of r do not change the snapshot and vice versa.
func (r *Rope) Snapshot() Rope {
	if r == nil {
		return Rope{}
	}
	return Rope{head: r.head}
}

// Append adds a fragment to the end of the rope.
//
// The fragment is split at its rune midpoint, both halves become leaves
// of a new branch. This branch is put to the right of the previous root, which
// is re-used without copying. Every append therefore adds one level to the tree.
func (r *Rope) Append(fragment string) {
	assert(r != nil, "rope.Append called for nil rope")
	n := uint64(utf8.RuneCountInString(fragment))
	left, right := splitRunes(fragment, n/2)
	frag := newBranch(newLeaf(left), newLeaf(right))
	if r.head == nil {
		r.head = frag
		return
	}
	r.head = newBranch(r.head, frag)
}

// Rebuild re-balances the tree of a rope. Document content and length do not
// change, but empty leaves are dropped and the height of the tree will be
// logarithmic in the number of leaves.
//
// Leaves are paired level by level: adjacent leaves are combined into
// branches, adjacent branches into the next level's branches, and so on until
// a single root remains. A lone node at the end of a level is carried up
// unchanged.
func (r *Rope) Rebuild() {
	assert(r != nil, "rope.Rebuild called for nil rope")
	leaves := collectLeaves(r.head)
	if len(leaves) == 0 {
		r.head = nil
		return
	}
	level := make([]node, len(leaves))
	for i, leaf := range leaves {
		level[i] = leaf
	}
	for len(level) > 1 {
		next := level[:0] // pairs are built left to right, so we may overwrite in place
		for k := 0; k < len(level); k += 2 {
			if k+1 < len(level) {
				next = append(next, newBranch(level[k], level[k+1]))
			} else {
				next = append(next, level[k])
			}
		}
		level = next
	}
	r.head = level[0]
	T().Debugf("rope rebuilt from %d leaves", len(leaves))
}

// String returns the complete text of the rope. This may be an expensive
// operation, as it will allocate a buffer for the whole document.
func (r *Rope) String() string {
	if r == nil || r.head == nil {
		return ""
	}
	leaves := collectLeaves(r.head)
	size := 0
	for _, leaf := range leaves {
		size += len(leaf.text)
	}
	var sb strings.Builder
	sb.Grow(size)
	for _, leaf := range leaves {
		sb.WriteString(leaf.text)
	}
	return sb.String()
}

// Len returns the length of the rope in runes.
func (r *Rope) Len() uint64 {
	if r == nil || r.head == nil {
		return 0
	}
	return r.head.Weight()
}

// IsVoid returns true if the rope has no content.
func (r *Rope) IsVoid() bool {
	return r.Len() == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, i.e., the maximum depth of the traversal stack.
func (r *Rope) Height() int {
	if r == nil {
		return 0
	}
	stack, _ := walkLeaves(r.head, func(*leafNode, uint64) error { return nil })
	return stack.maxDepth
}

// LeafCount returns the number of non-empty leaves of the rope.
func (r *Rope) LeafCount() int {
	if r == nil {
		return 0
	}
	cnt := 0
	_, _ = walkLeaves(r.head, func(*leafNode, uint64) error {
		cnt++
		return nil
	})
	return cnt
}

// CharAt returns the rune at position i.
//
// It returns ErrEmptyDocument for a rope without content and
// ErrIndexOutOfBounds if i is not smaller than the length of the rope.
func (r *Rope) CharAt(i uint64) (rune, error) {
	if r.IsVoid() {
		return 0, ErrEmptyDocument
	}
	if i >= r.head.Weight() {
		return 0, ErrIndexOutOfBounds
	}
	n := r.head
	for {
		if n.IsLeaf() {
			leaf := n.(*leafNode)
			ch, ok := leaf.runeAt(i)
			if !ok {
				T().Errorf("rope.CharAt: leaf of length %d has no index %d", leaf.length, i)
				return 0, ErrBrokenTree
			}
			return ch, nil
		}
		branch := n.(*branchNode)
		if i >= branch.leftWeight {
			i -= branch.leftWeight
			n = branch.right
		} else {
			n = branch.left
		}
		if n == nil {
			T().Errorf("rope.CharAt: branch of weight %d lacks child", branch.Weight())
			return 0, ErrBrokenTree
		}
	}
}

// substringFrame is an entry of the stack used for range extraction: a node
// and its start offset within the document.
type substringFrame struct {
	node  node
	start uint64
}

// Substring returns the runes [i, j) of the rope.
//
// It returns ErrInvalidRange if i > j, ErrEmptyDocument for a rope without
// content, and ErrIndexOutOfBounds if j exceeds the length of the rope.
func (r *Rope) Substring(i, j uint64) (string, error) {
	if i > j {
		return "", ErrInvalidRange
	}
	if r.IsVoid() {
		return "", ErrEmptyDocument
	}
	if j > r.head.Weight() {
		return "", ErrIndexOutOfBounds
	}
	var sb strings.Builder
	stack := make([]substringFrame, 0, 32)
	stack = append(stack, substringFrame{node: r.head, start: 0})
	for i < j && len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.node.IsLeaf() {
			leaf := top.node.(*leafNode)
			stack = stack[:len(stack)-1]
			if i >= top.start+leaf.length {
				continue
			}
			from := i - top.start
			to := min(j-top.start, leaf.length)
			sb.WriteString(leaf.slice(from, to))
			i += to - from
			continue
		}
		branch := top.node.(*branchNode)
		rel := i - top.start
		if rel < branch.leftWeight {
			if branch.left == nil {
				return "", ErrBrokenTree
			}
			stack = append(stack, substringFrame{node: branch.left, start: top.start})
		} else if rel < branch.Weight() {
			if branch.right == nil {
				return "", ErrBrokenTree
			}
			// the right child starts after the left child, not after the branch
			stack = append(stack, substringFrame{
				node:  branch.right,
				start: top.start + branch.leftWeight,
			})
		} else {
			stack = stack[:len(stack)-1]
		}
	}
	if i < j {
		T().Errorf("rope.Substring: range not exhausted, %d runes missing", j-i)
		return sb.String(), ErrBrokenTree
	}
	return sb.String(), nil
}
