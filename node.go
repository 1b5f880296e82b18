package washline

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf8"
)

// --- Node types ------------------------------------------------------------

// We use 2 types of distinct nodes: branches and leaves. Branches carry up to
// two children, either of which may be absent (nil). An absent child is an
// empty subtree of weight 0 and is different from a present leaf of length 0:
// the latter is visited by traversals, only to be dropped there.
//
// Nodes are immutable once constructed. Every structural change creates new
// nodes on top of existing ones, sharing unchanged subtrees by reference.
type node interface {
	Weight() uint64 // number of runes spanned by the subtree
	IsLeaf() bool
}

// leafNode holds a fragment of text.
type leafNode struct {
	length uint64 // in runes
	text   string
	ascii  bool // single-byte runes only, allows direct byte indexing
}

var _ node = (*leafNode)(nil)

// branchNode is an inner node of a rope tree.
type branchNode struct {
	leftWeight  uint64
	rightWeight uint64
	left        node
	right       node
}

var _ node = (*branchNode)(nil)

// newLeaf wraps a text fragment as a leaf. The length of the leaf is counted
// in runes.
func newLeaf(text string) *leafNode {
	n := uint64(utf8.RuneCountInString(text))
	return &leafNode{
		length: n,
		text:   text,
		ascii:  n == uint64(len(text)) && isASCII(text),
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// newBranch creates a branch for two, possibly absent, children and caches
// their weights. Children are neither inspected nor copied.
func newBranch(left, right node) *branchNode {
	b := &branchNode{left: left, right: right}
	if left != nil {
		b.leftWeight = left.Weight()
	}
	if right != nil {
		b.rightWeight = right.Weight()
	}
	return b
}

// Weight returns the length of the leaf's fragment in runes.
func (leaf *leafNode) Weight() uint64 {
	return leaf.length
}

// IsLeaf is always true for leaves.
func (leaf *leafNode) IsLeaf() bool {
	return true
}

func (leaf *leafNode) String() string {
	return leaf.text
}

// runeAt returns the rune at rune position i within the leaf.
func (leaf *leafNode) runeAt(i uint64) (rune, bool) {
	if i >= leaf.length {
		return 0, false
	}
	if leaf.ascii {
		return rune(leaf.text[i]), true
	}
	var k uint64
	for _, r := range leaf.text {
		if k == i {
			return r, true
		}
		k++
	}
	return 0, false
}

// slice returns the runes [i, j) of the leaf's fragment, clipped to the
// leaf's length.
func (leaf *leafNode) slice(i, j uint64) string {
	if j > leaf.length {
		j = leaf.length
	}
	if i >= j {
		return ""
	}
	if leaf.ascii {
		return leaf.text[i:j]
	}
	from, to := len(leaf.text), len(leaf.text)
	var k uint64
	for pos := range leaf.text {
		if k == i {
			from = pos
		}
		if k == j {
			to = pos
			break
		}
		k++
	}
	return leaf.text[from:to]
}

// Weight returns the sum of both children's weights.
func (b *branchNode) Weight() uint64 {
	return b.leftWeight + b.rightWeight
}

// IsLeaf is always false for branches.
func (b *branchNode) IsLeaf() bool {
	return false
}

// Left returns the left child, which may be nil.
func (b *branchNode) Left() node {
	return b.left
}

// Right returns the right child, which may be nil.
func (b *branchNode) Right() node {
	return b.right
}

// splitRunes splits a text at rune index n.
func splitRunes(text string, n uint64) (string, string) {
	var k uint64
	for pos := range text {
		if k == n {
			return text[:pos], text[pos:]
		}
		k++
	}
	return text, ""
}
