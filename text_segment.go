package washline

import "iter"

// Segment is a read-only view of one leaf of a rope.
//
// It is intended as a stable API surface for display and analytics code so
// callers do not need to depend on node internals.
type Segment struct {
	leaf *leafNode
}

// String returns the segment text.
func (s Segment) String() string {
	if s.leaf == nil {
		return ""
	}
	return s.leaf.text
}

// CharCount returns the number of runes in this segment.
func (s Segment) CharCount() uint64 {
	if s.leaf == nil {
		return 0
	}
	return s.leaf.length
}

// ByteLen returns the number of bytes in this segment.
func (s Segment) ByteLen() int {
	if s.leaf == nil {
		return 0
	}
	return len(s.leaf.text)
}

// IsEmpty reports whether the segment has no text.
func (s Segment) IsEmpty() bool {
	return s.CharCount() == 0
}

// EachLeaf visits all non-empty leaves of the rope in document order.
//
// The callback receives each segment and its starting rune offset. Iteration
// stops at the first callback error and returns that error to the caller.
func (r *Rope) EachLeaf(f func(Segment, uint64) error) error {
	if r == nil {
		return nil
	}
	_, err := walkLeaves(r.head, func(leaf *leafNode, pos uint64) error {
		return f(Segment{leaf: leaf}, pos)
	})
	return err
}

// RangeSegment returns an iterator over all non-empty leaves in document order.
func (r *Rope) RangeSegment() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		_ = r.EachLeaf(func(seg Segment, _ uint64) error {
			if !yield(seg) {
				return errStopIteration
			}
			return nil
		})
	}
}

const errStopIteration = RopeError("stop iteration")
