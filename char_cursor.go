package washline

// CharCursor navigates a rope by rune positions.
//
// The cursor is bound to one rope snapshot. Appending to or rebuilding the
// rope the cursor has been created for does not affect the cursor.
type CharCursor struct {
	rope Rope
	pos  uint64
}

// NewCharCursor creates a rune cursor at the start of r.
func (r *Rope) NewCharCursor() *CharCursor {
	return &CharCursor{rope: r.Snapshot()}
}

// Pos returns the current cursor position.
func (cc *CharCursor) Pos() uint64 {
	if cc == nil {
		return 0
	}
	return cc.pos
}

// Seek moves the cursor to absolute rune position p. p may be equal to the
// length of the rope, i.e. the cursor may be placed at end-of-text.
func (cc *CharCursor) Seek(p uint64) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	if p > cc.rope.Len() {
		return ErrIndexOutOfBounds
	}
	cc.pos = p
	return nil
}

// Next returns the rune at the current cursor position and advances by one rune.
//
// If the cursor is at end-of-text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil || cc.pos >= cc.rope.Len() {
		return 0, false
	}
	r, err := cc.rope.CharAt(cc.pos)
	if err != nil {
		return 0, false
	}
	cc.pos++
	return r, true
}

// Prev returns the rune before the current cursor position and moves back by one rune.
//
// If the cursor is at start-of-text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil || cc.pos == 0 {
		return 0, false
	}
	r, err := cc.rope.CharAt(cc.pos - 1)
	if err != nil {
		return 0, false
	}
	cc.pos--
	return r, true
}
