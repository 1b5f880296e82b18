package washline

import (
	"strings"
	"unicode/utf8"
)

// LeafLength is the default number of runes per leaf. Builders cut text into
// fragments of two leaves each.
const LeafLength = 32

// ErrInvalidUTF8 is flagged for input text which is not valid UTF-8.
const ErrInvalidUTF8 = RopeError("invalid UTF-8")

// Builder incrementally stages text and finalizes it into a Rope.
//
// Text appended with AppendString is cut into fragments of a fixed number of
// runes, each of which is appended to the rope. Rope() flushes the remaining
// text and rebuilds the tree once.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	FragmentLen int // fragment length in runes, defaults to 2*LeafLength

	rope    Rope
	pending strings.Builder
	pcount  int // runes in pending
	frags   int
	done    bool
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{FragmentLen: 2 * LeafLength}
}

func (b *Builder) fragmentLen() int {
	if b.FragmentLen <= 0 {
		return 2 * LeafLength
	}
	return b.FragmentLen
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder) Rope() *Rope {
	if b == nil {
		return New()
	}
	if !b.done {
		b.flush()
		b.rope.Rebuild()
		b.done = true
		T().Debugf("rope builder: %d fragments, %d runes", b.frags, b.rope.Len())
	}
	r := b.rope.Snapshot()
	return &r
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.rope = Rope{}
	b.pending.Reset()
	b.pcount = 0
	b.frags = 0
	b.done = false
}

// AppendString appends UTF-8 text to the staged build. Text is cut into
// fragments of FragmentLen runes, regardless of the boundaries of subsequent
// calls.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	flen := b.fragmentLen()
	for _, r := range text {
		b.pending.WriteRune(r)
		b.pcount++
		if b.pcount == flen {
			b.flush()
		}
	}
	return nil
}

// AppendFragment appends text as a fragment of its own, flushing text staged
// by AppendString first.
func (b *Builder) AppendFragment(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	b.flush()
	if text == "" {
		return nil
	}
	b.rope.Append(text)
	b.frags++
	return nil
}

func (b *Builder) flush() {
	if b.pcount == 0 {
		return
	}
	b.rope.Append(b.pending.String())
	b.frags++
	b.pending.Reset()
	b.pcount = 0
}
