package washline

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderFragments(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder()
	b.FragmentLen = 4
	if err := b.AppendString("Hello_my_"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	if err := b.AppendString("name_is_Simon"); err != nil {
		t.Fatalf("AppendString failed: %v", err)
	}
	r := b.Rope()
	if got, want := r.String(), "Hello_my_name_is_Simon"; got != want {
		t.Fatalf("unexpected rope string: got %q want %q", got, want)
	}
	// 22 runes in fragments of 4 => 6 fragments, each split into 2 non-empty leaves
	if r.LeafCount() != 12 {
		t.Errorf("expected 12 leaves, have %d", r.LeafCount())
	}
	if r.Height() > 5 {
		t.Errorf("expected builder to rebuild the rope, height is %d", r.Height())
	}
}

func TestBuilderCompleted(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder()
	_ = b.AppendString("abc")
	r1 := b.Rope()
	if err := b.AppendString("def"); !errors.Is(err, ErrRopeCompleted) {
		t.Errorf("expected ErrRopeCompleted, got %v", err)
	}
	r2 := b.Rope()
	if r1.String() != "abc" || r2.String() != "abc" {
		t.Errorf("expected both ropes to be 'abc', are %q and %q", r1, r2)
	}
	b.Reset()
	if err := b.AppendFragment("xyz"); err != nil {
		t.Fatalf("AppendFragment after Reset failed: %v", err)
	}
	if s := b.Rope().String(); s != "xyz" {
		t.Errorf("expected 'xyz' after reset, got %q", s)
	}
}

func TestBuilderRejectsInvalidUTF8(t *testing.T) {
	b := NewBuilder()
	err := b.AppendString(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var nilb *Builder
	if err := nilb.AppendString("a"); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for nil builder, got %v", err)
	}
}

func TestReaderStreamsDocument(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder()
	b.FragmentLen = 3
	text := strings.Repeat("Grüße, 世界! ", 20)
	_ = b.AppendString(text)
	r := b.Rope()
	data, err := io.ReadAll(r.Reader())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != text {
		t.Errorf("reader produced %q, expected %q", string(data), text)
	}
	small := make([]byte, 5)
	rd := New().Reader()
	if n, err := rd.Read(small); n != 0 || err != io.EOF {
		t.Errorf("expected EOF for void rope, got n=%d, err=%v", n, err)
	}
}

func TestEachLeafPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := New()
	r.Append("ab")
	r.Append("€")
	r.Append("cdef")
	var segs []string
	var positions []uint64
	err := r.EachLeaf(func(seg Segment, pos uint64) error {
		segs = append(segs, seg.String())
		positions = append(positions, pos)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(segs, "|") != "a|b|€|cd|ef" {
		t.Errorf("unexpected segments %v", segs)
	}
	want := []uint64{0, 1, 2, 3, 5}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("segment %d at %d, expected %d", i, positions[i], want[i])
		}
	}
	cnt := 0
	for seg := range r.RangeSegment() {
		if seg.IsEmpty() {
			t.Errorf("expected empty leaves to be skipped")
		}
		cnt++
		if cnt == 2 {
			break
		}
	}
	if cnt != 2 {
		t.Errorf("expected iteration to stop after 2 segments, is %d", cnt)
	}
}

func TestCharCursor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := FromString("a😀b")
	cc := r.NewCharCursor()
	r.Append("zzz") // cursor works on a snapshot
	var got []rune
	for {
		ch, ok := cc.Next()
		if !ok {
			break
		}
		got = append(got, ch)
	}
	if string(got) != "a😀b" {
		t.Errorf("cursor produced %q, expected 'a😀b'", string(got))
	}
	if ch, ok := cc.Prev(); !ok || ch != 'b' || cc.Pos() != 2 {
		t.Errorf("expected Prev to return 'b' at pos 2, got %q at %d", ch, cc.Pos())
	}
	if err := cc.Seek(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := cc.Seek(0); err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.Prev(); ok {
		t.Errorf("expected Prev at start-of-text to fail")
	}
}

func TestRope2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := New()
	r.Append("Hello, ")
	r.Append("\"World\"!")
	var sb strings.Builder
	if err := Rope2Dot(r, &sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	t.Log(dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT graph")
	}
	if strings.Count(dot, "->") != 6 {
		t.Errorf("expected 6 edges, have %d", strings.Count(dot, "->"))
	}
	if !strings.Contains(dot, `\"Wor`) {
		t.Errorf("expected quotes in labels to be escaped")
	}
	broken := &Rope{head: newBranch(newLeaf("abc"), nil)}
	sb.Reset()
	_ = Rope2Dot(broken, &sb)
	if !strings.Contains(sb.String(), "shape=circle,fixedsize=true") {
		t.Errorf("expected absent child to be drawn as empty node")
	}
}
