package metrics

import (
	"errors"
	"testing"

	"github.com/longmathemagician/washline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := washline.New()
	r.Append("  Grüße aus ")
	r.Append("Köln,\tihr  ")
	r.Append("Lieben!")
	value, words, err := Words().Apply(r, 0, r.Len())
	if err != nil {
		t.Fatal(err)
	}
	if value.WordCount() != 5 {
		t.Fatalf("expected 5 words, have %d: %v", value.WordCount(), value.Spans)
	}
	if value.Spans[0] != (Span{Pos: 2, Len: 5}) {
		t.Errorf("expected first word at 2 with length 5, is %v", value.Spans[0])
	}
	if words.String() != "GrüßeausKöln,ihrLieben!" {
		t.Errorf("unexpected materialized words %q", words.String())
	}
}

func TestWordsRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := washline.FromString("The quick brown fox")
	n, err := Count(r, 4, 15)
	if err != nil || n != 2 {
		t.Errorf("expected 2 words in [4,15), have %d (err=%v)", n, err)
	}
	value, _, _ := Words().Apply(r, 4, 15)
	if value.Spans[1] != (Span{Pos: 10, Len: 5}) {
		t.Errorf("expected 'brown' at 10, is %v", value.Spans[1])
	}
	if _, err := Count(r, 3, 2); !errors.Is(err, washline.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if n, err := Count(washline.New(), 0, 0); err != nil || n != 0 {
		t.Errorf("expected 0 words for void rope, have %d (err=%v)", n, err)
	}
}
