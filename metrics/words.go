package metrics

import (
	"fmt"
	"unicode"

	"github.com/longmathemagician/washline"
)

// Span is a rune-range descriptor inside a rope snapshot.
//
// Pos is the start rune offset, Len is the span length in runes.
type Span struct {
	Pos uint64
	Len uint64
}

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric. Words are maximal runs of
// non-space runes.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply scans the runes [i,j) of a rope for words and returns word spans plus
// a materialized rope.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators. Every word is a fragment of its own.
func (WordsMetric) Apply(text *washline.Rope, i, j uint64) (WordsValue, *washline.Rope, error) {
	if text.IsVoid() {
		return WordsValue{}, washline.New(), nil
	}
	content, err := text.Substring(i, j)
	if err != nil {
		return WordsValue{}, washline.New(), fmt.Errorf("metrics.Words could not be applied: %w", err)
	}
	runes := []rune(content)
	value := WordsValue{
		Spans: findWordSpans(runes, i),
	}
	tracer().Debugf("words metric: %d words in [%d,%d)", len(value.Spans), i, j)
	out := washline.New()
	for _, span := range value.Spans {
		start := span.Pos - i
		out.Append(string(runes[start : start+span.Len]))
	}
	out.Rebuild()
	return value, out, nil
}

// Count returns the number of words in the runes [i,j) of a rope.
func Count(text *washline.Rope, i, j uint64) (int, error) {
	value, _, err := Words().Apply(text, i, j)
	if err != nil {
		return -1, err
	}
	return value.WordCount(), nil
}

func findWordSpans(runes []rune, base uint64) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(runes); {
		if unicode.IsSpace(runes[pos]) {
			pos++
			continue
		}
		start := pos
		for pos < len(runes) && !unicode.IsSpace(runes[pos]) {
			pos++
		}
		spans = append(spans, Span{
			Pos: base + uint64(start),
			Len: uint64(pos - start),
		})
	}
	return spans
}
