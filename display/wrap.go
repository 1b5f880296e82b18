package display

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/

// Wrap breaks a paragraph of text into lines of at most linewidth “en”s,
// first-fit. Breaks are inserted at UAX#14 line break opportunities only, so
// a single fragment wider than linewidth will overflow its line. Trailing
// spaces do not count against the line width.
//
// If context is nil, uax11.LatinContext is used.
func Wrap(para string, linewidth int, context *uax11.Context) []string {
	if para == "" {
		return []string{""}
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(para))
	lines := make([]string, 0, 4)
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		word := strings.TrimRight(frag, " ")
		wordlen := width(word, context)
		if wordlen > spaceleft && line.Len() > 0 {
			T().Debugf("break before '%s' (len=%d|%d)", word, wordlen, spaceleft)
			lines = append(lines, line.String())
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= width(frag, context)
	}
	if err := segmenter.Err(); err != nil {
		T().Errorf("line wrap: segmenter error: %v", err)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
