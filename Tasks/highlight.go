package Tasks

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Segment is a piece of text that either matches the search term or not.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// Highlight splits text around every occurrence of term so the matches can
// be emphasized. Matching folds case the same way Filter does, so "ß" in the
// text matches a search for "ss". An empty term yields text as one segment.
func Highlight(text, term string) []Segment {
	return highlight(text, term, cases.Fold())
}

func highlight(text, term string, folder cases.Caser) []Segment {
	segments := []Segment{}
	if text == "" {
		return segments
	}
	foldedTerm := folder.String(term)
	if foldedTerm == "" {
		return append(segments, Segment{Text: text})
	}

	pending := 0
	for i := 0; i < len(text); {
		if end := matchEnd(text, i, foldedTerm, folder); end != -1 {
			if pending < i {
				segments = append(segments, Segment{Text: text[pending:i]})
			}
			segments = append(segments, Segment{Text: text[i:end], Match: true})
			i, pending = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if pending < len(text) {
		segments = append(segments, Segment{Text: text[pending:]})
	}
	return segments
}

// matchEnd returns the end offset of the shortest run of text starting at
// start whose folded form equals foldedTerm, or -1.
func matchEnd(text string, start int, foldedTerm string, folder cases.Caser) int {
	for end := start; end < len(text); {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size

		folded := folder.String(text[start:end])
		if folded == foldedTerm {
			return end
		}
		if !strings.HasPrefix(foldedTerm, folded) {
			return -1
		}
	}
	return -1
}
