// Package search finds pattern matches over a flattened document and walks
// them cyclically.
//
// Matching ignores fold state: a match inside a folded container is still
// found, and landing on it unfolds whatever hides it.
package search

import (
	"regexp"

	"github.com/oakwood-commons/jex/internal/render"
	"github.com/oakwood-commons/jex/pkg/document"
)

// Find scans every row of doc in document order and returns the indices of
// rows whose textual rendering matches re. Object and array keys match as
// their literal text, scalars as their canonical form. Container open/close
// punctuation is not matched on its own.
func Find(doc *render.Document, re *regexp.Regexp) []int {
	var out []int
	for i, r := range doc.Rows {
		if matches(r, re) {
			out = append(out, i)
		}
	}
	return out
}

func matches(r render.Row, re *regexp.Regexp) bool {
	if r.HasKey && !r.IsEnd() && re.MatchString(r.Key) {
		return true
	}
	if r.Kind == render.KindScalar && re.MatchString(document.ScalarText(r.Value)) {
		return true
	}
	return false
}

// State tracks the matches for one search over one view node and the
// position within them. It is recomputed per search and discarded when the
// user switches nodes.
type State struct {
	Pattern *regexp.Regexp
	Matches []int
	// Current is the index into Matches of the selected match, or -1
	// before the first Next/Prev.
	Current int
}

// New runs the scan and returns a fresh state with no selection.
func New(doc *render.Document, re *regexp.Regexp) *State {
	return &State{Pattern: re, Matches: Find(doc, re), Current: -1}
}

// Next advances to the following match, wrapping past the last back to the
// first, and reveals it in the view. It returns the row index, or -1 when
// there are no matches.
func (s *State) Next(view *render.View) int {
	if len(s.Matches) == 0 {
		return -1
	}
	if s.Current < 0 {
		s.Current = 0
	} else {
		s.Current = (s.Current + 1) % len(s.Matches)
	}
	return s.land(view)
}

// Prev retreats to the preceding match, wrapping before the first around to
// the last, and reveals it in the view.
func (s *State) Prev(view *render.View) int {
	if len(s.Matches) == 0 {
		return -1
	}
	if s.Current < 0 {
		s.Current = len(s.Matches) - 1
	} else {
		s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
	}
	return s.land(view)
}

func (s *State) land(view *render.View) int {
	row := s.Matches[s.Current]
	view.Reveal(row)
	return row
}
