package search

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jex/internal/render"
	"github.com/oakwood-commons/jex/pkg/document"
)

func flatten(t *testing.T, src string) *render.Document {
	t.Helper()
	values, err := document.Decode(strings.NewReader(src))
	require.NoError(t, err)
	return render.NewDocument(values)
}

// {"foo": 1, "bar": {"foo": 2}} flattens to:
//
//	0 {
//	1   "foo": 1
//	2   "bar": {
//	3     "foo": 2
//	4   }
//	5 }
const searchDoc = `{"foo": 1, "bar": {"foo": 2}}`

func TestFindMatchesKeysAndScalars(t *testing.T) {
	doc := flatten(t, searchDoc)
	assert.Equal(t, []int{1, 3}, Find(doc, regexp.MustCompile("foo")))
	assert.Equal(t, []int{2}, Find(doc, regexp.MustCompile("bar")))
	assert.Equal(t, []int{3}, Find(doc, regexp.MustCompile("^2$")))
}

func TestFindDoesNotMatchPunctuation(t *testing.T) {
	doc := flatten(t, searchDoc)
	assert.Empty(t, Find(doc, regexp.MustCompile(`\{`)))
	assert.Empty(t, Find(doc, regexp.MustCompile(`\}`)))
}

func TestFindMatchesQuotedStringForm(t *testing.T) {
	doc := flatten(t, `{"a": "hello"}`)
	// scalars match their canonical rendering, quotes included
	assert.Equal(t, []int{1}, Find(doc, regexp.MustCompile(`"hello"`)))
}

func TestNextWalksMatchesInDocumentOrder(t *testing.T) {
	doc := flatten(t, searchDoc)
	view := render.NewView(doc)
	s := New(doc, regexp.MustCompile("foo"))

	assert.Equal(t, 1, s.Next(view))
	assert.Equal(t, 1, view.Cursor)
	assert.Equal(t, 3, s.Next(view))
	assert.Equal(t, 3, view.Cursor)
}

func TestNextWrapsAround(t *testing.T) {
	doc := flatten(t, searchDoc)
	view := render.NewView(doc)
	s := New(doc, regexp.MustCompile("foo"))

	s.Next(view)
	s.Next(view)
	assert.Equal(t, 1, s.Next(view), "past the last match wraps to the first")
}

func TestPrevBeforeFirstWrapsToLast(t *testing.T) {
	doc := flatten(t, searchDoc)
	view := render.NewView(doc)
	s := New(doc, regexp.MustCompile("foo"))

	assert.Equal(t, 3, s.Prev(view))
	assert.Equal(t, 1, s.Prev(view))
	assert.Equal(t, 3, s.Prev(view))
}

func TestNextRevealsFoldedMatch(t *testing.T) {
	doc := flatten(t, searchDoc)
	view := render.NewView(doc)
	view.Cursor = 2
	view.ToggleFold()
	require.NotContains(t, view.Visible(), 3)

	s := New(doc, regexp.MustCompile("^2$"))
	assert.Equal(t, 3, s.Next(view))
	assert.Contains(t, view.Visible(), 3, "landing on a match unfolds its ancestors")
}

func TestNextNoMatches(t *testing.T) {
	doc := flatten(t, searchDoc)
	view := render.NewView(doc)
	s := New(doc, regexp.MustCompile("zzz"))

	assert.Equal(t, -1, s.Next(view))
	assert.Equal(t, -1, s.Prev(view))
	assert.Equal(t, 0, view.Cursor)
}
