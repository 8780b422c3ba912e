package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jex/pkg/document"
)

func flatten(t *testing.T, src string) *Document {
	t.Helper()
	values, err := document.Decode(strings.NewReader(src))
	require.NoError(t, err)
	return NewDocument(values)
}

// {"a": {"b": 1, "c": [2, 3]}, "d": 4} flattens to:
//
//	0 {
//	1   "a": {
//	2     "b": 1
//	3     "c": [
//	4       2
//	5       3
//	6     ]
//	7   }
//	8   "d": 4
//	9 }
const nestedDoc = `{"a": {"b": 1, "c": [2, 3]}, "d": 4}`

func TestNewDocumentRowLayout(t *testing.T) {
	d := flatten(t, nestedDoc)
	require.Len(t, d.Rows, 10)

	assert.Equal(t, KindObjectStart, d.Rows[0].Kind)
	assert.Equal(t, 9, d.Rows[0].End)

	assert.Equal(t, KindObjectStart, d.Rows[1].Kind)
	assert.Equal(t, "a", d.Rows[1].Key)
	assert.Equal(t, 7, d.Rows[1].End)

	assert.Equal(t, KindArrayStart, d.Rows[3].Kind)
	assert.Equal(t, "c", d.Rows[3].Key)
	assert.Equal(t, 6, d.Rows[3].End)

	assert.Equal(t, KindScalar, d.Rows[8].Kind)
	assert.Equal(t, "d", d.Rows[8].Key)
	assert.Equal(t, 4, d.Rows[8].Value)

	assert.Equal(t, KindObjectEnd, d.Rows[9].Kind)
	assert.Equal(t, 0, d.Rows[9].End)
}

func TestNewDocumentDepths(t *testing.T) {
	d := flatten(t, nestedDoc)
	want := []int{0, 1, 2, 2, 3, 3, 2, 1, 1, 0}
	for i, r := range d.Rows {
		assert.Equal(t, want[i], r.Depth, "row %d", i)
	}
}

func TestNewDocumentMultiElementSequence(t *testing.T) {
	d := flatten(t, "1 [2] 3")
	require.Len(t, d.Rows, 5)
	assert.Equal(t, 0, d.Rows[0].Path.Doc)
	assert.Equal(t, 1, d.Rows[1].Path.Doc)
	assert.Equal(t, 2, d.Rows[4].Path.Doc)
}

func TestPathString(t *testing.T) {
	p := Path{Doc: 2, Steps: []Step{
		{Key: "a/b", IsKey: true},
		{Index: 3},
	}}
	assert.Equal(t, `2/"a/b"/3`, p.String())
}

func TestPathAncestors(t *testing.T) {
	p := Path{Doc: 0, Steps: []Step{
		{Key: "a", IsKey: true},
		{Index: 1},
	}}
	ancs := p.Ancestors()
	require.Len(t, ancs, 2)
	assert.Equal(t, "0", ancs[0].String())
	assert.Equal(t, `0/"a"`, ancs[1].String())
}

func TestRowText(t *testing.T) {
	d := flatten(t, nestedDoc)

	assert.Equal(t, "{", RowText(d.Rows[0], false))
	assert.Equal(t, "{...}", RowText(d.Rows[0], true))
	assert.Equal(t, `"a": {`, RowText(d.Rows[1], false))
	assert.Equal(t, `"b": 1`, RowText(d.Rows[2], false))
	assert.Equal(t, `"c": [`, RowText(d.Rows[3], false))
	assert.Equal(t, `"c": [...]`, RowText(d.Rows[3], true))
	assert.Equal(t, "]", RowText(d.Rows[6], false))
	assert.Equal(t, `"d": 4`, RowText(d.Rows[8], false))
	assert.Equal(t, "}", RowText(d.Rows[9], false))
}

func TestVisibleUnfolded(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	assert.Len(t, v.Visible(), 10)
}

func TestVisibleSkipsFoldedSpan(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 1
	v.ToggleFold()

	// rows 2..7 hidden, row 1 stays as the collapsed marker
	assert.Equal(t, []int{0, 1, 8, 9}, v.Visible())
}

func TestVisibleNestedFolds(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 3
	v.ToggleFold()
	assert.Equal(t, []int{0, 1, 2, 3, 7, 8, 9}, v.Visible())

	// folding the parent hides the inner fold entirely
	v.Cursor = 1
	v.ToggleFold()
	assert.Equal(t, []int{0, 1, 8, 9}, v.Visible())

	// unfolding the parent restores the inner fold untouched
	v.ToggleFold()
	assert.Equal(t, []int{0, 1, 2, 3, 7, 8, 9}, v.Visible())
}

func TestToggleFoldScalarNoop(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 2
	v.ToggleFold()
	assert.Empty(t, v.Folds)
	assert.Equal(t, 2, v.Cursor)
}

func TestToggleFoldOnEndRowFoldsContainer(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 6
	v.ToggleFold()

	assert.Equal(t, 3, v.Cursor, "cursor should land on the container start row")
	assert.True(t, v.Folds[v.Doc.Rows[3].Path.String()])
}

func TestToggleFoldUnfoldKeepsCursor(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 1
	v.ToggleFold()
	v.ToggleFold()

	assert.Empty(t, v.Folds)
	assert.Equal(t, 1, v.Cursor)
}

func TestToggleFoldPathClampsInsideCursor(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 4
	v.ToggleFoldPath(v.Doc.Rows[1].Path)

	assert.Equal(t, 1, v.Cursor)
}

func TestMoveCursorClamps(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.MoveCursor(-5)
	assert.Equal(t, 0, v.Cursor)

	v.MoveCursor(100)
	assert.Equal(t, 9, v.Cursor)
}

func TestMoveCursorSkipsFoldedRows(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 1
	v.ToggleFold()
	v.MoveCursor(1)

	assert.Equal(t, 8, v.Cursor, "cursor should jump past the folded span")
}

func TestJumpTopBottom(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.JumpBottom()
	assert.Equal(t, 9, v.Cursor)
	v.JumpTop()
	assert.Equal(t, 0, v.Cursor)
	assert.Equal(t, 0, v.Scroll)
}

func TestRevealUnfoldsAncestors(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 1
	v.ToggleFold()
	require.NotContains(t, v.Visible(), 4)
	v.Reveal(4)

	assert.Equal(t, 4, v.Cursor)
	assert.Contains(t, v.Visible(), 4)
}

func TestRevealEndRowUnfoldsOwnContainer(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 3
	v.ToggleFold()
	v.Reveal(6)

	assert.Contains(t, v.Visible(), 6)
}

func TestEnsureCursorVisibleScrollsDown(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 8
	visible := v.EnsureCursorVisible(4)

	require.Len(t, visible, 10)
	// cursor at visible pos 8 must fall inside [Scroll, Scroll+4)
	assert.Equal(t, 5, v.Scroll)
}

func TestEnsureCursorVisibleScrollsUp(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Scroll = 7
	v.Cursor = 2
	v.EnsureCursorVisible(4)

	assert.Equal(t, 2, v.Scroll)
}

func TestCursorRow(t *testing.T) {
	v := NewView(flatten(t, nestedDoc))
	v.Cursor = 2
	r, ok := v.CursorRow()
	require.True(t, ok)
	assert.Equal(t, "b", r.Key)

	v.Cursor = 99
	_, ok = v.CursorRow()
	assert.False(t, ok)
}
