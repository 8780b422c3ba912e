package render

// View is the navigation state over a flattened document: the fold set, the
// cursor (a row index into Document.Rows), and the scroll offset (an index
// into the visible row list).
type View struct {
	Doc    *Document
	Folds  map[string]bool
	Cursor int
	Scroll int
}

// NewView returns a fresh view with nothing folded and the cursor on the
// first row.
func NewView(doc *Document) *View {
	return &View{Doc: doc, Folds: make(map[string]bool)}
}

// Visible returns the indices of the rows not hidden by a fold, in document
// order. A folded container keeps its start row (rendered collapsed) and
// hides everything through its end row.
func (v *View) Visible() []int {
	rows := v.Doc.Rows
	out := make([]int, 0, len(rows))
	i := 0
	for i < len(rows) {
		out = append(out, i)
		r := rows[i]
		if r.IsStart() && v.Folds[r.Path.String()] {
			i = r.End + 1
			continue
		}
		i++
	}
	return out
}

// cursorPos returns the cursor's position within the visible list, clamping
// the cursor onto a visible row if a fold has hidden it.
func (v *View) cursorPos(visible []int) int {
	pos := 0
	for i, ri := range visible {
		if ri == v.Cursor {
			return i
		}
		if ri > v.Cursor {
			break
		}
		pos = i
	}
	// Cursor row is hidden: the last visible row before it is the folded
	// container that swallowed it.
	v.Cursor = visible[pos]
	return pos
}

// MoveCursor moves the cursor delta visible rows, clamping at the ends.
func (v *View) MoveCursor(delta int) {
	visible := v.Visible()
	if len(visible) == 0 {
		return
	}
	pos := v.cursorPos(visible) + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(visible)-1 {
		pos = len(visible) - 1
	}
	v.Cursor = visible[pos]
}

// JumpTop moves the cursor and scroll to the first visible row.
func (v *View) JumpTop() {
	visible := v.Visible()
	if len(visible) == 0 {
		return
	}
	v.Cursor = visible[0]
	v.Scroll = 0
}

// JumpBottom moves the cursor to the last visible row.
func (v *View) JumpBottom() {
	visible := v.Visible()
	if len(visible) == 0 {
		return
	}
	v.Cursor = visible[len(visible)-1]
	v.Scroll = len(visible) - 1
}

// ToggleFold flips the fold at the cursor. On a scalar row it is a no-op.
// On a container's end row it folds the container and moves the cursor to
// its start row, matching how the cursor behaves when a fold hides it.
func (v *View) ToggleFold() {
	if len(v.Doc.Rows) == 0 {
		return
	}
	r := v.Doc.Rows[v.Cursor]
	if r.Kind == KindScalar {
		return
	}
	start := v.Cursor
	if r.IsEnd() {
		start = r.End
		r = v.Doc.Rows[start]
	}
	key := r.Path.String()
	if v.Folds[key] {
		delete(v.Folds, key)
	} else {
		v.Folds[key] = true
		v.Cursor = start
	}
	v.clampScroll()
}

// ToggleFoldPath flips the fold for a container path directly. Unknown and
// scalar paths are no-ops.
func (v *View) ToggleFoldPath(p Path) {
	start, ok := v.Doc.StartRow(p)
	if !ok {
		return
	}
	key := p.String()
	if v.Folds[key] {
		delete(v.Folds, key)
		return
	}
	v.Folds[key] = true
	row := v.Doc.Rows[start]
	if v.Cursor > start && v.Cursor <= row.End {
		v.Cursor = start
	}
	v.clampScroll()
}

// Reveal unfolds every ancestor of the row at index i and places the cursor
// on it, so the row is guaranteed visible afterwards.
func (v *View) Reveal(i int) {
	if i < 0 || i >= len(v.Doc.Rows) {
		return
	}
	r := v.Doc.Rows[i]
	for _, anc := range r.Path.Ancestors() {
		delete(v.Folds, anc.String())
	}
	// An end row's own container must be open for the row to show.
	if r.IsEnd() {
		delete(v.Folds, r.Path.String())
	}
	v.Cursor = i
	v.clampScroll()
}

// EnsureCursorVisible adjusts the scroll offset so the cursor falls within a
// window of height rows, and returns the visible list it computed.
func (v *View) EnsureCursorVisible(height int) []int {
	visible := v.Visible()
	if len(visible) == 0 || height <= 0 {
		v.Scroll = 0
		return visible
	}
	pos := v.cursorPos(visible)
	if v.Scroll > pos {
		v.Scroll = pos
	}
	if pos >= v.Scroll+height {
		v.Scroll = pos - height + 1
	}
	if v.Scroll > len(visible)-1 {
		v.Scroll = len(visible) - 1
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
	return visible
}

func (v *View) clampScroll() {
	visible := v.Visible()
	if v.Scroll > len(visible)-1 {
		v.Scroll = len(visible) - 1
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
}

// CursorRow returns the row under the cursor.
func (v *View) CursorRow() (Row, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Doc.Rows) {
		return Row{}, false
	}
	return v.Doc.Rows[v.Cursor], true
}
