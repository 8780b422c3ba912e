package ui

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/jex/internal/panes"
	"github.com/oakwood-commons/jex/internal/render"
	"github.com/oakwood-commons/jex/internal/viewtree"
)

// renderPane draws one pane: a title line plus rowCount rows of the node's
// fold-aware document view.
func (m *Model) renderPane(side panes.Side, width, rowCount int) string {
	node := m.mustNode(m.panes.Target(side))
	focused := m.panes.Active() == side

	title := truncate(node.Name+outcomeSuffix(node), width)
	titleStyle := m.styles.PaneTitle
	if focused {
		titleStyle = m.styles.PaneTitleFocused
	}
	lines := []string{titleStyle.Render(title)}

	if len(node.Values) == 0 {
		lines = append(lines, m.styles.Punct.Render("(no output)"))
	} else {
		lines = append(lines, m.renderRows(node.State, focused, width, rowCount)...)
	}
	for len(lines) < rowCount+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines[:rowCount+1], "\n")
}

func (m *Model) renderRows(view *render.View, focused bool, width, rowCount int) []string {
	visible := view.EnsureCursorVisible(rowCount)
	start := view.Scroll
	end := start + rowCount
	if end > len(visible) {
		end = len(visible)
	}
	if start > end {
		start = end
	}
	out := make([]string, 0, end-start)
	for _, ri := range visible[start:end] {
		r := view.Doc.Rows[ri]
		folded := r.IsStart() && view.Folds[r.Path.String()]
		text := truncate(strings.Repeat("  ", r.Depth)+render.RowText(r, folded), width)
		switch {
		case focused && ri == view.Cursor:
			text = m.styles.CursorLine.Width(width).Render(text)
		case folded:
			text = m.styles.Folded.Render(text)
		case r.Kind == render.KindScalar:
			text = m.styles.Scalar.Render(text)
		default:
			text = m.styles.Punct.Render(text)
		}
		out = append(out, text)
	}
	return out
}

func outcomeSuffix(node *viewtree.Node) string {
	switch {
	case node.Outcome.Err != nil:
		return "  [error]"
	case node.Outcome.Truncated:
		return "  [truncated]"
	}
	return ""
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
