package ui

import (
	"strings"

	"github.com/oakwood-commons/jex/internal/panes"
	"github.com/oakwood-commons/jex/internal/viewtree"
)

// renderTreePanel draws the edit-tree browser: every view created this
// session, connected with box-drawing branches, with the browser selection
// and the two pane targets marked.
func (m *Model) renderTreePanel(width, height int) string {
	root := m.tree.Root()
	lines := []string{m.treeEntry(root, width, "")}
	for i, id := range root.Children {
		m.renderTreeBranch(id, "", i == len(root.Children)-1, width, &lines)
	}
	if len(lines) > height {
		lines = m.clampTreeLines(lines, height)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTreeBranch(id viewtree.NodeID, prefix string, last bool, width int, out *[]string) {
	node := m.mustNode(id)
	connector := "├"
	if last {
		connector = "└"
	}
	*out = append(*out, m.treeEntry(node, width, prefix+connector))
	childPrefix := prefix + "│"
	if last {
		childPrefix = prefix + " "
	}
	for i, c := range node.Children {
		m.renderTreeBranch(c, childPrefix, i == len(node.Children)-1, width, out)
	}
}

func (m *Model) treeEntry(node *viewtree.Node, width int, prefix string) string {
	label := node.Name + m.paneMarks(node.ID)
	text := truncate(prefix+label, width)
	if m.browserSel == node.ID {
		return m.styles.TreeSelected.Render(text)
	}
	if m.paneMarks(node.ID) != "" {
		return m.styles.TreePaneTarget.Render(text)
	}
	return text
}

// paneMarks annotates nodes currently shown in a pane.
func (m *Model) paneMarks(id viewtree.NodeID) string {
	left := m.panes.Target(panes.Left) == id
	right := m.panes.Target(panes.Right) == id
	switch {
	case left && right:
		return " [LR]"
	case left:
		return " [L]"
	case right:
		return " [R]"
	}
	return ""
}

// clampTreeLines keeps the browser selection on screen when the tree
// outgrows the panel.
func (m *Model) clampTreeLines(lines []string, height int) []string {
	selPos := 0
	pos := 0
	m.tree.Walk(func(n *viewtree.Node, _ int) {
		if n.ID == m.browserSel {
			selPos = pos
		}
		pos++
	})
	start := 0
	if selPos >= height {
		start = selPos - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}
