package ui

import (
	"fmt"
	"strings"
)

var helpEntries = []struct {
	key    string
	action string
}{
	{"Up/Down", "move cursor"},
	{"Home/End", "jump to first/last row"},
	{"Tab", "switch focused pane"},
	{"z", "fold/unfold container at cursor"},
	{"q", "edit a jq filter (Enter runs it into the other pane)"},
	{"/", "search (regular expression)"},
	{"n / N", "next / previous match"},
	{"t", "toggle the edit-tree browser"},
	{"j / k", "move the edit-tree selection"},
	{"+", "new child view of the selected node"},
	{"r", "rename the selected view"},
	{"s", "save the focused view to a file"},
	{"?", "this help"},
	{"Esc", "close editor / quit"},
}

func (m *Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(m.styles.PaneTitleFocused.Render("jex key bindings"))
	sb.WriteString("\n\n")
	for _, e := range helpEntries {
		fmt.Fprintf(&sb, "  %s  %s\n",
			m.styles.Key.Render(fmt.Sprintf("%-9s", e.key)),
			m.styles.Help.Render(e.action))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("press Esc to close"))
	return sb.String()
}
