package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/jex/internal/viewtree"
)

// Run starts the Bubble Tea program over an initialized tree and blocks
// until the user quits. Extra program options (custom IO for piped stdin)
// mirror tea.NewProgram.
func Run(tree *viewtree.Tree, log *logr.Logger, outputCap int, opts ...tea.ProgramOption) error {
	m := NewModel(tree, log)
	if outputCap > 0 {
		m.panes.SetOutputCap(outputCap)
	}
	prog := tea.NewProgram(m, opts...)
	_, err := prog.Run()
	return err
}
