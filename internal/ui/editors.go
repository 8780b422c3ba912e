package ui

import (
	"charm.land/bubbles/v2/textinput"

	"github.com/oakwood-commons/jex/internal/viewtree"
)

// editorKind identifies which prompt is open at the bottom of the screen.
type editorKind int

const (
	editorNone editorKind = iota
	editorQuery
	editorSearch
	editorRename
	editorSave
	editorNewChild
)

// editor is the single-line input shared by the query, search, rename, save,
// and new-child prompts. Only one is ever open; Esc closes it without
// touching anything.
type editor struct {
	kind   editorKind
	input  textinput.Model
	errMsg string
	// target is the node the editor acts on. Query submission reads the
	// pane manager instead; rename/save/new-child pin their node here so
	// browser navigation while typing cannot redirect the action.
	target viewtree.NodeID
}

func newEditor(kind editorKind, placeholder, initial string, target viewtree.NodeID, width int) editor {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = promptFor(kind)
	ti.CharLimit = 500
	ti.SetWidth(width)
	ti.SetValue(initial)
	ti.SetCursor(len(initial))
	ti.Focus()
	return editor{kind: kind, input: ti, target: target}
}

func promptFor(kind editorKind) string {
	switch kind {
	case editorQuery, editorNewChild:
		return "jq> "
	case editorSearch:
		return "/"
	case editorRename:
		return "name> "
	case editorSave:
		return "save> "
	default:
		return "> "
	}
}

func (e *editor) open() bool { return e.kind != editorNone }

func (e *editor) close() {
	e.kind = editorNone
	e.errMsg = ""
	e.input.Blur()
}
