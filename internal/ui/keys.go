package ui

// Action is a user intention decoded from a key press in normal mode.
type Action string

const (
	ActionNone         Action = ""
	ActionCursorDown   Action = "cursor_down"
	ActionCursorUp     Action = "cursor_up"
	ActionJumpTop      Action = "jump_top"
	ActionJumpBottom   Action = "jump_bottom"
	ActionSwitchPane   Action = "switch_pane"
	ActionToggleFold   Action = "toggle_fold"
	ActionOpenQuery    Action = "open_query"
	ActionOpenSearch   Action = "open_search"
	ActionNextMatch    Action = "next_match"
	ActionPrevMatch    Action = "prev_match"
	ActionToggleTree   Action = "toggle_tree"
	ActionTreeDown     Action = "tree_down"
	ActionTreeUp       Action = "tree_up"
	ActionNewChild     Action = "new_child"
	ActionRename       Action = "rename"
	ActionSave         Action = "save"
	ActionHelp         Action = "help"
	ActionQuitOrCancel Action = "quit_or_cancel"
)

// KeyBindings maps bubbletea key strings to actions for normal mode.
var KeyBindings = map[string]Action{
	"down":   ActionCursorDown,
	"up":     ActionCursorUp,
	"home":   ActionJumpTop,
	"end":    ActionJumpBottom,
	"tab":    ActionSwitchPane,
	"z":      ActionToggleFold,
	"q":      ActionOpenQuery,
	"/":      ActionOpenSearch,
	"n":      ActionNextMatch,
	"N":      ActionPrevMatch,
	"t":      ActionToggleTree,
	"j":      ActionTreeDown,
	"k":      ActionTreeUp,
	"+":      ActionNewChild,
	"r":      ActionRename,
	"s":      ActionSave,
	"?":      ActionHelp,
	"f1":     ActionHelp,
	"esc":    ActionQuitOrCancel,
	"ctrl+c": ActionQuitOrCancel,
}
