// Package ui is the Bubble Tea shell around the view tree: two panes, the
// edit-tree browser, the bottom-line editors, and the key dispatch that maps
// terminal input onto core operations.
package ui

import (
	"fmt"
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/jex/internal/panes"
	"github.com/oakwood-commons/jex/internal/query"
	"github.com/oakwood-commons/jex/internal/search"
	"github.com/oakwood-commons/jex/internal/viewtree"
)

// Model is the root Bubble Tea model. All state mutation happens in Update
// on the program goroutine; the core packages are single-threaded by design
// and the model owns them exclusively.
type Model struct {
	log    logr.Logger
	styles Styles

	tree  *viewtree.Tree
	panes *panes.Manager

	editor editor

	// search is recomputed per search and tied to one node; switching the
	// focused pane to another node invalidates it.
	search       *search.State
	searchTarget viewtree.NodeID

	showTree   bool
	browserSel viewtree.NodeID

	flash       string
	helpVisible bool

	width  int
	height int

	quitting bool
}

// NewModel wires a model around an initialized tree. The tree must already
// hold its root.
func NewModel(tree *viewtree.Tree, log *logr.Logger) *Model {
	if log == nil {
		log = &logr.Logger{}
	}
	return &Model{
		log:    *log,
		styles: DefaultStyles(),
		tree:   tree,
		panes:  panes.New(tree.Root().ID),
		width:  80,
		height: 24,
	}
}

// Panes exposes the pane manager, mainly for tests.
func (m *Model) Panes() *panes.Manager { return m.panes }

// Tree exposes the view tree, mainly for tests.
func (m *Model) Tree() *viewtree.Tree { return m.tree }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.editor.open() {
			m.editor.input.SetWidth(m.editorWidth())
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.helpVisible {
			if key == "esc" || key == "?" || key == "f1" || key == "q" {
				m.helpVisible = false
			}
			return m, nil
		}
		if m.editor.open() {
			return m.updateEditor(msg)
		}
		return m.dispatch(KeyBindings[key])
	}
	return m, nil
}

func (m *Model) dispatch(action Action) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch action {
	case ActionCursorDown:
		m.focusedNode().State.MoveCursor(1)
	case ActionCursorUp:
		m.focusedNode().State.MoveCursor(-1)
	case ActionJumpTop:
		m.focusedNode().State.JumpTop()
	case ActionJumpBottom:
		m.focusedNode().State.JumpBottom()
	case ActionSwitchPane:
		m.panes.SwitchActive()
	case ActionToggleFold:
		m.focusedNode().State.ToggleFold()
	case ActionOpenQuery:
		initial := m.focusedNode().SourceQuery
		if initial == "" {
			initial = "."
		}
		return m.openEditor(editorQuery, "jq filter", initial, m.panes.ActiveTarget())
	case ActionOpenSearch:
		return m.openEditor(editorSearch, "regular expression", "", m.panes.ActiveTarget())
	case ActionNextMatch:
		m.stepSearch(false)
	case ActionPrevMatch:
		m.stepSearch(true)
	case ActionToggleTree:
		m.showTree = !m.showTree
		if m.showTree {
			m.browserSel = m.panes.ActiveTarget()
		}
	case ActionTreeDown:
		m.moveBrowser(1)
	case ActionTreeUp:
		m.moveBrowser(-1)
	case ActionNewChild:
		target := m.panes.ActiveTarget()
		if m.showTree {
			target = m.browserSel
		}
		return m.openEditor(editorNewChild, "jq filter", ".", target)
	case ActionRename:
		target := m.panes.ActiveTarget()
		if m.showTree {
			target = m.browserSel
		}
		node := m.mustNode(target)
		return m.openEditor(editorRename, "view name", node.Name, target)
	case ActionSave:
		return m.openEditor(editorSave, "output path", "", m.panes.ActiveTarget())
	case ActionHelp:
		m.helpVisible = true
	case ActionQuitOrCancel:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) openEditor(kind editorKind, placeholder, initial string, target viewtree.NodeID) (tea.Model, tea.Cmd) {
	m.editor = newEditor(kind, placeholder, initial, target, m.editorWidth())
	return m, textinput.Blink
}

func (m *Model) editorWidth() int {
	w := m.width - 10
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.close()
		return m, nil
	case "enter":
		return m.submitEditor()
	}
	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	return m, cmd
}

func (m *Model) submitEditor() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.editor.input.Value())
	switch m.editor.kind {
	case editorQuery:
		id, err := m.panes.SubmitQuery(m.tree, text)
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.close()
		m.noteOutcome(id)
	case editorNewChild:
		prog, err := query.Compile(text)
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		parent := m.mustNode(m.editor.target)
		outs, outcome := query.Run(prog, parent.Values, 0)
		id, err := m.tree.CreateChild(parent.ID, text, outs, outcome)
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.close()
		m.panes.SetTarget(m.inactiveSide(), id)
		m.browserSel = id
		m.noteOutcome(id)
	case editorSearch:
		re, err := regexp.Compile(text)
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.close()
		node := m.focusedNode()
		m.search = search.New(node.State.Doc, re)
		m.searchTarget = node.ID
		if m.search.Next(node.State) < 0 {
			m.flash = fmt.Sprintf("no matches for %s", re)
		}
	case editorRename:
		if text == "" {
			m.editor.errMsg = "name must not be empty"
			return m, nil
		}
		if err := m.tree.Rename(m.editor.target, text); err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.close()
	case editorSave:
		if text == "" {
			m.editor.errMsg = "path must not be empty"
			return m, nil
		}
		if err := m.tree.Save(m.editor.target, text); err != nil {
			// transient: the tree is unchanged, let the user fix the path
			m.editor.errMsg = err.Error()
			return m, nil
		}
		m.editor.close()
		m.flash = "saved to " + text
	default:
		m.editor.close()
	}
	return m, nil
}

// stepSearch advances the active search, dropping it when the focused pane
// no longer shows the node it was computed for.
func (m *Model) stepSearch(reverse bool) {
	node := m.focusedNode()
	if m.search == nil || m.searchTarget != node.ID {
		m.search = nil
		m.flash = "no active search (press / to search)"
		return
	}
	var row int
	if reverse {
		row = m.search.Prev(node.State)
	} else {
		row = m.search.Next(node.State)
	}
	if row < 0 {
		m.flash = "no matches"
		return
	}
	m.flash = fmt.Sprintf("match %d of %d", m.search.Current+1, len(m.search.Matches))
}

func (m *Model) noteOutcome(id viewtree.NodeID) {
	node := m.mustNode(id)
	switch {
	case node.Outcome.Err != nil:
		m.flash = "runtime error: " + node.Outcome.Err.Message
	case node.Outcome.Truncated:
		m.flash = fmt.Sprintf("output truncated at %d values", len(node.Values))
	}
}

func (m *Model) moveBrowser(delta int) {
	if !m.showTree {
		return
	}
	order := m.browserOrder()
	pos := 0
	for i, id := range order {
		if id == m.browserSel {
			pos = i
			break
		}
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(order)-1 {
		pos = len(order) - 1
	}
	m.browserSel = order[pos]
}

// browserOrder is the preorder node listing shown by the tree panel.
func (m *Model) browserOrder() []viewtree.NodeID {
	var order []viewtree.NodeID
	m.tree.Walk(func(n *viewtree.Node, _ int) {
		order = append(order, n.ID)
	})
	return order
}

func (m *Model) focusedNode() *viewtree.Node {
	return m.mustNode(m.panes.ActiveTarget())
}

func (m *Model) inactiveSide() panes.Side {
	if m.panes.Active() == panes.Left {
		return panes.Right
	}
	return panes.Left
}

// mustNode panics on a dangling id: node ids are never removed, so a lookup
// failure is a programming fault, not a runtime condition.
func (m *Model) mustNode(id viewtree.NodeID) *viewtree.Node {
	n, err := m.tree.Node(id)
	if err != nil {
		panic(fmt.Sprintf("view tree invariant violated: %v", err))
	}
	return n
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	var body string
	if m.helpVisible {
		body = m.renderHelp()
	} else {
		body = m.renderMain()
	}
	out := lipgloss.JoinVertical(lipgloss.Left, body, m.renderBottom())
	v := tea.NewView(out)
	v.AltScreen = true
	return v
}

func (m *Model) renderMain() string {
	contentHeight := m.height - 3 // pane titles, query bar, status line
	if contentHeight < 1 {
		contentHeight = 1
	}
	paneArea := m.width
	var cols []string
	if m.showTree {
		treeWidth := m.width / 4
		if treeWidth < 20 {
			treeWidth = 20
		}
		if treeWidth > m.width/2 {
			treeWidth = m.width / 2
		}
		paneArea -= treeWidth + 1
		cols = append(cols, m.renderTreePanel(treeWidth, contentHeight+1))
	}
	leftWidth := paneArea/2 - 1
	rightWidth := paneArea - leftWidth - 2
	cols = append(cols,
		m.renderPane(panes.Left, leftWidth, contentHeight),
		m.renderPane(panes.Right, rightWidth, contentHeight),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderBottom() string {
	queryLine := m.renderQueryBar()
	statusLine := ""
	if m.editor.open() && m.editor.errMsg != "" {
		statusLine = m.styles.EditorError.Render(truncate(m.editor.errMsg, m.width))
	} else if m.flash != "" {
		statusLine = m.styles.Flash.Render(truncate(m.flash, m.width))
	} else {
		statusLine = m.styles.Help.Render(truncate("q query  / search  z fold  tab pane  t tree  s save  ? help  esc quit", m.width))
	}
	return queryLine + "\n" + statusLine
}

func (m *Model) renderQueryBar() string {
	if m.editor.open() {
		return m.styles.EditorPrompt.Render("") + m.editor.input.View()
	}
	node := m.focusedNode()
	if node.IsRoot() {
		return m.styles.QueryBar.Render(truncate("root: "+node.Name, m.width))
	}
	return m.styles.QueryBar.Render(truncate("query: "+node.SourceQuery, m.width))
}
