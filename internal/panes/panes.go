// Package panes manages the two display slots and the query-submission flow
// between them.
package panes

import (
	"github.com/oakwood-commons/jex/internal/query"
	"github.com/oakwood-commons/jex/internal/viewtree"
)

// Side selects one of the two panes.
type Side int

const (
	Left Side = iota
	Right
)

// Manager holds the two pane targets and which side has focus. The
// interaction model is source-pane / result-pane: a query runs against the
// focused pane's node and its result lands in the other pane, which stays
// well-defined however often focus has been swapped.
type Manager struct {
	targets [2]viewtree.NodeID
	active  Side
	limit   int // output cap passed to query runs
}

// New returns a manager with both panes on node id and focus on the left.
func New(id viewtree.NodeID) *Manager {
	return &Manager{targets: [2]viewtree.NodeID{id, id}, limit: query.DefaultOutputCap}
}

// SetOutputCap overrides the per-run output cap. Zero restores the default.
func (m *Manager) SetOutputCap(limit int) {
	if limit <= 0 {
		limit = query.DefaultOutputCap
	}
	m.limit = limit
}

// Active returns the focused side.
func (m *Manager) Active() Side { return m.active }

// SwitchActive toggles focus between the panes.
func (m *Manager) SwitchActive() {
	m.active ^= 1
}

// Target returns the node a pane points at.
func (m *Manager) Target(s Side) viewtree.NodeID { return m.targets[s] }

// ActiveTarget returns the focused pane's node.
func (m *Manager) ActiveTarget() viewtree.NodeID { return m.targets[m.active] }

// SetTarget retargets a pane.
func (m *Manager) SetTarget(s Side, id viewtree.NodeID) { m.targets[s] = id }

// SubmitQuery compiles sourceText and, on success, runs it against the
// focused pane's node and stores the result as a new child view, retargeting
// the other pane to it. A compile failure creates nothing and is returned
// for inline display; run errors and truncation still create the node, with
// the outcome attached to it.
func (m *Manager) SubmitQuery(tree *viewtree.Tree, sourceText string) (viewtree.NodeID, error) {
	prog, err := query.Compile(sourceText)
	if err != nil {
		return 0, err
	}
	parent := m.targets[m.active]
	src, err := tree.Node(parent)
	if err != nil {
		return 0, err
	}
	outs, outcome := query.Run(prog, src.Values, m.limit)
	id, err := tree.CreateChild(parent, sourceText, outs, outcome)
	if err != nil {
		return 0, err
	}
	m.targets[m.active^1] = id
	return id, nil
}
