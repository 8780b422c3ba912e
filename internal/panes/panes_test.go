package panes

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jex/internal/query"
	"github.com/oakwood-commons/jex/internal/viewtree"
	"github.com/oakwood-commons/jex/pkg/document"
)

func newTestTree(t *testing.T, src string) *viewtree.Tree {
	t.Helper()
	values, err := document.Decode(strings.NewReader(src))
	require.NoError(t, err)
	tree := viewtree.New(nil, logr.Discard())
	_, err = tree.CreateRoot(values, "doc.json")
	require.NoError(t, err)
	return tree
}

func TestNewPointsBothPanesAtNode(t *testing.T) {
	m := New(0)
	assert.Equal(t, Left, m.Active())
	assert.Equal(t, viewtree.NodeID(0), m.Target(Left))
	assert.Equal(t, viewtree.NodeID(0), m.Target(Right))
}

func TestSwitchActiveToggles(t *testing.T) {
	m := New(0)
	m.SwitchActive()
	assert.Equal(t, Right, m.Active())
	m.SwitchActive()
	assert.Equal(t, Left, m.Active())
}

func TestSubmitQueryRetargetsOtherPane(t *testing.T) {
	tree := newTestTree(t, `{"a": [1, 2]}`)
	m := New(0)

	id, err := m.SubmitQuery(tree, ".a")
	require.NoError(t, err)

	assert.Equal(t, viewtree.NodeID(0), m.Target(Left), "focused pane keeps its node")
	assert.Equal(t, id, m.Target(Right), "result lands in the other pane")

	n, err := tree.Node(id)
	require.NoError(t, err)
	assert.Equal(t, []document.Value{document.Array{1, 2}}, n.Values)
}

func TestSubmitQueryRunsAgainstFocusedPane(t *testing.T) {
	tree := newTestTree(t, `{"a": {"b": 7}}`)
	m := New(0)

	inner, err := m.SubmitQuery(tree, ".a")
	require.NoError(t, err)

	// focus the right pane, which now holds the ".a" result
	m.SwitchActive()
	id, err := m.SubmitQuery(tree, ".b")
	require.NoError(t, err)

	n, err := tree.Node(id)
	require.NoError(t, err)
	assert.Equal(t, inner, n.Parent, "child hangs under the focused pane's node")
	assert.Equal(t, []document.Value{7}, n.Values)
	assert.Equal(t, id, m.Target(Left), "this time the left pane is retargeted")
	assert.Equal(t, inner, m.Target(Right))
}

func TestSubmitQueryCompileErrorCreatesNothing(t *testing.T) {
	tree := newTestTree(t, `{"a": 1}`)
	m := New(0)

	_, err := m.SubmitQuery(tree, ".a |")
	require.Error(t, err)
	var ce *query.CompileError
	assert.ErrorAs(t, err, &ce)

	assert.Equal(t, 1, tree.Len(), "failed compile must not grow the tree")
	assert.Equal(t, viewtree.NodeID(0), m.Target(Left))
	assert.Equal(t, viewtree.NodeID(0), m.Target(Right))
}

func TestSubmitQueryRunErrorStillCreatesNode(t *testing.T) {
	tree := newTestTree(t, `{"a": 1}`)
	m := New(0)

	id, err := m.SubmitQuery(tree, `.a, error("boom")`)
	require.NoError(t, err)

	n, err := tree.Node(id)
	require.NoError(t, err)
	require.NotNil(t, n.Outcome.Err)
	assert.Contains(t, n.Outcome.Err.Message, "boom")
	assert.Equal(t, []document.Value{1}, n.Values, "outputs before the error are kept")
}

func TestSubmitQueryHonorsOutputCap(t *testing.T) {
	tree := newTestTree(t, "null")
	m := New(0)
	m.SetOutputCap(5)

	id, err := m.SubmitQuery(tree, "range(100)")
	require.NoError(t, err)

	n, err := tree.Node(id)
	require.NoError(t, err)
	assert.True(t, n.Outcome.Truncated)
	assert.Len(t, n.Values, 5)
}

func TestSubmitQueryAllDocumentsFeedTheRun(t *testing.T) {
	tree := newTestTree(t, "{\"a\": 1}\n{\"a\": 2}")
	m := New(0)

	id, err := m.SubmitQuery(tree, ".a")
	require.NoError(t, err)

	n, err := tree.Node(id)
	require.NoError(t, err)
	assert.Equal(t, []document.Value{1, 2}, n.Values)
}
