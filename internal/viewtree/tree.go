// Package viewtree holds the session's forest of derived views.
//
// Nodes live in a flat arena keyed by integer id, with parent/child links
// stored as ids rather than pointers. Ids are dense and monotonically
// assigned; the tree only ever grows, so an id stays valid for the whole
// session.
package viewtree

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/jex/internal/query"
	"github.com/oakwood-commons/jex/internal/render"
	"github.com/oakwood-commons/jex/pkg/document"
)

var (
	// ErrNotFound means an operation referenced a node id that does not
	// exist. In normal operation this is a programming fault: ids are
	// never removed.
	ErrNotFound = errors.New("view node not found")

	// ErrRootExists means CreateRoot was called twice.
	ErrRootExists = errors.New("root view already exists")
)

// NodeID identifies a view node within the arena.
type NodeID int

// Node is one view: a named, immutable value sequence plus the navigation
// state over it. Values and SourceQuery never change after creation; Name
// changes through Rename, and State mutates freely as the user navigates.
type Node struct {
	ID          NodeID
	Name        string
	Parent      NodeID // -1 for the root
	SourceQuery string // "" for the root
	Values      []document.Value
	Outcome     query.Outcome // how the producing run ended
	Children    []NodeID

	// State carries folds, cursor, and scroll. It belongs to the node but
	// is ephemeral display state, not part of the view's identity.
	State *render.View
}

// IsRoot reports whether the node is the parentless root.
func (n *Node) IsRoot() bool { return n.Parent < 0 }

// FileWriter writes serialized bytes to a destination path. Production use
// wraps os.WriteFile; tests substitute an in-memory writer.
type FileWriter func(path string, data []byte) error

// OSFileWriter writes through the local filesystem.
func OSFileWriter(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// Tree is the arena of view nodes.
type Tree struct {
	nodes []*Node
	write FileWriter
	log   logr.Logger
}

// New returns an empty tree. A nil writer defaults to the filesystem.
func New(write FileWriter, log logr.Logger) *Tree {
	if write == nil {
		write = OSFileWriter
	}
	return &Tree{write: write, log: log}
}

// CreateRoot installs the loaded document as node 0. It fails if a root
// already exists.
func (t *Tree) CreateRoot(values []document.Value, name string) (NodeID, error) {
	if len(t.nodes) > 0 {
		return 0, ErrRootExists
	}
	n := &Node{
		ID:     0,
		Name:   name,
		Parent: -1,
		Values: values,
		State:  render.NewView(render.NewDocument(values)),
	}
	t.nodes = append(t.nodes, n)
	t.log.V(1).Info("created root view", "name", name, "documents", len(values))
	return 0, nil
}

// CreateChild appends a new node under parent holding the materialized
// outputs of sourceQuery. Empty output sequences still create a node; the
// tree records every submitted query. The run outcome is attached as display
// metadata.
func (t *Tree) CreateChild(parent NodeID, sourceQuery string, values []document.Value, outcome query.Outcome) (NodeID, error) {
	p, err := t.node(parent)
	if err != nil {
		return 0, err
	}
	id := NodeID(len(t.nodes))
	n := &Node{
		ID:          id,
		Name:        fmt.Sprintf("%s | %s", p.Name, sourceQuery),
		Parent:      parent,
		SourceQuery: sourceQuery,
		Values:      values,
		Outcome:     outcome,
		State:       render.NewView(render.NewDocument(values)),
	}
	t.nodes = append(t.nodes, n)
	p.Children = append(p.Children, id)
	t.log.V(1).Info("created child view", "id", int(id), "parent", int(parent), "query", sourceQuery, "outputs", len(values))
	return id, nil
}

// Rename sets a node's display name.
func (t *Tree) Rename(id NodeID, newName string) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	n.Name = newName
	return nil
}

// Node returns the node for id.
func (t *Tree) Node(id NodeID) (*Node, error) {
	return t.node(id)
}

// Children returns a node's child ids in creation order.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}
	return n.Children, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns node 0, or nil before CreateRoot.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// Save serializes a node's whole value sequence as pretty-printed JSON
// documents to destination. Multi-output nodes write one document per
// output, the same stream format the loader reads back.
func (t *Tree) Save(id NodeID, destination string) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := document.EncodeAll(&buf, n.Values); err != nil {
		return fmt.Errorf("encoding view %d: %w", int(id), err)
	}
	if err := t.write(destination, buf.Bytes()); err != nil {
		return fmt.Errorf("saving view %d to %s: %w", int(id), destination, err)
	}
	t.log.Info("saved view", "id", int(id), "destination", destination, "bytes", buf.Len())
	return nil
}

// Walk visits every node in preorder (root first, children in creation
// order), calling fn with the node and its depth.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(t.nodes[0], 0, fn)
}

func (t *Tree) walk(n *Node, depth int, fn func(n *Node, depth int)) {
	fn(n, depth)
	for _, c := range n.Children {
		t.walk(t.nodes[c], depth+1, fn)
	}
}

func (t *Tree) node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, int(id))
	}
	return t.nodes[id], nil
}
