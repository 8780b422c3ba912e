// Package render flattens a view node's value sequence into display rows and
// maintains fold-aware cursor and scroll state over them.
//
// A document is flattened exactly once: the value sequence is immutable, so
// the full row list and the matching-bracket spans can be precomputed.
// Folding never reflattens; the visible row list is derived by skipping
// folded spans, which costs time proportional to the rows actually shown.
package render

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/jex/pkg/document"
)

// RowKind identifies what a row displays.
type RowKind int

const (
	KindScalar RowKind = iota
	KindObjectStart
	KindObjectEnd
	KindArrayStart
	KindArrayEnd
)

// Step is one segment of a path: an object key or an array index.
type Step struct {
	Key   string
	Index int
	IsKey bool
}

// Path locates a node inside one element of a value sequence. Doc selects
// the element; Steps walk into it.
type Path struct {
	Doc   int
	Steps []Step
}

// String returns a canonical encoding usable as a fold-set key. Object keys
// are quoted so keys containing separators cannot collide with indices.
func (p Path) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", p.Doc)
	for _, s := range p.Steps {
		if s.IsKey {
			fmt.Fprintf(&sb, "/%q", s.Key)
		} else {
			fmt.Fprintf(&sb, "/%d", s.Index)
		}
	}
	return sb.String()
}

func (p Path) child(s Step) Path {
	steps := make([]Step, len(p.Steps), len(p.Steps)+1)
	copy(steps, p.Steps)
	return Path{Doc: p.Doc, Steps: append(steps, s)}
}

// Ancestors returns every proper ancestor path, outermost first, starting at
// the document element itself.
func (p Path) Ancestors() []Path {
	out := make([]Path, 0, len(p.Steps))
	for i := 0; i < len(p.Steps); i++ {
		out = append(out, Path{Doc: p.Doc, Steps: p.Steps[:i]})
	}
	return out
}

// Row is one display line of a flattened document.
type Row struct {
	Kind  RowKind
	Path  Path
	Key   string // object key owning this node, if any
	HasKey bool
	Value document.Value // scalar value, or the container for start rows
	Depth int
	End   int // for start rows, index of the matching end row
}

// IsStart reports whether the row opens a container.
func (r Row) IsStart() bool {
	return r.Kind == KindObjectStart || r.Kind == KindArrayStart
}

// IsEnd reports whether the row closes a container.
func (r Row) IsEnd() bool {
	return r.Kind == KindObjectEnd || r.Kind == KindArrayEnd
}

// Document is an immutable flattened value sequence.
type Document struct {
	Rows    []Row
	startAt map[string]int // container path -> start row index
}

// NewDocument flattens values into rows in document order.
func NewDocument(values []document.Value) *Document {
	d := &Document{startAt: make(map[string]int)}
	for i, v := range values {
		d.flatten(v, Path{Doc: i}, "", false, 0)
	}
	return d
}

func (d *Document) flatten(v document.Value, path Path, key string, hasKey bool, depth int) {
	switch t := v.(type) {
	case *document.Object:
		start := len(d.Rows)
		d.startAt[path.String()] = start
		d.Rows = append(d.Rows, Row{Kind: KindObjectStart, Path: path, Key: key, HasKey: hasKey, Value: v, Depth: depth})
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			d.flatten(child, path.child(Step{Key: k, IsKey: true}), k, true, depth+1)
		}
		d.Rows = append(d.Rows, Row{Kind: KindObjectEnd, Path: path, Depth: depth, End: start})
		d.Rows[start].End = len(d.Rows) - 1
	case document.Array:
		start := len(d.Rows)
		d.startAt[path.String()] = start
		d.Rows = append(d.Rows, Row{Kind: KindArrayStart, Path: path, Key: key, HasKey: hasKey, Value: v, Depth: depth})
		for i, child := range t {
			d.flatten(child, path.child(Step{Index: i}), key, false, depth+1)
		}
		d.Rows = append(d.Rows, Row{Kind: KindArrayEnd, Path: path, Depth: depth, End: start})
		d.Rows[start].End = len(d.Rows) - 1
	default:
		d.Rows = append(d.Rows, Row{Kind: KindScalar, Path: path, Key: key, HasKey: hasKey, Value: v, Depth: depth})
	}
}

// StartRow returns the start row index for a container path.
func (d *Document) StartRow(path Path) (int, bool) {
	i, ok := d.startAt[path.String()]
	return i, ok
}

// RowText renders one row as display text, without indentation. Folded start
// rows collapse to an ellipsis form.
func RowText(r Row, folded bool) string {
	var sb strings.Builder
	if r.HasKey && !r.IsEnd() {
		sb.WriteString(document.ScalarText(r.Key))
		sb.WriteString(": ")
	}
	switch r.Kind {
	case KindObjectStart:
		if folded {
			sb.WriteString("{...}")
		} else {
			sb.WriteString("{")
		}
	case KindObjectEnd:
		sb.WriteString("}")
	case KindArrayStart:
		if folded {
			sb.WriteString("[...]")
		} else {
			sb.WriteString("[")
		}
	case KindArrayEnd:
		sb.WriteString("]")
	default:
		sb.WriteString(document.ScalarText(r.Value))
	}
	return sb.String()
}
