// Package fix applies structural edits to a segment tree.
//
// An edit targets a segment by identity, never by position, so edits
// produced against one snapshot of a tree can be applied in sequence as long
// as their targets survive. Fixes whose target has gone, either because it
// was never in the tree or because an earlier fix in the same batch replaced
// or deleted it, are skipped and reported rather than applied.
package fix

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/leaplint/pkg/segment"
	"github.com/leapstack-labs/leaplint/pkg/token"
)

// Op is an edit operation.
type Op int

// Edit operations.
const (
	OpInsertBefore Op = iota
	OpInsertAfter
	OpReplace
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsertBefore:
		return "insert_before"
	case OpInsertAfter:
		return "insert_after"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Fix is one edit against a target segment.
type Fix struct {
	Op      Op
	Target  *segment.Segment
	Payload []*segment.Segment
}

// InsertBefore returns a fix inserting payload immediately before target.
func InsertBefore(target *segment.Segment, payload ...*segment.Segment) Fix {
	return Fix{Op: OpInsertBefore, Target: target, Payload: payload}
}

// InsertAfter returns a fix inserting payload immediately after target.
func InsertAfter(target *segment.Segment, payload ...*segment.Segment) Fix {
	return Fix{Op: OpInsertAfter, Target: target, Payload: payload}
}

// Replace returns a fix swapping target for payload.
func Replace(target *segment.Segment, payload ...*segment.Segment) Fix {
	return Fix{Op: OpReplace, Target: target, Payload: payload}
}

// Delete returns a fix removing target.
func Delete(target *segment.Segment) Fix {
	return Fix{Op: OpDelete, Target: target}
}

// NewText is the source text the fix puts in place.
func (f Fix) NewText() string {
	var b strings.Builder
	for _, p := range f.Payload {
		b.WriteString(p.RawText())
	}
	return b.String()
}

func (f Fix) String() string {
	if f.Target == nil {
		return f.Op.String() + " <nil>"
	}
	return fmt.Sprintf("%s %s@%s %q", f.Op, f.Target.Type, f.Target.Start(), f.NewText())
}

// Skipped records a fix that was not applied.
type Skipped struct {
	Fix    Fix
	Reason string
}

// Result reports what Apply did.
type Result struct {
	Applied []Fix
	Skipped []Skipped
}

// Skip reasons.
const (
	ReasonNilTarget = "fix has no target"
	ReasonNotFound  = "target segment not in tree"
	ReasonRemoved   = "target segment removed by an earlier fix"
	ReasonRoot      = "cannot edit around the root segment"
)

// Apply applies fixes to root in order and recomputes positions.
func Apply(root *segment.Segment, fixes []Fix) Result {
	var res Result
	if len(fixes) == 0 {
		return res
	}

	parents := indexParents(root)
	removed := make(map[uuid.UUID]bool)

	for _, f := range fixes {
		if reason := check(f, root, parents, removed); reason != "" {
			res.Skipped = append(res.Skipped, Skipped{Fix: f, Reason: reason})
			continue
		}

		parent := parents[f.Target.ID]
		idx := childIndex(parent, f.Target)
		if idx < 0 {
			res.Skipped = append(res.Skipped, Skipped{Fix: f, Reason: ReasonNotFound})
			continue
		}

		switch f.Op {
		case OpInsertBefore:
			parent.Children = splice(parent.Children, idx, 0, f.Payload)
		case OpInsertAfter:
			parent.Children = splice(parent.Children, idx+1, 0, f.Payload)
		case OpReplace:
			parent.Children = splice(parent.Children, idx, 1, f.Payload)
			markRemoved(removed, f.Target)
		case OpDelete:
			parent.Children = splice(parent.Children, idx, 1, nil)
			markRemoved(removed, f.Target)
		}
		for _, p := range f.Payload {
			indexInto(parents, p, parent)
		}
		res.Applied = append(res.Applied, f)
	}

	if len(res.Applied) > 0 {
		root.RecalculatePositions(token.Start)
	}
	return res
}

func check(f Fix, root *segment.Segment, parents map[uuid.UUID]*segment.Segment, removed map[uuid.UUID]bool) string {
	switch {
	case f.Target == nil:
		return ReasonNilTarget
	case removed[f.Target.ID]:
		return ReasonRemoved
	case f.Target.ID == root.ID:
		return ReasonRoot
	}
	if _, ok := parents[f.Target.ID]; !ok {
		return ReasonNotFound
	}
	return ""
}

// indexParents maps every non-root segment ID to its parent.
func indexParents(root *segment.Segment) map[uuid.UUID]*segment.Segment {
	parents := make(map[uuid.UUID]*segment.Segment)
	root.Walk(func(seg *segment.Segment, ancestors []*segment.Segment) bool {
		if len(ancestors) > 0 {
			parents[seg.ID] = ancestors[len(ancestors)-1]
		}
		return true
	})
	return parents
}

func indexInto(parents map[uuid.UUID]*segment.Segment, seg, parent *segment.Segment) {
	parents[seg.ID] = parent
	for _, c := range seg.Children {
		indexInto(parents, c, seg)
	}
}

func markRemoved(removed map[uuid.UUID]bool, seg *segment.Segment) {
	removed[seg.ID] = true
	for _, c := range seg.Children {
		markRemoved(removed, c)
	}
}

func childIndex(parent, target *segment.Segment) int {
	for i, c := range parent.Children {
		if c.ID == target.ID {
			return i
		}
	}
	return -1
}

// splice replaces n children at idx with insert and returns the new slice.
func splice(children []*segment.Segment, idx, n int, insert []*segment.Segment) []*segment.Segment {
	out := make([]*segment.Segment, 0, len(children)-n+len(insert))
	out = append(out, children[:idx]...)
	out = append(out, insert...)
	out = append(out, children[idx+n:]...)
	return out
}
