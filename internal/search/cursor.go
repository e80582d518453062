// Package search implements the vertex/edge graph model and the Dijkstra
// walk over it (spec §3 Vertex/Edge, §4.3). A vertex is a pair of cursors,
// one per side, each a stack of (sibling list, index) frames -- entering a
// list pushes a frame remembering where to resume in the parent list;
// exhausting a frame pops back to its parent. This mirrors the teacher's
// own stack-based DFS over parent slices in graph_traversals.go, applied
// to two cursors advancing independently instead of one.
package search

import (
	"fmt"
	"strings"

	"github.com/jzeimen/difftastic/internal/syntax"
)

// Cursor is one side's position within a Gap: a current sibling list, an
// index into it, and a link back to the frame to resume once this list is
// exhausted.
type Cursor struct {
	nodes  []*syntax.Node
	idx    int
	parent *Cursor
}

// NewCursor creates the outermost cursor over a gap's top-level siblings.
func NewCursor(nodes []*syntax.Node) Cursor {
	return Cursor{nodes: nodes}
}

// Done reports whether this cursor has consumed every sibling at its
// current level (it may still have parent frames to pop to).
func (c Cursor) Done() bool { return c.idx >= len(c.nodes) }

// AtTop reports whether this cursor has no parent frame left, i.e. it is
// positioned at the gap's outermost level.
func (c Cursor) AtTop() bool { return c.parent == nil }

// Finished reports whether the cursor has nothing left to consume at any
// level: done at the top frame.
func (c Cursor) Finished() bool {
	cur := c
	for {
		if !cur.Done() {
			return false
		}
		if cur.parent == nil {
			return true
		}
		cur = *cur.parent
	}
}

// Current returns the node under the cursor, popping exhausted frames
// first (an "ExitDelimiter" transition, spec §3 Edge kinds -- folded here
// into cursor normalization rather than costed as a separate search
// decision).
func (c Cursor) Current() (*syntax.Node, Cursor) {
	cur := c
	for cur.Done() && cur.parent != nil {
		cur = *cur.parent
	}
	if cur.Done() {
		return nil, cur
	}
	return cur.nodes[cur.idx], cur
}

// Advance consumes the current node (assumed not Done) and returns the
// cursor positioned just past it.
func (c Cursor) Advance() Cursor {
	return Cursor{nodes: c.nodes, idx: c.idx + 1, parent: c.parent}
}

// Enter descends into the current node's children (assumed to be a
// List), pushing a frame that resumes just past this node once the
// children are exhausted.
func (c Cursor) Enter(n *syntax.Node) Cursor {
	resume := c.Advance()
	return Cursor{nodes: n.Children(), idx: 0, parent: &resume}
}

// Key returns a string uniquely identifying this cursor's logical
// position, used for Dijkstra's visited/distance maps. Built from the
// address of each frame's first node plus its index, which is stable
// across separate Cursor values that represent the same position (every
// entry into the same node's Children() yields the same nodes).
func (c Cursor) Key() string {
	var sb strings.Builder
	c.writeKey(&sb)
	return sb.String()
}

func (c Cursor) writeKey(sb *strings.Builder) {
	if c.parent != nil {
		c.parent.writeKey(sb)
	}
	var first *syntax.Node
	if len(c.nodes) > 0 {
		first = c.nodes[0]
	}
	fmt.Fprintf(sb, "%p:%d|", first, c.idx)
}
