// Package position implements the change-map -> position projection
// (spec §4.5): "a final traversal of each side's tree emits position
// spans in source order... if the change map says Unchanged(peer) or
// ReplacedComment(peer), emit spans tagged with the peer's identity...
// else emit spans tagged Novel. For lists, both the open and close
// delimiter positions are emitted."
package position

import (
	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// Tag classifies one emitted span.
type Tag int

const (
	TagNovel Tag = iota
	TagMatched
)

// Span is one projected position annotation.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
	Tag      Tag
	// PeerID is the other side's node identity when Tag is TagMatched,
	// letting display draw cross-side links (spec §4.5). Zero when Tag
	// is TagNovel.
	PeerID syntax.ID
}

// Project walks root in source order and emits one Span per delimiter or
// atom position, in ascending (line, start_column) order -- spec §8
// invariant 2.
func Project(cm *changemap.ChangeMap, root *syntax.Node) []Span {
	var spans []Span
	walk(cm, root, &spans)
	return spans
}

func walk(cm *changemap.ChangeMap, n *syntax.Node, out *[]Span) {
	if n == nil {
		return
	}
	if n.IsAtom() {
		*out = append(*out, spanFor(cm, n, n.Pos()))
		return
	}

	// A list's own entry may be Unassigned (never individually visited)
	// -- its non-empty delimiters still get emitted, tagged Novel in that
	// case, same as any other unassigned node (spec §3: "unassigned...
	// display treats unassigned as novel"). Empty delimiters, such as the
	// synthetic document-root wrapper's, emit no span.
	if n.OpenDelim() != "" {
		*out = append(*out, spanFor(cm, n, n.OpenPos()))
	}
	for _, c := range n.Children() {
		walk(cm, c, out)
	}
	if n.CloseDelim() != "" {
		*out = append(*out, spanFor(cm, n, n.ClosePos()))
	}
}

func spanFor(cm *changemap.ChangeMap, n *syntax.Node, pos syntax.Position) Span {
	entry := cm.Lookup(n)
	switch entry.Kind {
	case changemap.Unchanged, changemap.ReplacedComment:
		return Span{Line: pos.Line, StartCol: pos.StartCol, EndCol: pos.EndCol, Tag: TagMatched, PeerID: entry.Peer.ID()}
	default:
		return Span{Line: pos.Line, StartCol: pos.StartCol, EndCol: pos.EndCol, Tag: TagNovel}
	}
}
