// Package changemap implements the change map (spec §3 "Change map"): a
// mapping from node identity to its change kind, written by the trimmer
// and the graph search, then read (and selectively rewritten) by the
// slider pass, and finally read by the position projector.
package changemap

import "github.com/jzeimen/difftastic/internal/syntax"

// Kind is one of the four states spec §3 names for a node. The zero value
// is Unassigned: "Unassigned after search means the node was never
// visited; display treats unassigned as novel."
type Kind int

const (
	Unassigned Kind = iota
	Unchanged
	ReplacedComment
	Novel
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case ReplacedComment:
		return "ReplacedComment"
	case Novel:
		return "Novel"
	default:
		return "Unassigned"
	}
}

// Entry is one change-map record: a Kind plus, for Unchanged and
// ReplacedComment, the peer node on the other side.
type Entry struct {
	Kind Kind
	Peer *syntax.Node
}

// ChangeMap keys entries by node identity. We use the arena-owned *Node
// pointer directly as the map key: within one process, a pointer into an
// arena that is never freed mid-diff is already a 1:1 stand-in for the
// node's numeric ID, and using it directly sidesteps needing a
// side-qualified composite key (lhs and rhs IDs both start counting from
// zero, per spec §3, so bare IDs would collide across sides in a shared
// map).
type ChangeMap struct {
	entries map[*syntax.Node]Entry
}

// New creates an empty change map.
func New() *ChangeMap {
	return &ChangeMap{entries: make(map[*syntax.Node]Entry)}
}

// MarkUnchanged records a and b as matched peers (spec: "UnchangedNode...
// UnchangedDelimiter... writes entries into the change map linking the
// two corresponding node identities"). Safe to call more than once for
// the same pair (e.g. a parent list matched by delimiter, independently
// of its children).
func (c *ChangeMap) MarkUnchanged(a, b *syntax.Node) {
	c.entries[a] = Entry{Kind: Unchanged, Peer: b}
	c.entries[b] = Entry{Kind: Unchanged, Peer: a}
}

// MarkReplacedComment records a and b as a matched comment pair whose
// raw text differs (spec §4.3 ReplacedComment edge). The search pairs any
// two comment atoms this way, whether or not their normalized text agrees.
func (c *ChangeMap) MarkReplacedComment(a, b *syntax.Node) {
	c.entries[a] = Entry{Kind: ReplacedComment, Peer: b}
	c.entries[b] = Entry{Kind: ReplacedComment, Peer: a}
}

// MarkNovel records n as having no peer on the other side.
func (c *ChangeMap) MarkNovel(n *syntax.Node) {
	c.entries[n] = Entry{Kind: Novel}
}

// Lookup returns n's entry, or the zero Entry (Kind Unassigned) if n was
// never visited.
func (c *ChangeMap) Lookup(n *syntax.Node) Entry {
	return c.entries[n]
}

// Set overwrites n's entry outright. Used by the slider pass to rewrite
// boundary assignments (spec §4.4): "it swaps the boundary by rewriting
// the change map entries."
func (c *ChangeMap) Set(n *syntax.Node, e Entry) {
	c.entries[n] = e
}

// Delete removes any entry for n, returning it to Unassigned.
func (c *ChangeMap) Delete(n *syntax.Node) {
	delete(c.entries, n)
}
