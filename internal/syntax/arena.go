package syntax

// Arena owns every node built for one side of one file diff (spec §5
// "Memory": "Each side's arena lives for the duration of one file diff and
// is discarded together"). Nodes are never freed individually; the whole
// arena is dropped when the diff finishes.
type Arena struct {
	nodes []*Node
	root  *Node
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) nextID() ID {
	return ID(len(a.nodes))
}

func (a *Arena) own(n *Node) *Node {
	a.nodes = append(a.nodes, n)
	return n
}

// NewList allocates a list node with the given delimiters, positions, and
// already-constructed children. Children must belong to this arena.
func (a *Arena) NewList(openDelim, closeDelim string, openPos, closePos Position, children []*Node) *Node {
	n := &Node{
		id:         a.nextID(),
		kind:       KindList,
		openDelim:  openDelim,
		closeDelim: closeDelim,
		openPos:    openPos,
		closePos:   closePos,
		children:   children,
	}
	return a.own(n)
}

// NewAtom allocates an atom node.
func (a *Arena) NewAtom(text string, kind AtomKind, pos Position) *Node {
	n := &Node{
		id:       a.nextID(),
		kind:     KindAtom,
		text:     text,
		atomKind: kind,
		pos:      pos,
	}
	return a.own(n)
}

// SetRoot records the document root. Parser adapters call this once after
// building the full tree, then the caller runs InitAllInfo.
func (a *Arena) SetRoot(root *Node) { a.root = root }

// Root returns the document root set by SetRoot, or nil.
func (a *Arena) Root() *Node { return a.root }

// Len returns the number of nodes allocated in this arena.
func (a *Arena) Len() int { return len(a.nodes) }

// Nodes returns every node owned by this arena, in allocation order.
func (a *Arena) Nodes() []*Node { return a.nodes }
