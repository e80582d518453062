package syntax

// InitAllInfo walks the arena's tree once and fills in every field a
// parser adapter does not set directly: parent pointers, sibling links,
// ancestor counts, the first-in-list flag, and content fingerprints
// (spec §4.1: "After construction, init_all_info walks both trees and
// fills in... This pass runs once and is the only writer of these
// fields; all subsequent passes observe them as read-only").
//
// Call this once per side, after the parser adapter has finished building
// the full tree and before any other pass (trim, search, ...) runs.
func InitAllInfo(a *Arena) {
	if a.root == nil {
		return
	}
	initNode(a.root, nil, -1, 0)
}

func initNode(n *Node, parent *Node, indexInParent int, depth int) {
	n.parent = parent
	n.parentIndex = indexInParent
	n.numAncestors = depth
	n.isFirstInList = indexInParent == 0

	if n.kind == KindAtom {
		n.fingerprint = fingerprintAtom(n.atomKind, n.text)
		return
	}

	var prev *Node
	for i, c := range n.children {
		initNode(c, n, i, depth+1)
		c.prevSibling = prev
		if prev != nil {
			prev.nextSibling = c
		}
		prev = c
	}
	n.fingerprint = fingerprintList(n.openDelim, n.closeDelim, n.children)
}
