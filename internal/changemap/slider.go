package changemap

import "github.com/jzeimen/difftastic/internal/syntax"

// Slide implements the slider correction pass (spec §4.4): greedy
// shortest-path search can assign an equivalent-cost alignment
// arbitrarily when several sibling nodes share a fingerprint (e.g. three
// identical `x()` calls on one side against two on the other -- which
// call is "the novel one" is ambiguous). Slide canonicalizes such ties by
// shifting the novel/unchanged boundary rightward, so that a single novel
// node among equal-fingerprint siblings ends up after them, keeping the
// matched copies contiguous. Runs of more than one novel node are not
// moved, and no novel node is moved toward the start of its list.
//
// Grounded on the teacher's internal/graph/condition.go, which rewrites a
// map in place by re-keying entries that satisfy a structural predicate;
// here the predicate is "this boundary swap doesn't change what content
// is present, only which copy is called matched".
func Slide(cm *ChangeMap, root *syntax.Node) {
	slideNode(cm, root)
}

func slideNode(cm *ChangeMap, n *syntax.Node) {
	if n == nil || !n.IsList() {
		return
	}
	slideSiblings(cm, n.Children())
	for _, c := range n.Children() {
		slideNode(cm, c)
	}
}

func slideSiblings(cm *ChangeMap, siblings []*syntax.Node) {
	i := 0
	for i < len(siblings) {
		if cm.Lookup(siblings[i]).Kind != Novel {
			i++
			continue
		}
		j := i
		for j < len(siblings) && cm.Lookup(siblings[j]).Kind == Novel {
			j++
		}
		slideRun(cm, siblings, i, j)
		i = j
	}
}

// slideRun canonicalizes the maximal novel run siblings[i:j]. Only
// single-element runs are slid (the case a genuinely ambiguous repeated
// sibling reduces to: one extra copy of an otherwise-matched node);
// longer uniformly-fingerprinted runs are left as found, since shifting
// a multi-node block by one position fragments it into two runs rather
// than sliding it as a unit, and resolving that correctly isn't needed
// for the scenarios this pass targets.
func slideRun(cm *ChangeMap, siblings []*syntax.Node, i, j int) {
	if j-i != 1 {
		return
	}
	pos := i

	// Prefer the trailing interpretation (spec: "trailing novel content
	// prefers to align with the end of its list"): push the ambiguous
	// novel node rightward past any Unchanged neighbor with an equal
	// fingerprint, so the novel copy ends up being the last of the
	// identical run rather than an arbitrary earlier one.
	for pos < len(siblings)-1 {
		after := siblings[pos+1]
		if cm.Lookup(after).Kind != Unchanged || after.Fingerprint() != siblings[pos].Fingerprint() {
			break
		}
		peer := cm.Lookup(after).Peer
		cm.MarkNovel(after)
		cm.Set(siblings[pos], Entry{Kind: Unchanged, Peer: peer})
		cm.Set(peer, Entry{Kind: Unchanged, Peer: siblings[pos]})
		pos++
	}
}
