// Package trim implements the unchanged prefix/suffix trimmer (spec §4.2):
// "the trimmer finds the longest common prefix and suffix of the two
// root-level node lists by fingerprint equality, recursing into lists
// whose top-level fingerprints differ but whose own prefix/suffix match.
// The output is a list of (lhs_section, rhs_section) pairs -- the gaps
// between matched regions."
//
// Grounded on internal/inference/graph_traversals.go's memoized
// recursive-descent shape from the teacher repo: a two-pointer walk that
// peels matched work off both ends before handing the remainder to a
// more expensive algorithm (there, a probability search; here, the graph
// search in internal/search).
package trim

import (
	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// Gap is one leftover (lhs, rhs) sibling run the trimmer could not match,
// to be handed to the graph search.
type Gap struct {
	LHS []*syntax.Node
	RHS []*syntax.Node
}

// Trim peels the longest common prefix and suffix from lhs and rhs,
// writing Unchanged entries into cm for every matched node (and, for
// matched lists, every descendant pair beneath it), and returns the
// gaps -- the sibling runs still needing the graph search.
func Trim(lhs, rhs []*syntax.Node, cm *changemap.ChangeMap) []Gap {
	var gaps []Gap
	trimSiblings(lhs, rhs, cm, &gaps)
	return gaps
}

func trimSiblings(lhs, rhs []*syntax.Node, cm *changemap.ChangeMap, gaps *[]Gap) {
	li, ri := 0, 0
	le, re := len(lhs), len(rhs)

	for li < le && ri < re && syntax.Equal(lhs[li], rhs[ri]) {
		markSubtreeUnchanged(cm, lhs[li], rhs[ri])
		li++
		ri++
	}

	for le > li && re > ri && syntax.Equal(lhs[le-1], rhs[re-1]) {
		markSubtreeUnchanged(cm, lhs[le-1], rhs[re-1])
		le--
		re--
	}

	// Recurse into a boundary pair of same-delimiter lists whose overall
	// fingerprints differ (so the exact-match loop above stopped) but
	// whose delimiters agree -- spec's "recursing into lists... whose own
	// prefix/suffix match". This both shrinks the graph the search pass
	// has to walk and directly produces the right alignment for cases
	// like a single changed function body inside an otherwise identical
	// file.
	for li < le && ri < re {
		a, b := lhs[li], rhs[ri]
		if !sameDelimitedList(a, b) {
			break
		}
		cm.MarkUnchanged(a, b)
		trimSiblings(a.Children(), b.Children(), cm, gaps)
		li++
		ri++
	}
	for le > li && re > ri {
		a, b := lhs[le-1], rhs[re-1]
		if !sameDelimitedList(a, b) {
			break
		}
		cm.MarkUnchanged(a, b)
		trimSiblings(a.Children(), b.Children(), cm, gaps)
		le--
		re--
	}

	if li < le || ri < re {
		*gaps = append(*gaps, Gap{LHS: lhs[li:le], RHS: rhs[ri:re]})
	}
}

func sameDelimitedList(a, b *syntax.Node) bool {
	return a.IsList() && b.IsList() && a.OpenDelim() == b.OpenDelim() && a.CloseDelim() == b.CloseDelim()
}

// markSubtreeUnchanged marks a and b, and (since Equal guarantees
// identical shape) every corresponding descendant pair, as Unchanged
// peers.
func markSubtreeUnchanged(cm *changemap.ChangeMap, a, b *syntax.Node) {
	cm.MarkUnchanged(a, b)
	if !a.IsList() {
		return
	}
	ac, bc := a.Children(), b.Children()
	for i := range ac {
		markSubtreeUnchanged(cm, ac[i], bc[i])
	}
}
