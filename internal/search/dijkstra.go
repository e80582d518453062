package search

import (
	"container/heap"
	"context"
	"errors"

	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// Edge costs (spec §4.3 "Edge kinds... each with a weighted cost"). Exact
// match is free; everything else is priced to prefer the smallest, most
// structurally-aligned diff, with delimiter-level matches cheaper than
// full novel spans so the walker favors descending into a changed list
// over discarding it wholesale.
const (
	costUnchangedNode      = 0
	costUnchangedDelimiter = 1
	costReplacedComment    = 3
	costNovelAtomPerByte   = 2
	costNovelDelimiter     = 10
)

// novelAtomCost prices a NovelAtomLHS/NovelAtomRHS edge (spec §4.3 rule 4:
// "Cost: proportional to atom length, with a discount if the atom is a
// string"). String atoms are discounted (spec §4.7: "edit cost is
// discounted to avoid penalising large string literal changes") so a
// large changed string literal doesn't outweigh matching the surrounding
// structure.
func novelAtomCost(n *syntax.Node) int64 {
	length := len(n.Text())
	if length == 0 {
		length = 1
	}
	cost := int64(length) * costNovelAtomPerByte
	if n.AtomKindOf() == syntax.AtomStringLike {
		cost /= 4
	}
	if cost < 1 {
		cost = 1
	}
	return cost
}

// ErrGraphLimitExceeded is returned when the walk visits more vertices
// than Config.MaxVertices allows (spec §4.3, §7 ExceededGraphLimit).
var ErrGraphLimitExceeded = errors.New("search: graph size limit exceeded")

// Config bounds one Walk call.
type Config struct {
	// MaxVertices caps the number of distinct vertices settled before
	// giving up. Zero means unbounded.
	MaxVertices int
}

type vertex struct {
	l, r Cursor
}

type settled struct {
	dist int64
	prev string
	v    vertex
	// how the predecessor edge reached this vertex, for change-map
	// writing during reconstruction.
	action func(cm *changemap.ChangeMap)
}

// Walk runs Dijkstra's algorithm over the vertex/edge graph for one gap's
// (lhs, rhs) sibling runs, writing every matched pair's change-map entry
// along the shortest path found. Grounded on the teacher's
// max_probability_path.go (a weighted shortest-path walk over a
// PriorityQueue of PQItem) generalized from single-sided probability
// weights to this package's two-sided alignment costs.
func Walk(ctx context.Context, lhs, rhs []*syntax.Node, cm *changemap.ChangeMap, cfg Config) error {
	start := vertex{l: NewCursor(lhs), r: NewCursor(rhs)}
	startKey := start.l.Key() + "#" + start.r.Key()

	dist := map[string]*settled{startKey: {dist: 0, v: start}}
	pq := &priorityQueue{}
	heap.Init(pq)
	var seq int64
	heap.Push(pq, &pqItem{key: startKey, priority: 0, seq: seq})
	seq++

	visited := map[string]bool{}
	var goalKey string
	vertexCount := 0

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(pq).(*pqItem)
		if visited[item.key] {
			continue
		}
		visited[item.key] = true
		vertexCount++
		if cfg.MaxVertices > 0 && vertexCount > cfg.MaxVertices {
			return ErrGraphLimitExceeded
		}

		cur := dist[item.key].v
		if cur.l.Finished() && cur.r.Finished() {
			goalKey = item.key
			break
		}

		for _, e := range edgesFrom(cur) {
			nextKey := e.next.l.Key() + "#" + e.next.r.Key()
			nd := dist[item.key].dist + e.cost
			prevEntry, ok := dist[nextKey]
			if !ok || nd < prevEntry.dist {
				dist[nextKey] = &settled{dist: nd, prev: item.key, v: e.next, action: e.action}
				heap.Push(pq, &pqItem{key: nextKey, priority: nd, seq: seq})
				seq++
			}
		}
	}

	if goalKey == "" {
		// Every reachable vertex was settled without finding a finished
		// state: nothing to walk (both sides empty), or the graph was
		// exhausted, which for a non-empty gap indicates a bug in edge
		// generation rather than a legitimate "no path" outcome.
		return nil
	}

	// Reconstruct the path from goal back to start, applying each edge's
	// change-map action in forward order.
	var actions []func(cm *changemap.ChangeMap)
	for k := goalKey; k != startKey; {
		e := dist[k]
		if e.action != nil {
			actions = append(actions, e.action)
		}
		k = e.prev
	}
	for i := len(actions) - 1; i >= 0; i-- {
		actions[i](cm)
	}
	return nil
}

type edge struct {
	next   vertex
	cost   int64
	action func(cm *changemap.ChangeMap)
}

func edgesFrom(v vertex) []edge {
	var edges []edge

	lNode, lCur := v.l.Current()
	rNode, rCur := v.r.Current()

	if lNode != nil && rNode != nil {
		if syntax.Equal(lNode, rNode) {
			ln, rn := lNode, rNode
			edges = append(edges, edge{
				next: vertex{l: lCur.Advance(), r: rCur.Advance()},
				cost: costUnchangedNode,
				action: func(cm *changemap.ChangeMap) {
					markSubtreeUnchanged(cm, ln, rn)
				},
			})
		} else if lNode.IsList() && rNode.IsList() && lNode.OpenDelim() == rNode.OpenDelim() && lNode.CloseDelim() == rNode.CloseDelim() {
			ln, rn := lNode, rNode
			edges = append(edges, edge{
				next: vertex{l: lCur.Enter(lNode), r: rCur.Enter(rNode)},
				cost: costUnchangedDelimiter,
				action: func(cm *changemap.ChangeMap) {
					cm.MarkUnchanged(ln, rn)
				},
			})
		} else if lNode.IsAtom() && rNode.IsAtom() && lNode.AtomKindOf() == syntax.AtomComment && rNode.AtomKindOf() == syntax.AtomComment &&
			lNode.Text() != rNode.Text() {
			ln, rn := lNode, rNode
			edges = append(edges, edge{
				next: vertex{l: lCur.Advance(), r: rCur.Advance()},
				cost: costReplacedComment,
				action: func(cm *changemap.ChangeMap) {
					cm.MarkReplacedComment(ln, rn)
				},
			})
		}
	}

	if lNode != nil {
		ln := lNode
		if ln.IsList() {
			edges = append(edges, edge{
				next:   vertex{l: lCur.Enter(ln), r: rCur},
				cost:   costNovelDelimiter,
				action: func(cm *changemap.ChangeMap) { cm.MarkNovel(ln) },
			})
		} else {
			edges = append(edges, edge{
				next:   vertex{l: lCur.Advance(), r: rCur},
				cost:   novelAtomCost(ln),
				action: func(cm *changemap.ChangeMap) { cm.MarkNovel(ln) },
			})
		}
	}

	if rNode != nil {
		rn := rNode
		if rn.IsList() {
			edges = append(edges, edge{
				next:   vertex{l: lCur, r: rCur.Enter(rn)},
				cost:   costNovelDelimiter,
				action: func(cm *changemap.ChangeMap) { cm.MarkNovel(rn) },
			})
		} else {
			edges = append(edges, edge{
				next:   vertex{l: lCur, r: rCur.Advance()},
				cost:   novelAtomCost(rn),
				action: func(cm *changemap.ChangeMap) { cm.MarkNovel(rn) },
			})
		}
	}

	return edges
}

// markSubtreeUnchanged mirrors internal/trim's helper of the same name:
// Equal guarantees identical shape, so every descendant pair is marked
// too.
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
