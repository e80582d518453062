package position

import (
	"context"
	"testing"

	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/lang"
	"github.com/jzeimen/difftastic/internal/search"
	"github.com/jzeimen/difftastic/internal/syntax"
	"github.com/jzeimen/difftastic/internal/trim"
)

func diff(t *testing.T, language lang.Language, lhsSrc, rhsSrc string) (lhsRoot, rhsRoot *syntax.Node, cm *changemap.ChangeMap) {
	t.Helper()
	adapter, ok := lang.Lookup(language)
	if !ok {
		t.Fatalf("no adapter for %q", language)
	}
	lhsArena := syntax.NewArena()
	lhsRoot = adapter.Parse(lhsArena, lhsSrc)
	syntax.InitAllInfo(lhsArena)

	rhsArena := syntax.NewArena()
	rhsRoot = adapter.Parse(rhsArena, rhsSrc)
	syntax.InitAllInfo(rhsArena)

	cm = changemap.New()
	gaps := trim.Trim(lhsRoot.Children(), rhsRoot.Children(), cm)
	for _, g := range gaps {
		if err := search.Walk(context.Background(), g.LHS, g.RHS, cm, search.Config{}); err != nil {
			t.Fatalf("search.Walk failed: %v", err)
		}
	}
	changemap.Slide(cm, lhsRoot)
	changemap.Slide(cm, rhsRoot)
	return lhsRoot, rhsRoot, cm
}

func TestProjectIdenticalInputsEmptyNovel(t *testing.T) {
	lhsRoot, rhsRoot, cm := diff(t, "Lisp", "foo", "foo")
	for _, span := range Project(cm, lhsRoot) {
		if span.Tag != TagMatched {
			t.Errorf("expected all lhs spans matched for identical input, got %+v", span)
		}
	}
	for _, span := range Project(cm, rhsRoot) {
		if span.Tag != TagMatched {
			t.Errorf("expected all rhs spans matched for identical input, got %+v", span)
		}
	}
}

func TestProjectSingleAtomChange(t *testing.T) {
	lhsRoot, rhsRoot, cm := diff(t, "Lisp", "(a b)", "(a c)")
	lhsSpans := Project(cm, lhsRoot)
	rhsSpans := Project(cm, rhsRoot)

	var lhsNovel, rhsNovel int
	for _, s := range lhsSpans {
		if s.Tag == TagNovel {
			lhsNovel++
		}
	}
	for _, s := range rhsSpans {
		if s.Tag == TagNovel {
			rhsNovel++
		}
	}
	if lhsNovel != 1 {
		t.Errorf("expected exactly 1 novel span on lhs (b), got %d", lhsNovel)
	}
	if rhsNovel != 1 {
		t.Errorf("expected exactly 1 novel span on rhs (c), got %d", rhsNovel)
	}
}

func TestProjectSpansAreAscending(t *testing.T) {
	lhsRoot, _, cm := diff(t, "Lisp", "(a b c d)", "(a x c y)")
	spans := Project(cm, lhsRoot)
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.StartCol < prev.StartCol) {
			t.Errorf("spans out of order at %d: %+v then %+v", i, prev, cur)
		}
	}
}
