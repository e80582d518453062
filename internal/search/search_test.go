package search

import (
	"context"
	"testing"

	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/lang"
	"github.com/jzeimen/difftastic/internal/syntax"
)

func parseLisp(t *testing.T, src string) *syntax.Node {
	t.Helper()
	adapter, ok := lang.Lookup("Lisp")
	if !ok {
		t.Fatal("no Lisp adapter registered")
	}
	arena := syntax.NewArena()
	root := adapter.Parse(arena, src)
	syntax.InitAllInfo(arena)
	return root
}

func TestWalkMatchesIdenticalAtoms(t *testing.T) {
	lhs := parseLisp(t, "(a b)")
	rhs := parseLisp(t, "(a b)")
	cm := changemap.New()

	if err := Walk(context.Background(), lhs.Children(), rhs.Children(), cm, Config{}); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	entry := cm.Lookup(lhs.Children()[0])
	if entry.Kind != changemap.Unchanged {
		t.Errorf("expected Unchanged, got %v", entry.Kind)
	}
}

func TestWalkMarksNovelOnTotalMismatch(t *testing.T) {
	lhs := parseLisp(t, "a")
	rhs := parseLisp(t, "z")
	cm := changemap.New()

	if err := Walk(context.Background(), lhs.Children(), rhs.Children(), cm, Config{}); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	if cm.Lookup(lhs.Children()[0]).Kind != changemap.Novel {
		t.Errorf("expected lhs atom Novel")
	}
	if cm.Lookup(rhs.Children()[0]).Kind != changemap.Novel {
		t.Errorf("expected rhs atom Novel")
	}
}

func TestWalkReplacedComment(t *testing.T) {
	lhs := parseLisp(t, "; hello   world\na")
	rhs := parseLisp(t, "; hello world\na")
	cm := changemap.New()

	if err := Walk(context.Background(), lhs.Children(), rhs.Children(), cm, Config{}); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	entry := cm.Lookup(lhs.Children()[0])
	if entry.Kind != changemap.ReplacedComment {
		t.Errorf("expected ReplacedComment for reflowed comment, got %v", entry.Kind)
	}
}

// TestWalkReplacedCommentGenuinelyDifferentText pins spec §8 scenario 4:
// two comments whose normalized text also differs (not just whitespace
// reflow) still pair as ReplacedComment, the way the original difftastic
// matches any two comment atoms rather than only textually-equivalent
// ones.
func TestWalkReplacedCommentGenuinelyDifferentText(t *testing.T) {
	lhs := parseLisp(t, "; old comment\nfoo")
	rhs := parseLisp(t, "; new comment\nfoo")
	cm := changemap.New()

	if err := Walk(context.Background(), lhs.Children(), rhs.Children(), cm, Config{}); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	entry := cm.Lookup(lhs.Children()[0])
	if entry.Kind != changemap.ReplacedComment {
		t.Errorf("expected ReplacedComment for differing comment text, got %v", entry.Kind)
	}
	if cm.Lookup(rhs.Children()[0]).Kind != changemap.ReplacedComment {
		t.Errorf("expected rhs comment also marked ReplacedComment")
	}
	if cm.Lookup(lhs.Children()[1]).Kind != changemap.Unchanged {
		t.Errorf("expected foo unchanged")
	}
}

func TestWalkRespectsGraphLimit(t *testing.T) {
	lhs := parseLisp(t, "(a b c d e)")
	rhs := parseLisp(t, "(v w x y z)")
	cm := changemap.New()

	err := Walk(context.Background(), lhs.Children(), rhs.Children(), cm, Config{MaxVertices: 1})
	if err != ErrGraphLimitExceeded {
		t.Fatalf("expected ErrGraphLimitExceeded, got %v", err)
	}
}

func TestNovelAtomCostScalesWithLengthAndDiscountsStrings(t *testing.T) {
	arena := syntax.NewArena()
	short := arena.NewAtom("ab", syntax.AtomNormal, syntax.Position{})
	long := arena.NewAtom("abcdefghij", syntax.AtomNormal, syntax.Position{})
	str := arena.NewAtom("abcdefghij", syntax.AtomStringLike, syntax.Position{})

	if novelAtomCost(long) <= novelAtomCost(short) {
		t.Errorf("expected cost to grow with atom length: short=%d long=%d", novelAtomCost(short), novelAtomCost(long))
	}
	if novelAtomCost(str) >= novelAtomCost(long) {
		t.Errorf("expected string atom to be discounted relative to an equal-length normal atom: string=%d normal=%d", novelAtomCost(str), novelAtomCost(long))
	}
}

func TestWalkRespectsContextCancellation(t *testing.T) {
	lhs := parseLisp(t, "(a b c)")
	rhs := parseLisp(t, "(x y z)")
	cm := changemap.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, lhs.Children(), rhs.Children(), cm, Config{})
	if err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
