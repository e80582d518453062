package lang

import (
	"testing"

	"github.com/jzeimen/difftastic/internal/syntax"
)

func parse(t *testing.T, l Language, source string) *syntax.Node {
	t.Helper()
	adapter, ok := Lookup(l)
	if !ok {
		t.Fatalf("no adapter registered for %q", l)
	}
	arena := syntax.NewArena()
	root := adapter.Parse(arena, source)
	syntax.InitAllInfo(arena)
	return root
}

func TestSexpSimpleAtom(t *testing.T) {
	root := parse(t, "Lisp", "foo")
	if len(root.Children()) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(root.Children()))
	}
	if root.Children()[0].Text() != "foo" {
		t.Errorf("expected atom %q, got %q", "foo", root.Children()[0].Text())
	}
}

func TestSexpNestedList(t *testing.T) {
	root := parse(t, "Lisp", "(a b)")
	if len(root.Children()) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(root.Children()))
	}
	list := root.Children()[0]
	if !list.IsList() || list.OpenDelim() != "(" || list.CloseDelim() != ")" {
		t.Fatalf("expected a (...) list, got %+v", list)
	}
	if len(list.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(list.Children()))
	}
	if list.Children()[0].Text() != "a" || list.Children()[1].Text() != "b" {
		t.Errorf("unexpected children: %q %q", list.Children()[0].Text(), list.Children()[1].Text())
	}
}

func TestJSONObject(t *testing.T) {
	root := parse(t, "JSON", `{"a": 1}`)
	obj := root.Children()[0]
	if obj.OpenDelim() != "{" || obj.CloseDelim() != "}" {
		t.Fatalf("expected object, got %+v", obj)
	}
	// key, colon, value
	if len(obj.Children()) != 3 {
		t.Fatalf("expected 3 children (key, colon, value), got %d", len(obj.Children()))
	}
}

func TestJSONMalformedDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("adapter panicked on malformed input: %v", r)
		}
	}()
	parse(t, "JSON", "{{{")
	parse(t, "JSON", "{{{{")
}

func TestBracedCComment(t *testing.T) {
	root := parse(t, "C", "// old comment\nfoo")
	if len(root.Children()) != 2 {
		t.Fatalf("expected comment + ident, got %d children", len(root.Children()))
	}
	if root.Children()[0].AtomKindOf() != syntax.AtomComment {
		t.Errorf("expected first child to be a comment atom")
	}
	if root.Children()[1].Text() != "foo" {
		t.Errorf("expected second child text %q, got %q", "foo", root.Children()[1].Text())
	}
}

func TestBracedRustKeyword(t *testing.T) {
	root := parse(t, "Rust", "fn f(){x()}")
	if root.Children()[0].AtomKindOf() != syntax.AtomKeyword {
		t.Errorf("expected 'fn' to be tagged as a keyword atom")
	}
}

func TestGuessByExtension(t *testing.T) {
	cases := []struct {
		path string
		want Language
	}{
		{"foo.lisp", "Lisp"},
		{"bar.json", "JSON"},
		{"baz.rs", "Rust"},
		{"qux.c", "C"},
		{"a.xml", "XML"},
	}
	for _, c := range cases {
		got, ok := Guess(NamedPath, c.path, "")
		if !ok || got != c.want {
			t.Errorf("Guess(%q) = (%q, %v), want (%q, true)", c.path, got, ok, c.want)
		}
	}
}

func TestGuessSniffsWhenNoExtension(t *testing.T) {
	got, ok := Guess(Stdin, "", "(a b)")
	if !ok || got != "Lisp" {
		t.Errorf("Guess sniff = (%q, %v), want (Lisp, true)", got, ok)
	}
}

func TestGuessUnknownReturnsFalse(t *testing.T) {
	if _, ok := Guess(Stdin, "", "plain text, no structure"); ok {
		t.Errorf("expected Guess to fail on ambiguous content")
	}
}
