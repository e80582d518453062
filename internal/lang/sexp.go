package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// sexpLexer tokenizes Lisp-family source. Grounded on
// internal/dsl/grammar.go's dslLexer (ritamzico-pgraph teacher): one
// lexer.MustSimple rule table, longest-match order matters (Comment and
// String must be tried before the catch-all Atom rule).
var sexpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Atom", Pattern: `[^\s()]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type sexpAdapter struct{}

func (sexpAdapter) Parse(arena *syntax.Arena, source string) *syntax.Node {
	toks := tokenize(sexpLexer, source)
	idx := 0
	var top []*syntax.Node
	for idx < len(toks) {
		if toks[idx].value == ")" {
			// Stray close at top level: recover by treating it as a
			// plain atom instead of dropping it or aborting.
			top = append(top, arena.NewAtom(toks[idx].value, syntax.AtomNormal, posOf(toks[idx])))
			idx++
			continue
		}
		top = append(top, parseSexpForm(arena, toks, &idx))
	}
	root := arena.NewList("", "", syntax.Position{}, syntax.Position{}, top)
	arena.SetRoot(root)
	return root
}

func parseSexpForm(arena *syntax.Arena, toks []token, idx *int) *syntax.Node {
	if toks[*idx].value == "(" {
		return parseSexpList(arena, toks, idx)
	}
	tok := toks[*idx]
	*idx++
	return arena.NewAtom(tok.value, sexpAtomKind(tok), posOf(tok))
}

func parseSexpList(arena *syntax.Arena, toks []token, idx *int) *syntax.Node {
	open := toks[*idx]
	*idx++

	var children []*syntax.Node
	for *idx < len(toks) {
		if toks[*idx].value == ")" {
			close := toks[*idx]
			*idx++
			return arena.NewList("(", ")", posOf(open), posOf(close), children)
		}
		children = append(children, parseSexpForm(arena, toks, idx))
	}
	// Unterminated list: the source ran out before a matching ")".
	// Degrade to a partial tree rather than panicking (spec §6).
	return arena.NewList("(", "", posOf(open), posOf(open), children)
}

func sexpAtomKind(t token) syntax.AtomKind {
	switch t.typeName {
	case "Comment":
		return syntax.AtomComment
	case "String":
		return syntax.AtomStringLike
	default:
		return syntax.AtomNormal
	}
}

func posOf(t token) syntax.Position {
	end := t.col + len([]rune(t.value))
	return syntax.Position{Line: t.line, StartCol: t.col, EndCol: end}
}
