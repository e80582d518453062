package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/jzeimen/difftastic/internal/syntax"
)

var jsonLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `-?\d+(\.\d+)?([eE][+-]?\d+)?`},
	{Name: "Keyword", Pattern: `true|false|null`},
	{Name: "Punct", Pattern: `[{}\[\],:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type jsonAdapter struct{}

func (jsonAdapter) Parse(arena *syntax.Arena, source string) *syntax.Node {
	toks := tokenize(jsonLexer, source)
	idx := 0
	var top []*syntax.Node
	for idx < len(toks) {
		if isJSONCloser(toks[idx].value) {
			top = append(top, arena.NewAtom(toks[idx].value, syntax.AtomNormal, posOf(toks[idx])))
			idx++
			continue
		}
		top = append(top, parseJSONForm(arena, toks, &idx))
	}
	root := arena.NewList("", "", syntax.Position{}, syntax.Position{}, top)
	arena.SetRoot(root)
	return root
}

func isJSONCloser(v string) bool { return v == "}" || v == "]" }

func parseJSONForm(arena *syntax.Arena, toks []token, idx *int) *syntax.Node {
	switch toks[*idx].value {
	case "{":
		return parseJSONList(arena, toks, idx, "{", "}")
	case "[":
		return parseJSONList(arena, toks, idx, "[", "]")
	default:
		tok := toks[*idx]
		*idx++
		return arena.NewAtom(tok.value, jsonAtomKind(tok), posOf(tok))
	}
}

func parseJSONList(arena *syntax.Arena, toks []token, idx *int, openWant, closeWant string) *syntax.Node {
	open := toks[*idx]
	*idx++

	var children []*syntax.Node
	for *idx < len(toks) {
		if toks[*idx].value == closeWant {
			close := toks[*idx]
			*idx++
			return arena.NewList(openWant, closeWant, posOf(open), posOf(close), children)
		}
		if isJSONCloser(toks[*idx].value) {
			// Mismatched closer: stop here without consuming it, leaving
			// this list unterminated. The caller's own loop will then
			// treat it as a stray closer (spec §6: partial trees, never
			// panics).
			return arena.NewList(openWant, "", posOf(open), posOf(open), children)
		}
		children = append(children, parseJSONForm(arena, toks, idx))
	}
	return arena.NewList(openWant, "", posOf(open), posOf(open), children)
}

func jsonAtomKind(t token) syntax.AtomKind {
	switch t.typeName {
	case "String":
		return syntax.AtomStringLike
	case "Keyword":
		return syntax.AtomKeyword
	default:
		return syntax.AtomNormal
	}
}
