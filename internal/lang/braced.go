package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// bracedLexer tokenizes any curly/paren/bracket-delimited language at the
// level this system actually needs: comments, strings, char literals,
// identifiers/keywords, numbers, the three bracket families, and
// everything else (operators, `;`, `,`, `::`, ...) folded into a single
// "Op" bucket. It is deliberately not a real C or Rust grammar -- spec §1
// treats full grammars as an opaque external collaborator (tree-sitter
// bindings) -- but a real, working delimiter-matching tokenizer grounded
// the same way internal/dsl/grammar.go's dslLexer is: one ordered
// lexer.MustSimple rule table.
var bracedLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "BlockComment", Pattern: `(?s)/\*.*?\*/`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Char", Pattern: `'([^'\\]|\\.)*'`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Punct", Pattern: `[{}()\[\]]`},
	{Name: "Op", Pattern: `[^\sA-Za-z0-9_{}()\[\]"']+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var cKeywords = set(
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
)

var rustKeywords = set(
	"as", "break", "const", "continue", "crate", "dyn", "else", "enum",
	"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop",
	"match", "mod", "move", "mut", "pub", "ref", "return", "self", "Self",
	"static", "struct", "super", "trait", "true", "type", "unsafe", "use",
	"where", "while",
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var bracketPairs = map[string]string{"{": "}", "(": ")", "[": "]"}

func isOpener(v string) bool { _, ok := bracketPairs[v]; return ok }
func isCloser(v string) bool {
	for _, c := range bracketPairs {
		if v == c {
			return true
		}
	}
	return false
}

type brace struct {
	keywords map[string]struct{}
}

func newBraced(keywords map[string]struct{}) Adapter {
	return brace{keywords: keywords}
}

func (b brace) Parse(arena *syntax.Arena, source string) *syntax.Node {
	toks := tokenize(bracedLexer, source)
	idx := 0
	var top []*syntax.Node
	for idx < len(toks) {
		if isCloser(toks[idx].value) {
			top = append(top, arena.NewAtom(toks[idx].value, syntax.AtomNormal, posOf(toks[idx])))
			idx++
			continue
		}
		top = append(top, b.parseForm(arena, toks, &idx))
	}
	root := arena.NewList("", "", syntax.Position{}, syntax.Position{}, top)
	arena.SetRoot(root)
	return root
}

func (b brace) parseForm(arena *syntax.Arena, toks []token, idx *int) *syntax.Node {
	v := toks[*idx].value
	if isOpener(v) {
		return b.parseList(arena, toks, idx, v, bracketPairs[v])
	}
	tok := toks[*idx]
	*idx++
	return arena.NewAtom(tok.value, b.atomKind(tok), posOf(tok))
}

func (b brace) parseList(arena *syntax.Arena, toks []token, idx *int, openWant, closeWant string) *syntax.Node {
	open := toks[*idx]
	*idx++

	var children []*syntax.Node
	for *idx < len(toks) {
		if toks[*idx].value == closeWant {
			close := toks[*idx]
			*idx++
			return arena.NewList(openWant, closeWant, posOf(open), posOf(close), children)
		}
		if isCloser(toks[*idx].value) {
			// Mismatched closer (e.g. recovering from `{{{` vs `{{{{`):
			// stop without consuming it, leaving this list unterminated.
			return arena.NewList(openWant, "", posOf(open), posOf(open), children)
		}
		children = append(children, b.parseForm(arena, toks, idx))
	}
	return arena.NewList(openWant, "", posOf(open), posOf(open), children)
}

func (b brace) atomKind(t token) syntax.AtomKind {
	switch t.typeName {
	case "LineComment", "BlockComment":
		return syntax.AtomComment
	case "String", "Char":
		return syntax.AtomStringLike
	case "Ident":
		if _, ok := b.keywords[t.value]; ok {
			return syntax.AtomKeyword
		}
		return syntax.AtomNormal
	default:
		return syntax.AtomNormal
	}
}
