package lang

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// token is a resolved lexeme: its rule name (e.g. "Comment", "Punct"),
// its text, and its 1-based line/column. This is the common shape every
// delimiter-driven adapter (sexp, json, braced) builds its tree from;
// only the lexer.SimpleRule table differs per adapter, the same way
// internal/dsl/grammar.go's dslLexer is one rule table feeding one
// grammar (ritamzico-pgraph teacher).
type token struct {
	typeName string
	value    string
	line     int
	col      int
}

// tokenize runs a participle simple lexer over src and returns every
// token except ones named "Whitespace", in source order. It never
// returns an error for unmatched input: lexing stops at the first byte no
// rule matches, and the tokens read before it are returned, so callers
// build a partial tree instead of aborting (spec §6: "Errors in parsing
// yield partial trees, never exceptions."). Source after that byte is not
// tokenized.
func tokenize(def lexer.Definition, src string) []token {
	symbols := def.Symbols()
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		names[tt] = name
	}

	lx, err := def.Lex("", strings.NewReader(src))
	if err != nil {
		return nil
	}

	var out []token
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		name := names[tok.Type]
		if name == "Whitespace" {
			continue
		}
		out = append(out, token{
			typeName: name,
			value:    tok.Value,
			line:     tok.Pos.Line,
			col:      tok.Pos.Column,
		})
	}
	return out
}
