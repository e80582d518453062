// Package lang implements the parser adapter contract (spec §6) and the
// language guesser. An Adapter converts source bytes into the uniform
// syntax.Node tree; the guesser maps a display path and source snippet to
// a Language tag, purely (no I/O beyond inspecting the inputs it's given).
package lang

import (
	"path/filepath"
	"strings"

	"github.com/jzeimen/difftastic/internal/syntax"
)

// Language is an opaque tag naming a grammar, e.g. "Lisp", "JSON", "Rust".
type Language string

// PathKind mirrors spec §6's path_kind: used only for language guessing,
// never for I/O.
type PathKind int

const (
	NamedPath PathKind = iota
	Stdin
	DevNull
)

// Adapter parses source text into a root syntax.Node (a list with empty
// delimiters, wrapping the document's top-level forms) inside the given
// arena. It must be deterministic and must never panic on malformed
// input -- it degrades to a partial tree instead (spec §6).
type Adapter interface {
	Parse(arena *syntax.Arena, source string) *syntax.Node
}

var registry = map[Language]Adapter{
	"Lisp": sexpAdapter{},
	"JSON": jsonAdapter{},
	"C":    newBraced(cKeywords),
	"Rust": newBraced(rustKeywords),
	"XML":  xmlAdapter{},
}

// Lookup returns the adapter registered for lang, if any.
func Lookup(l Language) (Adapter, bool) {
	a, ok := registry[l]
	return a, ok
}

var extByLanguage = map[string]Language{
	".lisp": "Lisp",
	".lsp":  "Lisp",
	".scm":  "Lisp",
	".el":   "Lisp",
	".json": "JSON",
	".c":    "C",
	".h":    "C",
	".cc":   "C",
	".cpp":  "C",
	".hpp":  "C",
	".rs":   "Rust",
	".xml":  "XML",
	".html": "XML",
	".svg":  "XML",
}

// Guess maps a display path plus a source sample to a Language. It is a
// pure function (spec §6: "Pure function; never performs I/O beyond
// inspecting the inputs"). kind == Stdin or DevNull carries no extension
// information, so Guess falls through to sniffing the source's first
// non-space byte.
func Guess(kind PathKind, path string, source string) (Language, bool) {
	if kind == NamedPath {
		ext := strings.ToLower(filepath.Ext(path))
		if l, ok := extByLanguage[ext]; ok {
			return l, true
		}
	}
	return sniff(source)
}

// sniff makes a best-effort guess from content alone, used when no
// extension is available (stdin, /dev/null, or an unrecognized
// extension). It is deliberately conservative: ambiguous input returns
// ("", false) rather than guessing wrong.
func sniff(source string) (Language, bool) {
	trimmed := strings.TrimLeft(source, " \t\r\n")
	if trimmed == "" {
		return "", false
	}
	switch trimmed[0] {
	case '(':
		return "Lisp", true
	case '{', '[':
		return "JSON", true
	case '<':
		return "XML", true
	}
	return "", false
}
