// Package difft is the public API surface of the syntactic diff engine
// (spec §6): DiffFileContent wires the syntax model, trimmer, graph
// search, slider, and position projector into the forward pipeline
// spec.md §2 describes, falling back to a line differ per spec §4.6/§7.
//
// Grounded on pgraph.go (ritamzico-pgraph teacher): a single entry-point
// struct (PGraph -> Engine) with New/Load-style constructors and type
// aliases re-exporting internal result types for callers.
package difft

import "github.com/jzeimen/difftastic/internal/lang"

// Config bounds and configures one DiffFileContent call (spec §6
// defaults: tab width 8, graph limit 3,000,000, byte limit 1,000,000).
// Carried as a plain struct passed by value, the same shape the teacher's
// query.ReachabilityProbabilityQuery uses for its own Mode/Seed fields
// rather than reading global state.
type Config struct {
	// TabWidth is the number of spaces each tab character expands to
	// before parsing (spec §4.8). A known imperfection carried forward
	// unchanged: tab-sensitive grammars will misparse.
	TabWidth int

	// GraphLimit caps the number of vertices the Dijkstra search visits
	// before aborting with ExceededGraphLimit (spec §4.3, §7).
	GraphLimit int

	// ByteLimit is the largest side size, in bytes, still fed to the AST
	// path. Either side exceeding it triggers ExceededByteLimit (spec
	// §7).
	ByteLimit int

	// LanguageOverride forces a grammar, bypassing the guesser, when
	// non-empty (supplemented from original_source/: the original CLI's
	// --language / DFT_LANGUAGE override, see SPEC_FULL.md).
	LanguageOverride lang.Language
}

// DefaultConfig returns spec §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		TabWidth:   8,
		GraphLimit: 3_000_000,
		ByteLimit:  1_000_000,
	}
}

// PathKind mirrors spec §6's path_kind, re-exported so callers never need
// to import internal/lang directly.
type PathKind = lang.PathKind

const (
	NamedPath = lang.NamedPath
	Stdin     = lang.Stdin
	DevNull   = lang.DevNull
)

// Language is an opaque grammar tag, re-exported from internal/lang.
type Language = lang.Language
