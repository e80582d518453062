package difft

import "github.com/jzeimen/difftastic/internal/syntax"

// SpanTag classifies one position span the same way internal/position
// does for the AST path; the line differ's spans are always SpanNovel
// (spec §4.6: each changed line has no cross-side peer).
type SpanTag int

const (
	SpanNovel SpanTag = iota
	SpanMatched
)

// Span is one per-side position annotation (spec §3 "Position span"): a
// line/column range plus a tag, and (when Tag is SpanMatched) the
// identity of the matching node on the other side so a display layer can
// draw cross-side links.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
	Tag      SpanTag
	PeerID   syntax.ID
}

// FileContent is one side's reported content (spec §6): either decoded
// text, or raw bytes when BinaryInput applies.
type FileContent struct {
	Text     string
	Binary   []byte
	IsBinary bool
}

// DiffResult is the core's sole output (spec §6): "display paths (both
// sides); detected language (opaque tag) and its human name (or null);
// per-side content; per-side ordered position spans."
type DiffResult struct {
	LHSDisplayPath string
	RHSDisplayPath string

	// Language is the detected (or overridden) grammar tag, e.g. "Lisp",
	// or the "Text"/"Text (exceeded ...)" family when the line differ
	// ran. Empty for BinaryInput results, and for IdenticalInputs results
	// whose language could not be guessed (NoGrammar still sets the plain
	// "Text" tag).
	Language Language

	// LanguageName is the human-readable name, or "" to mean null (spec
	// §7 NoGrammar: "language name is null").
	LanguageName string

	LHSContent FileContent
	RHSContent FileContent

	LHSSpans []Span
	RHSSpans []Span

	// Reason is non-nil whenever the AST path was skipped or aborted;
	// nil means Language/LanguageName/Spans all came from a full
	// syntax-model diff.
	Reason *CoreError
}
