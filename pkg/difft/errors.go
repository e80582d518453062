package difft

// CoreErrorKind is the small, non-panicking error taxonomy spec §7
// defines. Expressed as a Kind string on a single CoreError type, the way
// the teacher's graph.GraphError / query.QueryError / dsl.SyntaxError
// each carry a Kind callers switch on, rather than as distinct Go error
// types.
type CoreErrorKind string

const (
	// BinaryInput: either side looks non-text (a NUL byte within its
	// first ~1024 bytes). No further processing; content is reported as
	// binary.
	BinaryInput CoreErrorKind = "BinaryInput"

	// ExceededByteLimit: either side is larger than Config.ByteLimit.
	// Falls back to the line differ.
	ExceededByteLimit CoreErrorKind = "ExceededByteLimit"

	// ExceededGraphLimit: the Dijkstra search visited more vertices than
	// Config.GraphLimit allows. Falls back to the line differ.
	ExceededGraphLimit CoreErrorKind = "ExceededGraphLimit"

	// NoGrammar: the language guesser returned nothing (and no
	// LanguageOverride was given), or the chosen language has no
	// registered adapter. Falls back to the line differ; the
	// result's LanguageName is left empty (spec §7: "language name is
	// null").
	NoGrammar CoreErrorKind = "NoGrammar"

	// IdenticalInputs: lhs and rhs bytes are byte-identical. Short-circuits
	// before any parsing or search; both span lists are empty.
	IdenticalInputs CoreErrorKind = "IdenticalInputs"
)

// CoreError is never returned as a Go error from DiffFileContent -- spec
// §6's signature returns a DiffResult outright, never an error, and §7
// says "there is no panic path exposed to callers" -- it is instead
// carried on DiffResult.Reason so callers can inspect why the AST path
// was skipped without string-matching the language tag.
type CoreError struct {
	Kind    CoreErrorKind
	Message string
}

func (e *CoreError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}
