package difft

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jzeimen/difftastic/internal/changemap"
	"github.com/jzeimen/difftastic/internal/lang"
	"github.com/jzeimen/difftastic/internal/linediff"
	"github.com/jzeimen/difftastic/internal/position"
	"github.com/jzeimen/difftastic/internal/search"
	"github.com/jzeimen/difftastic/internal/syntax"
	"github.com/jzeimen/difftastic/internal/trim"
)

// keepUnchangedEnv is spec §6's diagnostic escape hatch: "disables the
// unchanged trimmer so that the full file is fed to the search".
const keepUnchangedEnv = "DFT_DBG_KEEP_UNCHANGED"

// binarySniffWindow is how many leading bytes are inspected for a NUL
// byte when deciding BinaryInput (spec §7).
const binarySniffWindow = 1024

// Engine is the single entry point into the diff pipeline, mirroring the
// teacher's PGraph: a small struct holding configuration, with one method
// that does the real work. Stateless beyond Config -- safe to share
// across goroutines (spec §5: "across files... a worker pool may process
// many files in parallel").
type Engine struct {
	cfg Config
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Execute runs one file diff. It never returns a Go error; every failure
// mode in spec §7's taxonomy is reported through DiffResult.Reason
// instead (spec §7: "There is no panic path exposed to callers").
func (e *Engine) Execute(ctx context.Context, lhsDisplayPath, rhsDisplayPath string, lhsKind, rhsKind PathKind, lhsBytes, rhsBytes []byte) DiffResult {
	return DiffFileContent(ctx, lhsDisplayPath, rhsDisplayPath, lhsKind, rhsKind, lhsBytes, rhsBytes, e.cfg)
}

// DiffFileContent implements spec §6's core function signature. Data
// flows strictly forward (spec §2): binary/identical short-circuits,
// then language guess, then byte-limit check, then parse -> trim ->
// search -> slide -> project, falling back to internal/linediff whenever
// a step along that chain can't proceed.
func DiffFileContent(ctx context.Context, lhsDisplayPath, rhsDisplayPath string, lhsKind, rhsKind PathKind, lhsBytes, rhsBytes []byte, cfg Config) DiffResult {
	base := DiffResult{LHSDisplayPath: lhsDisplayPath, RHSDisplayPath: rhsDisplayPath}

	// IdenticalInputs (spec §7): short-circuit before any work.
	if bytes.Equal(lhsBytes, rhsBytes) {
		r := base
		r.Reason = &CoreError{Kind: IdenticalInputs, Message: "lhs and rhs are byte-identical"}
		if l, ok := guessLanguage(cfg, lhsDisplayPath, rhsDisplayPath, lhsKind, rhsKind, lhsBytes, rhsBytes); ok {
			r.Language = l
			r.LanguageName = string(l)
		}
		r.LHSContent = contentOf(lhsBytes)
		r.RHSContent = contentOf(rhsBytes)
		return r
	}

	// BinaryInput (spec §7).
	if isBinary(lhsBytes) || isBinary(rhsBytes) {
		r := base
		r.Reason = &CoreError{Kind: BinaryInput, Message: "non-text input"}
		r.LHSContent = FileContent{Binary: lhsBytes, IsBinary: true}
		r.RHSContent = FileContent{Binary: rhsBytes, IsBinary: true}
		return r
	}

	language, ok := guessLanguage(cfg, lhsDisplayPath, rhsDisplayPath, lhsKind, rhsKind, lhsBytes, rhsBytes)
	if !ok {
		return fallback(base, lhsBytes, rhsBytes, linediff.ReasonNone, "", CoreError{Kind: NoGrammar, Message: "no grammar guessed"})
	}

	if len(lhsBytes) > cfg.ByteLimit || len(rhsBytes) > cfg.ByteLimit {
		return fallback(base, lhsBytes, rhsBytes, linediff.ReasonByteLimit, string(language), CoreError{Kind: ExceededByteLimit, Message: "input exceeds byte limit"})
	}

	adapter, ok := lang.Lookup(language)
	if !ok {
		return fallback(base, lhsBytes, rhsBytes, linediff.ReasonNone, "", CoreError{Kind: NoGrammar, Message: "no adapter registered for " + string(language)})
	}

	tabWidth := cfg.TabWidth
	if tabWidth <= 0 {
		tabWidth = 8
	}
	lhsText := expandTabs(string(lhsBytes), tabWidth)
	rhsText := expandTabs(string(rhsBytes), tabWidth)

	lhsArena := syntax.NewArena()
	lhsRoot := adapter.Parse(lhsArena, lhsText)
	syntax.InitAllInfo(lhsArena)

	rhsArena := syntax.NewArena()
	rhsRoot := adapter.Parse(rhsArena, rhsText)
	syntax.InitAllInfo(rhsArena)

	cm := changemap.New()

	var gaps []trim.Gap
	if os.Getenv(keepUnchangedEnv) != "" {
		gaps = []trim.Gap{{LHS: lhsRoot.Children(), RHS: rhsRoot.Children()}}
	} else {
		gaps = trim.Trim(lhsRoot.Children(), rhsRoot.Children(), cm)
	}

	searchCfg := search.Config{MaxVertices: cfg.GraphLimit}
	for _, g := range gaps {
		if err := search.Walk(ctx, g.LHS, g.RHS, cm, searchCfg); err != nil {
			if errors.Is(err, search.ErrGraphLimitExceeded) {
				return fallback(base, lhsBytes, rhsBytes, linediff.ReasonGraphLimit, string(language), CoreError{Kind: ExceededGraphLimit, Message: "search exceeded graph limit"})
			}
			// Context cancellation: spec §5 names the graph cap as the
			// sole cooperative cancellation point, so a caller-driven
			// ctx cancellation during directory-mode processing is
			// reported the same way.
			return fallback(base, lhsBytes, rhsBytes, linediff.ReasonGraphLimit, string(language), CoreError{Kind: ExceededGraphLimit, Message: err.Error()})
		}
	}

	changemap.Slide(cm, lhsRoot)
	changemap.Slide(cm, rhsRoot)

	r := base
	r.Language = language
	r.LanguageName = string(language)
	r.LHSContent = FileContent{Text: lhsText}
	r.RHSContent = FileContent{Text: rhsText}
	r.LHSSpans = convertSpans(position.Project(cm, lhsRoot))
	r.RHSSpans = convertSpans(position.Project(cm, rhsRoot))
	return r
}

// fallback runs the line differ over the raw (untabexpanded) inputs and
// assembles the result spec §4.6 describes.
func fallback(base DiffResult, lhsBytes, rhsBytes []byte, reason, languageName string, coreErr CoreError) DiffResult {
	r := base
	r.Language = Language(linediff.ReasonTag(reason))
	r.LanguageName = languageName
	r.Reason = &coreErr
	r.LHSContent = contentOf(lhsBytes)
	r.RHSContent = contentOf(rhsBytes)

	lhsLineSpans, rhsLineSpans := linediff.Diff(string(lhsBytes), string(rhsBytes))
	r.LHSSpans = convertLineSpans(lhsLineSpans)
	r.RHSSpans = convertLineSpans(rhsLineSpans)
	return r
}

func contentOf(b []byte) FileContent {
	return FileContent{Text: string(b)}
}

func convertSpans(spans []position.Span) []Span {
	out := make([]Span, len(spans))
	for i, s := range spans {
		tag := SpanNovel
		if s.Tag == position.TagMatched {
			tag = SpanMatched
		}
		out[i] = Span{Line: s.Line, StartCol: s.StartCol, EndCol: s.EndCol, Tag: tag, PeerID: s.PeerID}
	}
	return out
}

func convertLineSpans(spans []linediff.Span) []Span {
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = Span{Line: s.Line, StartCol: s.StartCol, EndCol: s.EndCol, Tag: SpanNovel}
	}
	return out
}

// isBinary applies spec §7's heuristic: a NUL byte within the first
// ~1024 bytes marks the input as non-text.
func isBinary(b []byte) bool {
	n := len(b)
	if n > binarySniffWindow {
		n = binarySniffWindow
	}
	return bytes.IndexByte(b[:n], 0) >= 0
}

// expandTabs implements spec §4.8's pre-parse tab substitution: "tab
// characters in the source are replaced by N spaces (configurable)...
// known imperfection (breaks tab-significant grammars)". Preserved as
// directed by spec §9's Open Questions rather than fixed.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	spaces := strings.Repeat(" ", width)
	return strings.ReplaceAll(s, "\t", spaces)
}

// guessLanguage applies Config.LanguageOverride first, then tries the
// lhs display path/content, falling back to the rhs side (spec §6's
// guesser is defined per-path, but a diff needs one language for both
// sides; trying lhs first then rhs covers e.g. diffing stdin against a
// named path).
func guessLanguage(cfg Config, lhsDisplayPath, rhsDisplayPath string, lhsKind, rhsKind PathKind, lhsBytes, rhsBytes []byte) (Language, bool) {
	if cfg.LanguageOverride != "" {
		return cfg.LanguageOverride, true
	}
	if l, ok := lang.Guess(lhsKind, lhsDisplayPath, string(lhsBytes)); ok {
		return l, true
	}
	if l, ok := lang.Guess(rhsKind, rhsDisplayPath, string(rhsBytes)); ok {
		return l, true
	}
	return "", false
}
