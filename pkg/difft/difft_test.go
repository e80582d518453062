package difft

import (
	"context"
	"strings"
	"testing"
)

func TestDiffFileContentIdenticalInputsEmptySpans(t *testing.T) {
	r := DiffFileContent(context.Background(), "a.lisp", "a.lisp", NamedPath, NamedPath, []byte("(a b c)"), []byte("(a b c)"), DefaultConfig())
	if len(r.LHSSpans) != 0 || len(r.RHSSpans) != 0 {
		t.Fatalf("identical inputs: got lhs=%v rhs=%v, want empty", r.LHSSpans, r.RHSSpans)
	}
	if r.Reason == nil || r.Reason.Kind != IdenticalInputs {
		t.Fatalf("expected IdenticalInputs reason, got %v", r.Reason)
	}
}

func TestDiffFileContentLispNovelAtom(t *testing.T) {
	r := DiffFileContent(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte("(a b)"), []byte("(a c)"), DefaultConfig())
	if r.Reason != nil {
		t.Fatalf("unexpected fallback reason: %v", r.Reason)
	}
	if r.Language != "Lisp" {
		t.Fatalf("expected Lisp, got %v", r.Language)
	}

	novelCount := 0
	for _, s := range r.LHSSpans {
		if s.Tag == SpanNovel {
			novelCount++
		}
	}
	if novelCount != 1 {
		t.Errorf("expected exactly one novel lhs span (the `b`), got %d: %v", novelCount, r.LHSSpans)
	}
	novelCount = 0
	for _, s := range r.RHSSpans {
		if s.Tag == SpanNovel {
			novelCount++
		}
	}
	if novelCount != 1 {
		t.Errorf("expected exactly one novel rhs span (the `c`), got %d: %v", novelCount, r.RHSSpans)
	}
}

func TestDiffFileContentReplacedCommentMatchesAsMatched(t *testing.T) {
	lhs := "; old comment\nfoo"
	rhs := "; new comment\nfoo"
	r := DiffFileContent(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte(lhs), []byte(rhs), DefaultConfig())
	if r.Reason != nil {
		t.Fatalf("unexpected fallback reason: %v", r.Reason)
	}
	// Both the comment and "foo" should match their peers -- the comment
	// as ReplacedComment (internally), surfaced here as SpanMatched.
	for _, s := range r.LHSSpans {
		if s.Tag != SpanMatched {
			t.Errorf("expected all lhs spans matched (comment replaced, foo unchanged), got novel span %v", s)
		}
	}
}

// TestDiffFileContentScenario3PrefersPrependingNovelBlock pins spec §8
// scenario 3: inserting a statement at the start of a block should leave
// the untouched trailing statement matched rather than shifting the
// novel boundary onto it. "fn f(){x()}" -> "fn f(){y();x()}" has only
// one honest alignment (x() stays put, "y();" is prepended), and the
// trim+search pipeline should find it end to end without the slider's
// help.
func TestDiffFileContentScenario3PrefersPrependingNovelBlock(t *testing.T) {
	lhs := "fn f(){x()}"
	rhs := "fn f(){y();x()}"
	cfg := DefaultConfig()
	cfg.LanguageOverride = "Rust"
	r := DiffFileContent(context.Background(), "a.rs", "b.rs", NamedPath, NamedPath, []byte(lhs), []byte(rhs), cfg)
	if r.Reason != nil {
		t.Fatalf("unexpected fallback reason: %v", r.Reason)
	}

	for _, s := range r.LHSSpans {
		if s.Tag != SpanMatched {
			t.Errorf("expected every lhs span matched (nothing removed), got novel span %v", s)
		}
	}

	// Spans are emitted in source order: fn, f, "(", ")", "{", then the
	// novel y();  run (ident, "(", ")", ";"), then the untouched x() call
	// (ident, "(", ")"), then the closing "}". The novel run must land
	// exactly where it was prepended, not smeared over the trailing x().
	const wantSpans = 13
	if len(r.RHSSpans) != wantSpans {
		t.Fatalf("expected %d rhs spans, got %d: %v", wantSpans, len(r.RHSSpans), r.RHSSpans)
	}
	for i, s := range r.RHSSpans {
		wantNovel := i >= 5 && i <= 8
		if wantNovel && s.Tag != SpanNovel {
			t.Errorf("span %d: expected novel (part of prepended `y();`), got %v", i, s)
		}
		if !wantNovel && s.Tag != SpanMatched {
			t.Errorf("span %d: expected matched, got novel span %v", i, s)
		}
	}
}

func TestDiffFileContentByteLimitFallsBackToLineDiff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ByteLimit = 4
	lhs := "(a b)"
	rhs := "(a c)"
	r := DiffFileContent(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte(lhs), []byte(rhs), cfg)
	if r.Reason == nil || r.Reason.Kind != ExceededByteLimit {
		t.Fatalf("expected ExceededByteLimit, got %v", r.Reason)
	}
	if !strings.HasPrefix(string(r.Language), "Text") {
		t.Errorf("expected fallback language tag to start with Text, got %q", r.Language)
	}
}

func TestDiffFileContentGraphLimitFallsBackToLineDiff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GraphLimit = 1
	lhs := "(a b c d e f g h)"
	rhs := "(v w x y z p q r)"
	r := DiffFileContent(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte(lhs), []byte(rhs), cfg)
	if r.Reason == nil || r.Reason.Kind != ExceededGraphLimit {
		t.Fatalf("expected ExceededGraphLimit, got %v", r.Reason)
	}
	if string(r.Language) != "Text (exceeded DFT_GRAPH_LIMIT)" {
		t.Errorf("unexpected fallback language tag: %q", r.Language)
	}
}

func TestDiffFileContentNoGrammarFallsBackWithNullName(t *testing.T) {
	r := DiffFileContent(context.Background(), "a.unknownext", "b.unknownext", NamedPath, NamedPath, []byte("!!! not a known grammar @@@"), []byte("??? still not one ###"), DefaultConfig())
	if r.Reason == nil || r.Reason.Kind != NoGrammar {
		t.Fatalf("expected NoGrammar, got %v", r.Reason)
	}
	if r.LanguageName != "" {
		t.Errorf("expected null (empty) language name, got %q", r.LanguageName)
	}
	if string(r.Language) != "Text" {
		t.Errorf("expected plain Text tag, got %q", r.Language)
	}
}

func TestDiffFileContentBinaryInput(t *testing.T) {
	lhs := []byte("abc\x00def")
	rhs := []byte("abc")
	r := DiffFileContent(context.Background(), "a.bin", "b.bin", NamedPath, NamedPath, lhs, rhs, DefaultConfig())
	if r.Reason == nil || r.Reason.Kind != BinaryInput {
		t.Fatalf("expected BinaryInput, got %v", r.Reason)
	}
	if !r.LHSContent.IsBinary {
		t.Errorf("expected lhs content marked binary")
	}
}

func TestDiffFileContentLanguageOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LanguageOverride = "Lisp"
	r := DiffFileContent(context.Background(), "a.unknownext", "b.unknownext", NamedPath, NamedPath, []byte("(a b)"), []byte("(a c)"), cfg)
	if r.Language != "Lisp" {
		t.Fatalf("expected override to win, got %v", r.Language)
	}
}

func TestDiffFileContentSpansAscending(t *testing.T) {
	r := DiffFileContent(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte("(a b c d)"), []byte("(a x c y)"), DefaultConfig())
	for _, spans := range [][]Span{r.LHSSpans, r.RHSSpans} {
		for i := 1; i < len(spans); i++ {
			prev, cur := spans[i-1], spans[i]
			if cur.Line < prev.Line || (cur.Line == prev.Line && cur.StartCol < prev.StartCol) {
				t.Fatalf("spans not in ascending order: %v", spans)
			}
		}
	}
}

func TestEngineExecuteDelegatesToDiffFileContent(t *testing.T) {
	e := New(DefaultConfig())
	r := e.Execute(context.Background(), "a.lisp", "b.lisp", NamedPath, NamedPath, []byte("(a b)"), []byte("(a c)"))
	if r.Language != "Lisp" {
		t.Fatalf("expected Lisp, got %v", r.Language)
	}
}
