// Package linediff implements the Myers-style line-level fallback differ
// (spec §4.6): "When either input exceeds a configured byte limit, or the
// AST search exceeds its graph cap, or no grammar is available, the
// fallback computes a standard line-level longest-common-subsequence diff
// and synthesises position spans one per changed line. Result has
// language tag "Text" (optionally suffixed with the reason)."
//
// Grounded on the teacher's internal/inference/graph_traversals.go
// dfsProbabilisticReachability memoization idiom, adapted here from
// probability accumulation to an LCS length table -- the same
// "build a memo table bottom-up, then walk it to recover a path" shape.
package linediff

import "strings"

// Span is one changed-line annotation: spec §4.6's "one per changed line",
// reusing the (line, start_column, end_column) shape internal/position
// projects for the AST path so callers can treat both uniformly.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
}

// Reason names why the AST path was abandoned, embedded in the fallback
// language tag (spec §9 Open Questions: "Language-tag string for fallback
// ... implementers should produce these exact strings for compatibility
// with existing display code").
const (
	ReasonNone       = ""
	ReasonByteLimit  = "DFT_BYTE_LIMIT"
	ReasonGraphLimit = "DFT_GRAPH_LIMIT"
)

// ReasonTag builds the fallback language tag family: "Text" when reason
// is ReasonNone (e.g. NoGrammar, which spec §7 says carries a null human
// name but still compares equal to "Text"), or "Text (exceeded
// DFT_BYTE_LIMIT)" / "Text (exceeded DFT_GRAPH_LIMIT)" otherwise.
// Downstream comparisons match on equality with "Text" (spec §9), so this
// always returns a string with that literal prefix.
func ReasonTag(reason string) string {
	if reason == ReasonNone {
		return "Text"
	}
	return "Text (exceeded " + reason + ")"
}

// Diff splits lhs and rhs into lines and computes a standard
// longest-common-subsequence alignment, returning one Span per changed
// line on each side, in ascending line order (spec §8 invariant 2).
func Diff(lhs, rhs string) (lhsSpans, rhsSpans []Span) {
	lhsLines := splitLines(lhs)
	rhsLines := splitLines(rhs)

	common := lcsTable(lhsLines, rhsLines)
	lhsChanged, rhsChanged := backtrack(lhsLines, rhsLines, common)

	for i, changed := range lhsChanged {
		if changed {
			lhsSpans = append(lhsSpans, lineSpan(i+1, lhsLines[i]))
		}
	}
	for i, changed := range rhsChanged {
		if changed {
			rhsSpans = append(rhsSpans, lineSpan(i+1, rhsLines[i]))
		}
	}
	return lhsSpans, rhsSpans
}

func lineSpan(line int, text string) Span {
	return Span{Line: line, StartCol: 0, EndCol: len(text)}
}

// splitLines splits on "\n", dropping the trailing empty element a final
// newline leaves behind, so line numbers match what an editor would show.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lcsTable builds the standard bottom-up LCS length table: common[i][j]
// is the length of the longest common subsequence of lhs[i:] and rhs[j:].
func lcsTable(lhs, rhs []string) [][]int {
	n, m := len(lhs), len(rhs)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if lhs[i] == rhs[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}
	return table
}

// backtrack walks the LCS table forward, marking every line that isn't
// part of the common subsequence as changed on its side. Ties (an equal
// keep-lhs / keep-rhs choice) favor advancing lhs first, so output is
// deterministic for a fixed table (spec §8 invariant 6).
func backtrack(lhs, rhs []string, common [][]int) (lhsChanged, rhsChanged []bool) {
	lhsChanged = make([]bool, len(lhs))
	rhsChanged = make([]bool, len(rhs))

	i, j := 0, 0
	for i < len(lhs) && j < len(rhs) {
		switch {
		case lhs[i] == rhs[j]:
			i++
			j++
		case common[i+1][j] >= common[i][j+1]:
			lhsChanged[i] = true
			i++
		default:
			rhsChanged[j] = true
			j++
		}
	}
	for ; i < len(lhs); i++ {
		lhsChanged[i] = true
	}
	for ; j < len(rhs); j++ {
		rhsChanged[j] = true
	}
	return lhsChanged, rhsChanged
}
