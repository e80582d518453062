package lang

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/jzeimen/difftastic/internal/syntax"
)

// xmlAdapter uses beevik/etree (mesocyclon-docx-api dependency) to parse
// and validate the document -- etree does the real work of element/
// attribute/namespace parsing and well-formedness checking. etree itself
// carries no source byte offsets, so this adapter re-walks the raw source
// in lockstep with etree's element tree to recover accurate Position
// spans for each tag, the way a tree-sitter-backed adapter would report
// real byte ranges.
type xmlAdapter struct{}

func (xmlAdapter) Parse(arena *syntax.Arena, source string) *syntax.Node {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(source); err != nil {
		// Malformed XML: degrade to a single atom wrapping the raw text
		// rather than panicking (spec §6).
		atom := arena.NewAtom(source, syntax.AtomNormal, syntax.Position{Line: 1, EndCol: len(source)})
		root := arena.NewList("", "", syntax.Position{}, syntax.Position{}, []*syntax.Node{atom})
		arena.SetRoot(root)
		return root
	}

	cursor := 0
	var top []*syntax.Node
	for _, el := range doc.ChildElements() {
		top = append(top, convertXMLElement(arena, source, &cursor, el))
	}
	root := arena.NewList("", "", syntax.Position{}, syntax.Position{}, top)
	arena.SetRoot(root)
	return root
}

func lineColAt(src string, idx int) (line, col int) {
	line = 1
	for i := 0; i < idx && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

func convertXMLElement(arena *syntax.Arena, src string, cursor *int, el *etree.Element) *syntax.Node {
	rel := strings.Index(src[*cursor:], "<"+el.Tag)
	if rel < 0 {
		// Couldn't locate the tag text (e.g. a namespaced tag whose
		// serialized spelling differs) -- fall back to a single atom at
		// the current cursor so the overall walk still makes progress.
		line, col := lineColAt(src, *cursor)
		return arena.NewAtom(el.Tag, syntax.AtomNormal, syntax.Position{Line: line, StartCol: col, EndCol: col + len(el.Tag)})
	}
	openStart := *cursor + rel
	gt := strings.IndexByte(src[openStart:], '>')
	if gt < 0 {
		line, col := lineColAt(src, openStart)
		*cursor = len(src)
		return arena.NewAtom(src[openStart:], syntax.AtomNormal, syntax.Position{Line: line, StartCol: col, EndCol: col + len(src) - openStart})
	}
	gt += openStart
	selfClosing := gt > openStart && src[gt-1] == '/'
	openTagText := src[openStart : gt+1]
	openLine, openCol := lineColAt(src, openStart)
	openPos := syntax.Position{Line: openLine, StartCol: openCol, EndCol: openCol + len(openTagText)}

	*cursor = gt + 1

	if selfClosing {
		return arena.NewList(openTagText, "", openPos, openPos, nil)
	}

	var children []*syntax.Node
	if txt := el.Text(); strings.TrimSpace(txt) != "" {
		if at := strings.Index(src[*cursor:], txt); at >= 0 {
			abs := *cursor + at
			line, col := lineColAt(src, abs)
			children = append(children, arena.NewAtom(txt, syntax.AtomNormal, syntax.Position{Line: line, StartCol: col, EndCol: col + len(txt)}))
			*cursor = abs + len(txt)
		}
	}

	for _, child := range el.ChildElements() {
		children = append(children, convertXMLElement(arena, src, cursor, child))
		if tail := child.Tail(); strings.TrimSpace(tail) != "" {
			if at := strings.Index(src[*cursor:], tail); at >= 0 {
				abs := *cursor + at
				line, col := lineColAt(src, abs)
				children = append(children, arena.NewAtom(tail, syntax.AtomNormal, syntax.Position{Line: line, StartCol: col, EndCol: col + len(tail)}))
				*cursor = abs + len(tail)
			}
		}
	}

	closeRel := strings.Index(src[*cursor:], "</"+el.Tag)
	if closeRel < 0 {
		return arena.NewList(openTagText, "", openPos, openPos, children)
	}
	closeStart := *cursor + closeRel
	closeGt := strings.IndexByte(src[closeStart:], '>')
	if closeGt < 0 {
		return arena.NewList(openTagText, "", openPos, openPos, children)
	}
	closeGt += closeStart
	closeTagText := src[closeStart : closeGt+1]
	closeLine, closeCol := lineColAt(src, closeStart)
	closePos := syntax.Position{Line: closeLine, StartCol: closeCol, EndCol: closeCol + len(closeTagText)}
	*cursor = closeGt + 1

	return arena.NewList(openTagText, closeTagText, openPos, closePos, children)
}
