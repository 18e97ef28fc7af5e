package token

import "sort"

// LineBreak records the byte offset of a line feed and the 1-based number of
// the line it terminates.
type LineBreak struct {
	Offset int
	Line   int
}

// LineMap maps line-break offsets to line numbers. It is filled in order while
// lexing, so offsets are strictly increasing.
type LineMap struct {
	breaks []LineBreak
}

// Add records a line feed at offset. Offsets that do not increase are ignored.
func (m *LineMap) Add(offset int) {
	if n := len(m.breaks); n > 0 && m.breaks[n-1].Offset >= offset {
		return
	}
	m.breaks = append(m.breaks, LineBreak{Offset: offset, Line: len(m.breaks) + 1})
}

// Breaks returns a copy of the recorded line breaks.
func (m *LineMap) Breaks() []LineBreak {
	if m == nil {
		return nil
	}
	out := make([]LineBreak, len(m.breaks))
	copy(out, m.breaks)
	return out
}

// Lines returns the number of lines seen, counting the unterminated last one.
func (m *LineMap) Lines() int {
	if m == nil {
		return 1
	}
	return len(m.breaks) + 1
}

// Line returns the 1-based line containing offset.
func (m *LineMap) Line(offset int) int {
	line, _ := m.Position(offset)
	return line
}

// Position translates a byte offset into a 1-based line and column.
func (m *LineMap) Position(offset int) (line, column int) {
	if m == nil || len(m.breaks) == 0 {
		return 1, offset + 1
	}
	// number of line feeds strictly before offset
	n := sort.Search(len(m.breaks), func(i int) bool {
		return m.breaks[i].Offset >= offset
	})
	if n == 0 {
		return 1, offset + 1
	}
	lineStart := m.breaks[n-1].Offset + 1
	return n + 1, offset - lineStart + 1
}

// LineStart returns the byte offset where the 1-based line begins, or -1 if
// the line was never seen.
func (m *LineMap) LineStart(line int) int {
	switch {
	case line == 1:
		return 0
	case m == nil || line < 1 || line-2 >= len(m.breaks):
		return -1
	default:
		return m.breaks[line-2].Offset + 1
	}
}
