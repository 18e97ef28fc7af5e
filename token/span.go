package token

import "fmt"

// Span is a half-open byte range [Start, End) into one source unit.
type Span struct {
	Source string // name of the source unit, only used for display
	Start  int
	End    int
}

func NewSpan(source string, start, end int) Span {
	return Span{Source: source, Start: start, End: end}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Join returns the smallest span covering s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	if s.Source == "" {
		return fmt.Sprintf("%d..%d", s.Start, s.End)
	}
	return fmt.Sprintf("%s:%d..%d", s.Source, s.Start, s.End)
}
