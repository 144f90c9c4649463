package source

// Range is a half-open byte interval [Start, End) in one buffer.
// Invariant: 0 <= Start <= End.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange builds a Range, clamping negative offsets to zero and
// collapsing inverted intervals to empty ones anchored at Start.
func NewRange(start, end int) Range {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Covers returns true if other lies entirely within this range.
// Both endpoints are inclusive of containment.
func (r Range) Covers(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Span represents a range in terms of line/column positions.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the start position.
func (s Span) Start() Position {
	return Position{Line: s.StartLine, Column: s.StartColumn}
}

// End returns the end position.
func (s Span) End() Position {
	return Position{Line: s.EndLine, Column: s.EndColumn}
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.StartLine > 0 && s.StartColumn > 0 &&
		s.EndLine > 0 && s.EndColumn > 0
}

// IsSingleLine returns true if start and end are on the same line.
func (s Span) IsSingleLine() bool {
	return s.StartLine == s.EndLine
}
