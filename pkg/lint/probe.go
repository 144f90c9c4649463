package lint

import "github.com/yaklabco/spacelint/pkg/source"

// Side selects which side of a range a whitespace probe examines.
type Side int

// The three probe sides. SideNone exists for callers that resolve the side
// dynamically and must express "no probe".
const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// SpaceAfter returns true iff the single byte immediately following the
// token is a literal space. Tabs and newlines do not count.
func SpaceAfter(buf *source.Buffer, tok source.Token) bool {
	ch, ok := buf.ByteAt(tok.EndOffset)
	return ok && ch == ' '
}

// SpaceBefore returns true iff the single byte immediately preceding the
// token is a literal space.
func SpaceBefore(buf *source.Buffer, tok source.Token) bool {
	ch, ok := buf.ByteAt(tok.StartOffset - 1)
	return ok && ch == ' '
}

// SideSpaceRange computes the maximal contiguous run of horizontal
// whitespace (space or tab, never newline) adjacent to one side of r.
// The result is empty, and anchored at the boundary, when no adjacent
// horizontal whitespace exists. The left scan decrements from r.Start and
// clamps at the start of the buffer; the right scan increments from r.End.
func SideSpaceRange(buf *source.Buffer, r source.Range, side Side) source.Range {
	switch side {
	case SideLeft:
		begin := r.Start
		for begin > 0 && isHorizontalSpace(buf.Content[begin-1]) {
			begin--
		}
		return source.NewRange(begin, r.Start)

	case SideRight:
		end := r.End
		for end < len(buf.Content) && isHorizontalSpace(buf.Content[end]) {
			end++
		}
		return source.NewRange(r.End, end)

	default:
		return source.NewRange(r.Start, r.Start)
	}
}

func isHorizontalSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
