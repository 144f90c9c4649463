// Package source provides the immutable source-file representation shared by
// all spacelint analysis passes:
// - Buffer: the complete file view (content, line index, token stream, root node)
// - Token stream: every byte classified
// - Nodes: structural elements referencing token spans
package source

import "sort"

// Buffer is an immutable view of one source file during an analysis pass.
// It holds the raw content, line metadata, token stream, and the root node.
type Buffer struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte.
	Tokens []Token

	// Root is the root node of the delimiter structure.
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewBuffer creates a Buffer from content.
// It builds the line index but does not tokenize (that requires a scanner).
func NewBuffer(path string, content []byte) *Buffer {
	return &Buffer{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Tokens:  nil,
		Root:    nil,
	}
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (b *Buffer) LineAt(offset int) (int, int) {
	if offset < 0 || len(b.Lines) == 0 {
		return 0, 0
	}

	// Handle offset at or past end of content.
	if offset >= len(b.Content) {
		lastLine := b.Lines[len(b.Lines)-1]
		return len(b.Lines), offset - lastLine.StartOffset + 1
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(b.Lines), func(i int) bool {
		return b.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(b.Lines) {
		lineIdx = len(b.Lines) - 1
	}

	lineInfo := b.Lines[lineIdx]

	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	// 1-based line and column.
	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// SpanOf converts a byte range to a line/column span.
func (b *Buffer) SpanOf(r Range) Span {
	startLine, startCol := b.LineAt(r.Start)
	endLine, endCol := b.LineAt(r.End)
	return Span{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (b *Buffer) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(b.Lines) {
		return 0, false
	}

	lineInfo := b.Lines[line-1]

	// Column 1 is the first byte of the line.
	if col < 1 {
		return 0, false
	}

	offset := lineInfo.StartOffset + col - 1

	// Allow column to point to end of line (for boundary positioning).
	if offset > lineInfo.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (b *Buffer) LineContent(line int) []byte {
	if line < 1 || line > len(b.Lines) {
		return nil
	}

	lineInfo := b.Lines[line-1]
	return b.Content[lineInfo.StartOffset:lineInfo.NewlineStart]
}

// ByteAt returns the byte at the given offset and true, or (0, false)
// when the offset is outside the buffer.
func (b *Buffer) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(b.Content) {
		return 0, false
	}
	return b.Content[offset], true
}
