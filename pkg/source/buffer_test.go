package source

import (
	"bytes"
	"testing"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []LineInfo
	}{
		{
			name:    "empty content",
			content: "",
			want:    []LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "abc",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "single line with newline",
			content: "abc\n",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "two lines",
			content: "ab\ncd\n",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "crlf line endings",
			content: "ab\r\ncd",
			want: []LineInfo{
				{StartOffset: 0, NewlineStart: 2, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 6, EndOffset: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLines([]byte(tt.content))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	buf := NewBuffer("test.c", []byte("ab\ncde\nf"))

	cases := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{-1, 0, 0},
	}

	for _, tt := range cases {
		line, col := buf.LineAt(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.line, tt.col)
		}
	}

	// Offset at end of content maps just past the last line.
	line, col := buf.LineAt(8)
	if line != 3 || col != 2 {
		t.Errorf("LineAt(end) = (%d, %d), want (3, 2)", line, col)
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	content := []byte("ab\ncde\nf")
	buf := NewBuffer("test.c", content)

	for offset := range len(content) {
		line, col := buf.LineAt(offset)
		got, ok := buf.Offset(line, col)
		if !ok {
			t.Fatalf("Offset(%d, %d) reported out of range for offset %d", line, col, offset)
		}
		if got != offset {
			t.Errorf("round trip for offset %d: got %d", offset, got)
		}
	}

	if _, ok := buf.Offset(0, 1); ok {
		t.Error("line 0 should be out of range")
	}
	if _, ok := buf.Offset(4, 1); ok {
		t.Error("line past end should be out of range")
	}
	if _, ok := buf.Offset(1, 0); ok {
		t.Error("column 0 should be out of range")
	}
}

func TestSpanOf(t *testing.T) {
	buf := NewBuffer("test.c", []byte("ab\ncde\n"))

	span := buf.SpanOf(Range{Start: 3, End: 6})
	want := Span{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 4}
	if span != want {
		t.Errorf("SpanOf = %+v, want %+v", span, want)
	}
}

func TestLineContent(t *testing.T) {
	buf := NewBuffer("test.c", []byte("ab\r\ncde\nf"))

	if got := buf.LineContent(1); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("line 1 = %q, want %q (CRLF excluded)", got, "ab")
	}
	if got := buf.LineContent(2); !bytes.Equal(got, []byte("cde")) {
		t.Errorf("line 2 = %q", got)
	}
	if got := buf.LineContent(3); !bytes.Equal(got, []byte("f")) {
		t.Errorf("line 3 = %q", got)
	}
	if got := buf.LineContent(4); got != nil {
		t.Errorf("out-of-range line should be nil, got %q", got)
	}
	if got := buf.LineContent(0); got != nil {
		t.Errorf("line 0 should be nil, got %q", got)
	}
}

func TestByteAt(t *testing.T) {
	buf := NewBuffer("test.c", []byte("ab"))

	if ch, ok := buf.ByteAt(0); !ok || ch != 'a' {
		t.Errorf("ByteAt(0) = (%q, %v)", ch, ok)
	}
	if ch, ok := buf.ByteAt(1); !ok || ch != 'b' {
		t.Errorf("ByteAt(1) = (%q, %v)", ch, ok)
	}
	if _, ok := buf.ByteAt(2); ok {
		t.Error("ByteAt past end should miss")
	}
	if _, ok := buf.ByteAt(-1); ok {
		t.Error("ByteAt(-1) should miss")
	}
}
