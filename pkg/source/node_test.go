package source

import (
	"bytes"
	"errors"
	"testing"
)

// groupBuffer builds a buffer with a hand-rolled token stream and one
// parenthesized group over tokens 1..3 of "a(b)".
func groupBuffer() (*Buffer, *Node) {
	content := []byte("a(b)")
	buf := NewBuffer("test.c", content)
	buf.Tokens = []Token{
		{Kind: TokIdent, StartOffset: 0, EndOffset: 1},
		{Kind: TokParenOpen, StartOffset: 1, EndOffset: 2},
		{Kind: TokIdent, StartOffset: 2, EndOffset: 3},
		{Kind: TokParenClose, StartOffset: 3, EndOffset: 4},
	}

	root := NewNode(NodeSource)
	root.Buffer = buf
	root.FirstToken = 0
	root.LastToken = 3

	group := NewNode(NodeGroup)
	group.Buffer = buf
	group.FirstToken = 1
	group.LastToken = 3
	group.Group = &GroupAttrs{Delim: '(', OpenToken: 1, CloseToken: 3}
	AppendChild(root, group)

	buf.Root = root
	return buf, root
}

func TestAppendChild(t *testing.T) {
	parent := NewNode(NodeSource)
	a := NewNode(NodeGroup)
	b := NewNode(NodeGroup)

	AppendChild(parent, a)
	AppendChild(parent, b)

	if parent.FirstChild != a || parent.LastChild != b {
		t.Fatal("first/last child pointers wrong")
	}
	if a.Next != b || b.Prev != a {
		t.Fatal("sibling pointers wrong")
	}
	if a.Parent != parent || b.Parent != parent {
		t.Fatal("parent pointers wrong")
	}
	if children := parent.Children(); len(children) != 2 {
		t.Fatalf("Children() = %d nodes, want 2", len(children))
	}
	if !parent.HasChildren() {
		t.Error("HasChildren should be true")
	}
}

func TestNodeSourceRangeAndText(t *testing.T) {
	_, root := groupBuffer()
	group := root.FirstChild

	if r := group.SourceRange(); r != (Range{Start: 1, End: 4}) {
		t.Errorf("SourceRange = %+v", r)
	}
	if text := group.Text(); !bytes.Equal(text, []byte("(b)")) {
		t.Errorf("Text = %q", text)
	}

	detached := NewNode(NodeGroup)
	if r := detached.SourceRange(); !r.IsEmpty() {
		t.Errorf("detached node range should be empty, got %+v", r)
	}
	if detached.Text() != nil {
		t.Error("detached node text should be nil")
	}
}

func TestNodeSpan(t *testing.T) {
	_, root := groupBuffer()
	group := root.FirstChild

	span := group.Span()
	want := Span{StartLine: 1, StartColumn: 2, EndLine: 1, EndColumn: 5}
	if span != want {
		t.Errorf("Span = %+v, want %+v", span, want)
	}
}

func TestWalkPreOrder(t *testing.T) {
	_, root := groupBuffer()

	var kinds []NodeKind
	err := Walk(root, func(n *Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != NodeSource || kinds[1] != NodeGroup {
		t.Errorf("visit order = %v", kinds)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	_, root := groupBuffer()
	sentinel := errors.New("stop")

	visits := 0
	err := Walk(root, func(*Node) error {
		visits++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if visits != 1 {
		t.Errorf("walk should stop after first visit, visited %d", visits)
	}
}

func TestFindGroups(t *testing.T) {
	_, root := groupBuffer()

	if got := FindGroups(root, '('); len(got) != 1 {
		t.Errorf("FindGroups('(') = %d nodes, want 1", len(got))
	}
	if got := FindGroups(root, '['); len(got) != 0 {
		t.Errorf("FindGroups('[') = %d nodes, want 0", len(got))
	}
	if got := FindByKind(root, NodeGroup); len(got) != 1 {
		t.Errorf("FindByKind = %d nodes, want 1", len(got))
	}
}
