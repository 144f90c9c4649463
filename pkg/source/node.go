package source

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of a structural node.
type NodeKind uint16

// Node kinds for the delimiter structure built over the token stream.
const (
	// NodeSource is the root node spanning the whole file.
	NodeSource NodeKind = iota

	// NodeGroup is a balanced delimiter pair: (...), [...] or {...}.
	NodeGroup
)

// GroupAttrs holds attributes for NodeGroup nodes.
type GroupAttrs struct {
	// Delim is the opening delimiter byte: '(', '[' or '{'.
	Delim byte

	// OpenToken and CloseToken index the delimiter tokens in Buffer.Tokens.
	// CloseToken is -1 for unterminated groups.
	OpenToken  int
	CloseToken int
}

// Node represents a structural element spanning one or more tokens.
// Nodes form a tree with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into Buffer.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// Buffer is a back-reference to the containing Buffer.
	Buffer *Buffer

	// Group holds attributes for NodeGroup nodes.
	Group *GroupAttrs
}

// NewNode creates a detached node of the given kind with an empty token span.
func NewNode(kind NodeKind) *Node {
	return &Node{
		Kind:       kind,
		FirstToken: -1,
		LastToken:  -1,
	}
}

// AppendChild adds child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	}
	parent.LastChild = child

	if parent.FirstChild == nil {
		parent.FirstChild = child
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// SourceRange returns the byte range for this node.
// Returns an empty range if the node has no associated buffer or tokens.
func (n *Node) SourceRange() Range {
	if n.Buffer == nil || n.FirstToken < 0 || n.LastToken < 0 {
		return Range{}
	}

	tokens := n.Buffer.Tokens
	if n.FirstToken >= len(tokens) || n.LastToken >= len(tokens) {
		return Range{}
	}

	start := tokens[n.FirstToken].StartOffset
	end := tokens[n.LastToken].EndOffset

	return Range{Start: start, End: end}
}

// Span returns the line/column range for this node.
// Returns an invalid span if the node has no associated buffer.
func (n *Node) Span() Span {
	if n.Buffer == nil || n.FirstToken < 0 {
		return Span{}
	}
	return n.Buffer.SpanOf(n.SourceRange())
}

// Text returns the source text for this node.
// Returns nil if the node has no associated buffer.
func (n *Node) Text() []byte {
	if n.Buffer == nil {
		return nil
	}

	r := n.SourceRange()
	if r.Start < 0 || r.End > len(n.Buffer.Content) {
		return nil
	}

	return n.Buffer.Content[r.Start:r.End]
}
