package source

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the node tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a
// non-nil error, the walk stops immediately and returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// FindByKind returns all nodes of the given kind in pre-order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	var found []*Node
	_ = Walk(root, func(n *Node) error { //nolint:errcheck // visitor never returns error
		if n.Kind == kind {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// FindGroups returns all NodeGroup nodes whose opening delimiter is delim.
func FindGroups(root *Node, delim byte) []*Node {
	var found []*Node
	_ = Walk(root, func(n *Node) error { //nolint:errcheck // visitor never returns error
		if n.Kind == NodeGroup && n.Group != nil && n.Group.Delim == delim {
			found = append(found, n)
		}
		return nil
	})
	return found
}
