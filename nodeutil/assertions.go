package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExpectType returns an error if the node is missing or of a different type
func ExpectType(node *sitter.Node, expectedType string) error {
	if node == nil || node.IsNull() {
		return fmt.Errorf("expected node of type %s, got nothing", expectedType)
	}
	if node.Type() != expectedType {
		point := node.StartPoint()
		return fmt.Errorf("expected node of type %s, got: %s at %d:%d", expectedType, node.Type(), point.Row+1, point.Column+1)
	}
	return nil
}

// Children returns the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}

// UnnamedChildren returns every child of a node, including the anonymous
// nodes such as the keywords inside of `modifiers`
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.Child(i)
	}
	return children
}
