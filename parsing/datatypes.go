package parsing

import (
	"fmt"
	"strings"
)

// NodeKind is the kind of a node in the syntax tree, each kind is also the
// name of the grammar rule that produces it
type NodeKind int

const (
	ClassDeclarationNode NodeKind = iota + 1
	ClassBodyNode
	VariableDeclarationNode
)

func (k NodeKind) String() string {
	switch k {
	case ClassDeclarationNode:
		return "ClassDeclaration"
	case ClassBodyNode:
		return "ClassBody"
	case VariableDeclarationNode:
		return "VariableDeclaration"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is any node of the syntax tree
type Node interface {
	Kind() NodeKind
	// Value is the payload of the node: the class's name for a class
	// declaration, nil for a class body, and a Field for a variable declaration
	Value() any
	Children() []Node
}

// Represents a Java class, the root of every tree
type ClassDeclaration struct {
	Name string
	// The access modifier in front of the class, or empty if there is none
	Modifier string
	Body     *ClassBody
}

func (c *ClassDeclaration) Kind() NodeKind {
	return ClassDeclarationNode
}

func (c *ClassDeclaration) Value() any {
	return c.Name
}

func (c *ClassDeclaration) Children() []Node {
	return []Node{c.Body}
}

// ClassBody holds the field declarations of a class, in source order
type ClassBody struct {
	Declarations []*VariableDeclaration
}

func (b *ClassBody) Kind() NodeKind {
	return ClassBodyNode
}

func (b *ClassBody) Value() any {
	return nil
}

func (b *ClassBody) Children() []Node {
	children := make([]Node, len(b.Declarations))
	for ind, decl := range b.Declarations {
		children[ind] = decl
	}
	return children
}

// Field is everything that is declared by a single field declaration
// Ex: private int a, b;
type Field struct {
	Type      string   `json:"type" yaml:"type"`
	Variables []string `json:"variables" yaml:"variables"`
	// Empty if the declaration has no access modifier
	Modifier string `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

func (f Field) String() string {
	modifier := f.Modifier
	if modifier == "" {
		modifier = "none"
	}
	return fmt.Sprintf("{type: %s, variables: [%s], modifier: %s}", f.Type, strings.Join(f.Variables, ", "), modifier)
}

// VariableDeclaration is a single field declaration inside of a class body,
// always a leaf of the tree
type VariableDeclaration struct {
	Field
}

func (v *VariableDeclaration) Kind() NodeKind {
	return VariableDeclarationNode
}

func (v *VariableDeclaration) Value() any {
	return v.Field
}

func (v *VariableDeclaration) Children() []Node {
	return nil
}

// Inspect walks the tree depth-first, calling f for every node along with its
// depth, starting from zero at the given node
func Inspect(node Node, f func(node Node, depth int)) {
	inspect(node, 0, f)
}

func inspect(node Node, depth int, f func(node Node, depth int)) {
	f(node, depth)
	for _, child := range node.Children() {
		inspect(child, depth+1, f)
	}
}
