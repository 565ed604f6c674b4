package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"

	"github.com/NickyBoy89/javafront/dot"
	"github.com/NickyBoy89/javafront/parsing"
)

type renderer struct {
	render func(w io.Writer, class *parsing.ClassDeclaration) error
	// File extension, used when writing to an output directory
	extension string
}

var renderers = map[string]renderer{
	"text": {renderText, ".txt"},
	"json": {renderJSON, ".json"},
	"yaml": {renderYAML, ".yaml"},
	"dot":  {renderDot, ".dot"},
	"dump": {renderDump, ".dump"},
}

func formatNames() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrintTree prints every node on its own line as `Kind: value`, indented two
// spaces for every level below the given node
func PrintTree(w io.Writer, node parsing.Node) error {
	var err error
	parsing.Inspect(node, func(n parsing.Node, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s: %v\n", strings.Repeat("  ", depth), n.Kind(), n.Value())
	})
	return err
}

func renderText(w io.Writer, class *parsing.ClassDeclaration) error {
	return PrintTree(w, class)
}

// treeNode is the generic form of a node, for the data formats
type treeNode struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Value    any        `json:"value,omitempty" yaml:"value,omitempty"`
	Children []treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toTree(node parsing.Node) treeNode {
	tree := treeNode{Kind: node.Kind().String(), Value: node.Value()}
	for _, child := range node.Children() {
		tree.Children = append(tree.Children, toTree(child))
	}
	return tree
}

func renderJSON(w io.Writer, class *parsing.ClassDeclaration) error {
	formatted, err := json.MarshalIndent(toTree(class), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(formatted))
	return err
}

func renderYAML(w io.Writer, class *parsing.ClassDeclaration) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toTree(class)); err != nil {
		return err
	}
	return encoder.Close()
}

func nodeLabel(node parsing.Node) string {
	switch n := node.(type) {
	case *parsing.ClassDeclaration:
		return "class " + n.Name
	case *parsing.VariableDeclaration:
		label := n.Type + " " + strings.Join(n.Variables, ", ")
		if n.Modifier != "" {
			label = n.Modifier + " " + label
		}
		return label
	}
	return node.Kind().String()
}

func renderDot(w io.Writer, class *parsing.ClassDeclaration) error {
	graph := dot.New(class.Name)

	// The most recent node seen at every depth, the parent of the next node
	// one level deeper
	var parents []string
	var count int
	parsing.Inspect(class, func(node parsing.Node, depth int) {
		name := fmt.Sprintf("n%d", count)
		count++
		graph.AddNode(name, nodeLabel(node))
		if depth > 0 {
			graph.AddEdge(parents[depth-1], name)
		}
		parents = append(parents[:depth], name)
	})

	_, err := graph.WriteTo(w)
	return err
}

func renderDump(w io.Writer, class *parsing.ClassDeclaration) error {
	_, err := fmt.Fprintln(w, litter.Sdump(class))
	return err
}
