package dot

import (
	"fmt"
	"io"
	"strings"
)

// Graph is a directed graph that is written out in the order that its nodes
// and edges were added
type Graph struct {
	name  string
	nodes []Node
	// The targets of every node, by the node's name
	edges map[string][]string
}

type Node struct {
	name  string
	label string
}

func (n Node) Name() string {
	return n.name
}

func New(name string) *Graph {
	return &Graph{name: name, edges: make(map[string][]string)}
}

func (g *Graph) Name() string {
	return g.name
}

// AddNode adds a node to the graph, replacing the label of an existing node
// with the same name
func (g *Graph) AddNode(name, label string) {
	for ind := range g.nodes {
		if g.nodes[ind].name == name {
			g.nodes[ind].label = label
			return
		}
	}
	g.nodes = append(g.nodes, Node{name: name, label: label})
}

func (g *Graph) HasNode(name string) bool {
	for _, node := range g.nodes {
		if node.name == name {
			return true
		}
	}
	return false
}

// AddEdge connects two nodes, creating the starting node if it doesn't exist
func (g *Graph) AddEdge(node string, edge string) {
	if !g.HasNode(node) {
		g.AddNode(node, node)
	}
	g.edges[node] = append(g.edges[node], edge)
}

func (g *Graph) HasEdge(node string, edge string) bool {
	for _, e := range g.edges[node] {
		if e == edge {
			return true
		}
	}
	return false
}

func commaSeparatedString(list []string) string {
	var total strings.Builder
	for ind, item := range list {
		total.WriteString(fmt.Sprintf("%q", item))
		if ind < len(list)-1 {
			total.WriteString(", ")
		}
	}
	return total.String()
}

// WriteTo writes the graph in the dot language
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var out strings.Builder

	fmt.Fprintf(&out, "digraph %q {\n", g.name)

	// First, write out all the nodes with their labels
	for _, node := range g.nodes {
		fmt.Fprintf(&out, "  %q [label=%q]\n", node.name, node.label)
	}

	// Then, connect them, skipping nodes that don't point anywhere
	for _, node := range g.nodes {
		if len(g.edges[node.name]) == 0 {
			continue
		}
		fmt.Fprintf(&out, "  %q -> {%s}\n", node.name, commaSeparatedString(g.edges[node.name]))
	}
	out.WriteString("}\n")

	n, err := io.WriteString(w, out.String())
	return int64(n), err
}
