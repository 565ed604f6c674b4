// Package crosscheck parses the same source with the tree-sitter Java grammar
// and reports where its view of the class differs from the tree that the
// parsing package built.
package crosscheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"golang.org/x/exp/slices"

	"github.com/NickyBoy89/javafront/keywords"
	"github.com/NickyBoy89/javafront/nodeutil"
	"github.com/NickyBoy89/javafront/parsing"
)

// Outline is the part of a tree-sitter class declaration that the front end
// also understands
type Outline struct {
	ClassName string
	Modifier  string
	Fields    []parsing.Field
}

// Extract parses the source with tree-sitter and outlines its only class
func Extract(ctx context.Context, source []byte) (*Outline, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New("tree-sitter could not parse the source")
	}

	var class *sitter.Node
	for _, child := range nodeutil.Children(root) {
		if child.Type() == "class_declaration" {
			class = child
			break
		}
	}
	if err := nodeutil.ExpectType(class, "class_declaration"); err != nil {
		return nil, err
	}

	outline := &Outline{
		ClassName: class.ChildByFieldName("name").Content(source),
		Modifier:  accessModifier(class, source),
	}

	body := class.ChildByFieldName("body")
	if err := nodeutil.ExpectType(body, "class_body"); err != nil {
		return nil, err
	}

	for _, member := range nodeutil.Children(body) {
		switch member.Type() {
		case "field_declaration":
			field := parsing.Field{
				Type:     member.ChildByFieldName("type").Content(source),
				Modifier: accessModifier(member, source),
			}
			// Every declared variable is its own `declarator` field
			for _, declarator := range nodeutil.Children(member) {
				if declarator.Type() == "variable_declarator" {
					field.Variables = append(field.Variables, declarator.ChildByFieldName("name").Content(source))
				}
			}
			outline.Fields = append(outline.Fields, field)
		case "line_comment", "block_comment":
		default:
			point := member.StartPoint()
			return nil, fmt.Errorf("unsupported class member %s at %d:%d", member.Type(), point.Row+1, point.Column+1)
		}
	}

	return outline, nil
}

// accessModifier finds the access modifier in a declaration's `modifiers`,
// if it has any
func accessModifier(declaration *sitter.Node, source []byte) string {
	if declaration.NamedChildCount() == 0 || declaration.NamedChild(0).Type() != "modifiers" {
		return ""
	}
	for _, modifier := range nodeutil.UnnamedChildren(declaration.NamedChild(0)) {
		if keywords.IsAccessModifier(modifier.Type()) {
			return modifier.Content(source)
		}
	}
	return ""
}

// Mismatch is a single place where the two parses disagree
type Mismatch struct {
	What   string
	Parsed string
	Found  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: parsed %q, tree-sitter found %q", m.What, m.Parsed, m.Found)
}

// Compare lists the differences between a parsed class and an outline
func Compare(class *parsing.ClassDeclaration, outline *Outline) []Mismatch {
	var mismatches []Mismatch

	if class.Name != outline.ClassName {
		mismatches = append(mismatches, Mismatch{"class name", class.Name, outline.ClassName})
	}
	if class.Modifier != outline.Modifier {
		mismatches = append(mismatches, Mismatch{"class modifier", class.Modifier, outline.Modifier})
	}

	decls := class.Body.Declarations
	if len(decls) != len(outline.Fields) {
		mismatches = append(mismatches, Mismatch{
			"field declarations",
			fmt.Sprint(len(decls)),
			fmt.Sprint(len(outline.Fields)),
		})
	}

	for ind := 0; ind < len(decls) && ind < len(outline.Fields); ind++ {
		parsed, found := decls[ind].Field, outline.Fields[ind]
		if parsed.Type != found.Type {
			mismatches = append(mismatches, Mismatch{fmt.Sprintf("field %d type", ind), parsed.Type, found.Type})
		}
		if parsed.Modifier != found.Modifier {
			mismatches = append(mismatches, Mismatch{fmt.Sprintf("field %d modifier", ind), parsed.Modifier, found.Modifier})
		}
		if !slices.Equal(parsed.Variables, found.Variables) {
			mismatches = append(mismatches, Mismatch{
				fmt.Sprintf("field %d variables", ind),
				strings.Join(parsed.Variables, ", "),
				strings.Join(found.Variables, ", "),
			})
		}
	}

	return mismatches
}

// Check extracts the outline of the source and compares the class against it
func Check(ctx context.Context, source []byte, class *parsing.ClassDeclaration) ([]Mismatch, error) {
	outline, err := Extract(ctx, source)
	if err != nil {
		return nil, err
	}
	return Compare(class, outline), nil
}
