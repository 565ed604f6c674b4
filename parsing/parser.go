// Package parsing builds the syntax tree of a single Java class declaration
// out of the tokens from the tokenizer.
//
// The grammar that is accepted is:
//
//	ClassDeclaration    = [AccessModifier] "class" Identifier "{" ClassBody "}"
//	ClassBody           = { VariableDeclaration }
//	VariableDeclaration = [AccessModifier] DataType Identifier { "," Identifier } ";"
//
// There is no error recovery, the first unexpected token ends the parse.
package parsing

import "github.com/NickyBoy89/javafront/tokenizer"

// Parser reads a token sequence with a single forward cursor. A parser should
// not be shared between goroutines
type Parser struct {
	tokens []tokenizer.Token
	cursor int
}

func NewParser(tokens []tokenizer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole class declaration out of the tokens
func Parse(tokens []tokenizer.Token) (*ClassDeclaration, error) {
	return NewParser(tokens).Parse()
}

// Parse parses the parser's tokens from the beginning. Tokens after the
// closing brace of the class are left unread, see Cursor
func (p *Parser) Parse() (*ClassDeclaration, error) {
	p.cursor = 0
	return p.parseClassDeclaration()
}

// Cursor is the index of the next token that would be read
func (p *Parser) Cursor() int {
	return p.cursor
}

func (p *Parser) current() tokenizer.Token {
	if p.cursor < len(p.tokens) {
		return p.tokens[p.cursor]
	}
	return tokenizer.EOF
}

func (p *Parser) consume() {
	p.cursor++
}

// accept consumes the current token if it is of the given category
func (p *Parser) accept(category tokenizer.Category) (tokenizer.Token, bool) {
	tok := p.current()
	if tok.Category != category {
		return tok, false
	}
	p.consume()
	return tok, true
}

// expect is like accept, but fails the given rule if the token is not there
func (p *Parser) expect(rule NodeKind, category tokenizer.Category) (tokenizer.Token, error) {
	tok, ok := p.accept(category)
	if !ok {
		return tok, &SyntaxError{Rule: rule, Token: tok, Expected: category}
	}
	return tok, nil
}

func (p *Parser) parseClassDeclaration() (*ClassDeclaration, error) {
	class := &ClassDeclaration{}

	if modifier, ok := p.accept(tokenizer.AccessModifier); ok {
		class.Modifier = modifier.Lexeme
	}

	if _, err := p.expect(ClassDeclarationNode, tokenizer.ClassKeyword); err != nil {
		return nil, err
	}

	name, err := p.expect(ClassDeclarationNode, tokenizer.Identifier)
	if err != nil {
		return nil, err
	}
	class.Name = name.Lexeme

	if _, err := p.expect(ClassDeclarationNode, tokenizer.OpenBrace); err != nil {
		return nil, err
	}

	class.Body, err = p.parseClassBody()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(ClassDeclarationNode, tokenizer.CloseBrace); err != nil {
		return nil, err
	}

	return class, nil
}

// parseClassBody reads declarations for as long as the next token can start
// one. Anything else ends the body, and is left for the class to check
func (p *Parser) parseClassBody() (*ClassBody, error) {
	body := &ClassBody{}

	for {
		switch p.current().Category {
		case tokenizer.DataType, tokenizer.AccessModifier:
			decl, err := p.parseVariableDeclaration()
			if err != nil {
				return nil, err
			}
			body.Declarations = append(body.Declarations, decl)
		default:
			return body, nil
		}
	}
}

func (p *Parser) parseVariableDeclaration() (*VariableDeclaration, error) {
	decl := &VariableDeclaration{}

	if modifier, ok := p.accept(tokenizer.AccessModifier); ok {
		decl.Modifier = modifier.Lexeme
	}

	dataType, err := p.expect(VariableDeclarationNode, tokenizer.DataType)
	if err != nil {
		return nil, err
	}
	decl.Type = dataType.Lexeme

	// A missing comma is the end of the list, not an error
	for {
		name, err := p.expect(VariableDeclarationNode, tokenizer.Identifier)
		if err != nil {
			return nil, err
		}
		decl.Variables = append(decl.Variables, name.Lexeme)

		if _, ok := p.accept(tokenizer.Comma); !ok {
			break
		}
	}

	if _, err := p.expect(VariableDeclarationNode, tokenizer.Terminator); err != nil {
		return nil, err
	}

	return decl, nil
}
