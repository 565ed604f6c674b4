package tokenizer

import "fmt"

// Category is the lexical category that a word is classified into
type Category int

const (
	// None is only ever carried by the end-of-input sentinel
	None Category = iota

	ClassModifier  // static
	ClassKeyword   // class
	AccessModifier // private, public, protected
	OpenBrace      // {
	CloseBrace     // }
	Comma          // ,
	Terminator     // ;
	DataType       // int, float, ..., Name<Inner>
	Identifier
)

func (c Category) String() string {
	switch c {
	case None:
		return "None"
	case ClassModifier:
		return "ClassModifier"
	case ClassKeyword:
		return "ClassKeyword"
	case AccessModifier:
		return "AccessModifier"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case Comma:
		return "Comma"
	case Terminator:
		return "Terminator"
	case DataType:
		return "DataType"
	case Identifier:
		return "Identifier"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Position is the 1-based location of a token in the source, the column
// counts bytes from the start of the untrimmed line
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single classified word. Tokens are produced once by the
// tokenizer and never modified afterwards
type Token struct {
	Category Category
	Lexeme   string
	Position
}

// EOF is the sentinel that is read once a cursor moves past the last token
var EOF = Token{Category: None}

// IsEOF reports whether the token is the end-of-input sentinel
func (t Token) IsEOF() bool {
	return t.Category == None
}

func (t Token) String() string {
	if t.IsEOF() {
		return "(None, None)"
	}
	return fmt.Sprintf("(%s, %q)", t.Category, t.Lexeme)
}
