package parsing

import (
	"fmt"

	"github.com/NickyBoy89/javafront/tokenizer"
)

// SyntaxError is returned when a grammar rule finds a token other than the one
// that it requires. Every syntax error ends the parse
type SyntaxError struct {
	// The grammar rule that rejected the token
	Rule NodeKind
	// The offending token, or the end-of-input sentinel
	Token    tokenizer.Token
	Expected tokenizer.Category
}

func (e *SyntaxError) Error() string {
	found := "end of input"
	if !e.Token.IsEOF() {
		found = fmt.Sprintf("%s %q at %s", e.Token.Category, e.Token.Lexeme, e.Token.Position)
	}
	return fmt.Sprintf("syntax error in %s: unexpected %s, expected %s", e.Rule, found, e.Expected)
}
