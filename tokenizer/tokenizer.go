// Package tokenizer splits the source of a class declaration into words and
// classifies every word into one of a fixed set of lexical categories.
//
// Words that fit no category are reported as diagnostics and left out of the
// returned tokens, tokenizing never fails.
package tokenizer

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Diagnostic describes a word that did not match any category
type Diagnostic struct {
	Word string
	Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: no category matches %q", d.Position, d.Word)
}

// Tokenizer reports the words it cannot classify to its logger
type Tokenizer struct {
	logger log.FieldLogger
}

// New creates a tokenizer that reports to the given logger, or to the
// standard logger when it is nil
func New(logger log.FieldLogger) *Tokenizer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Tokenizer{logger: logger}
}

// Tokenize tokenizes the source with the standard logger as the sink
func Tokenize(source string) ([]Token, []Diagnostic) {
	return New(nil).Tokenize(source)
}

// Tokenize returns the tokens for every classified word in source order,
// along with a diagnostic for every word that could not be classified
func (tz *Tokenizer) Tokenize(source string) ([]Token, []Diagnostic) {
	var tokens []Token
	var diagnostics []Diagnostic

	for lineIndex, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		for _, w := range splitWords(line) {
			pos := Position{Line: lineIndex + 1, Column: w.column}

			category, ok := Classify(w.text)
			if !ok {
				tz.logger.WithFields(log.Fields{
					"word":   w.text,
					"line":   pos.Line,
					"column": pos.Column,
				}).Warn("No category matches word")
				diagnostics = append(diagnostics, Diagnostic{Word: w.text, Position: pos})
				continue
			}

			tokens = append(tokens, Token{Category: category, Lexeme: w.text, Position: pos})
		}
	}

	return tokens, diagnostics
}
