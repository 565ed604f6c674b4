package tokenizer

import (
	"regexp"

	"github.com/NickyBoy89/javafront/keywords"
)

const identifierPattern = `[a-zA-Z_][a-zA-Z0-9_]*`

var (
	identifierRegex = regexp.MustCompile(`^` + identifierPattern + `$`)
	// A parametrized collection type such as ArrayList<Persona>
	genericTypeRegex = regexp.MustCompile(`^` + identifierPattern + `<` + identifierPattern + `>$`)
)

type rule struct {
	category Category
	matches  func(word string) bool
}

func literal(symbol string) func(string) bool {
	return func(word string) bool {
		return word == symbol
	}
}

// The order of the rules decides the category of any word that more than one
// rule accepts, so `class` is a keyword and never an identifier. Do not
// regroup these
var rules = []rule{
	{ClassModifier, keywords.IsClassModifier},
	{ClassKeyword, literal(keywords.ClassKeyword)},
	{AccessModifier, keywords.IsAccessModifier},
	{OpenBrace, literal("{")},
	{CloseBrace, literal("}")},
	{Comma, literal(",")},
	{Terminator, literal(";")},
	{DataType, func(word string) bool {
		return keywords.IsPrimitiveType(word) || genericTypeRegex.MatchString(word)
	}},
	{Identifier, identifierRegex.MatchString},
}

// Classify returns the category of the first rule that matches the whole
// word, or false if no rule matches
func Classify(word string) (Category, bool) {
	for _, r := range rules {
		if r.matches(word) {
			return r.category, true
		}
	}
	return None, false
}
