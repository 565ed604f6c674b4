package tokenizer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Generic types come first so that `ArrayList<Persona>` stays a single word
var segmentRegex = regexp.MustCompile(`^(?:` +
	identifierPattern + `<` + identifierPattern + `>` +
	`|` + identifierPattern +
	`|[{},;])`)

type word struct {
	text   string
	column int
}

// splitWords cuts a line into words without knowing anything about their
// categories. Characters that cannot start a word are gathered into a single
// word up to the next space or valid word, so that they can be reported
func splitWords(line string) []word {
	var words []word

	for pos := 0; pos < len(line); {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		if loc := segmentRegex.FindStringIndex(line[pos:]); loc != nil {
			words = append(words, word{text: line[pos : pos+loc[1]], column: pos + 1})
			pos += loc[1]
			continue
		}

		start := pos
		for pos < len(line) {
			r, size := utf8.DecodeRuneInString(line[pos:])
			if unicode.IsSpace(r) || (pos > start && segmentRegex.MatchString(line[pos:])) {
				break
			}
			pos += size
		}
		words = append(words, word{text: line[start:pos], column: start + 1})
	}

	return words
}
