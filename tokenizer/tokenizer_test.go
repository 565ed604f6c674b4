package tokenizer

import (
	"os"
	"reflect"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type pair struct {
	Category Category
	Lexeme   string
}

func pairsOf(tokens []Token) []pair {
	pairs := make([]pair, len(tokens))
	for ind, tok := range tokens {
		pairs[ind] = pair{tok.Category, tok.Lexeme}
	}
	return pairs
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		word     string
		expected Category
	}{
		{"static", ClassModifier},
		{"class", ClassKeyword},
		{"public", AccessModifier},
		{"private", AccessModifier},
		{"protected", AccessModifier},
		{"{", OpenBrace},
		{"}", CloseBrace},
		{",", Comma},
		{";", Terminator},
		{"int", DataType},
		{"String", DataType},
		{"string", DataType},
		{"boolean", DataType},
		{"ArrayList<Persona>", DataType},
		{"Map<K>", DataType},
		{"Persona", Identifier},
		{"var34h5", Identifier},
		{"_hidden", Identifier},
		{"classes", Identifier},
		{"publicity", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			category, ok := Classify(tt.word)
			if !ok {
				t.Fatalf("Expected %q to be classified", tt.word)
			}
			if category != tt.expected {
				t.Errorf("Expected: %v, Actual: %v", tt.expected, category)
			}
		})
	}
}

func TestClassifyRejects(t *testing.T) {
	for _, word := range []string{"!", "34", "#", "<", "ArrayList<>", "a.b", ""} {
		if category, ok := Classify(word); ok {
			t.Errorf("Expected %q to be rejected, got %v", word, category)
		}
	}
}

func TestUnrecognizedWordIsNotFatal(t *testing.T) {
	logger, hook := test.NewNullLogger()

	tokens, diagnostics := New(logger).Tokenize("int x!;")

	expected := []pair{
		{DataType, "int"},
		{Identifier, "x"},
		{Terminator, ";"},
	}
	if !reflect.DeepEqual(pairsOf(tokens), expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, pairsOf(tokens))
	}

	expectedDiagnostics := []Diagnostic{{Word: "!", Position: Position{Line: 1, Column: 6}}}
	if !reflect.DeepEqual(diagnostics, expectedDiagnostics) {
		t.Errorf("Expected: %v, Actual: %v", expectedDiagnostics, diagnostics)
	}

	if len(hook.AllEntries()) != 1 {
		t.Fatalf("Expected one logged diagnostic, got %d", len(hook.AllEntries()))
	}
	entry := hook.LastEntry()
	if entry.Level != log.WarnLevel {
		t.Errorf("Expected warning level, got %v", entry.Level)
	}
	if entry.Data["word"] != "!" {
		t.Errorf("Expected logged word to be %q, got %v", "!", entry.Data["word"])
	}
}

func TestGenericTypeIsOneToken(t *testing.T) {
	tokens, diagnostics := New(nil).Tokenize("ArrayList<Persona> listaPersonas;")
	if len(diagnostics) != 0 {
		t.Errorf("Unexpected diagnostics: %v", diagnostics)
	}

	expected := []pair{
		{DataType, "ArrayList<Persona>"},
		{Identifier, "listaPersonas"},
		{Terminator, ";"},
	}
	if !reflect.DeepEqual(pairsOf(tokens), expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, pairsOf(tokens))
	}
}

func TestUnclosedGenericIsSplit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	tokens, diagnostics := New(logger).Tokenize("ArrayList<Persona x;")

	expected := []pair{
		{Identifier, "ArrayList"},
		{Identifier, "Persona"},
		{Identifier, "x"},
		{Terminator, ";"},
	}
	if !reflect.DeepEqual(pairsOf(tokens), expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, pairsOf(tokens))
	}
	if len(diagnostics) != 1 || diagnostics[0].Word != "<" {
		t.Errorf("Expected a single diagnostic for %q, got %v", "<", diagnostics)
	}
}

func TestPositions(t *testing.T) {
	tokens, _ := New(nil).Tokenize("\n  public class A{\n\n}\n")

	expected := []Token{
		{Category: AccessModifier, Lexeme: "public", Position: Position{Line: 2, Column: 3}},
		{Category: ClassKeyword, Lexeme: "class", Position: Position{Line: 2, Column: 10}},
		{Category: Identifier, Lexeme: "A", Position: Position{Line: 2, Column: 16}},
		{Category: OpenBrace, Lexeme: "{", Position: Position{Line: 2, Column: 17}},
		{Category: CloseBrace, Lexeme: "}", Position: Position{Line: 4, Column: 1}},
	}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, tokens)
	}
}

func TestBlankSource(t *testing.T) {
	tokens, diagnostics := New(nil).Tokenize("  \n\t\n")
	if len(tokens) != 0 || len(diagnostics) != 0 {
		t.Errorf("Expected nothing from blank source, got %v and %v", tokens, diagnostics)
	}
}

func TestSampleClass(t *testing.T) {
	source, err := os.ReadFile("../testfiles/Estudiante.java")
	if err != nil {
		t.Fatalf("Reading file failed with err: %v", err)
	}

	tokens, diagnostics := New(nil).Tokenize(string(source))
	if len(diagnostics) != 0 {
		t.Errorf("Unexpected diagnostics: %v", diagnostics)
	}

	expected := []pair{
		{AccessModifier, "public"}, {ClassKeyword, "class"}, {Identifier, "estudiante"}, {OpenBrace, "{"},
		{DataType, "int"}, {Identifier, "cr"}, {Comma, ","}, {Identifier, "t"}, {Comma, ","},
		{Identifier, "e"}, {Comma, ","}, {Identifier, "q"}, {Terminator, ";"},
		{DataType, "ArrayList<Persona>"}, {Identifier, "listaPersonas"}, {Terminator, ";"},
		{DataType, "string"}, {Identifier, "nombre"}, {Terminator, ";"},
		{DataType, "int"}, {Identifier, "edad"}, {Terminator, ";"},
		{DataType, "float"}, {Identifier, "var34h5"}, {Terminator, ";"},
		{CloseBrace, "}"},
	}
	if !reflect.DeepEqual(pairsOf(tokens), expected) {
		t.Errorf("Expected: %v, Actual: %v", expected, pairsOf(tokens))
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Category: DataType, Lexeme: "int"}
	if tok.String() != `(DataType, "int")` {
		t.Errorf("Unexpected token string: %s", tok)
	}
	if EOF.String() != "(None, None)" {
		t.Errorf("Unexpected sentinel string: %s", EOF)
	}
}
