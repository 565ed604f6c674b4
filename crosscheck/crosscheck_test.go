package crosscheck

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/NickyBoy89/javafront/parsing"
	"github.com/NickyBoy89/javafront/tokenizer"
)

func loadFile(t *testing.T, fileName string) ([]byte, *parsing.ClassDeclaration) {
	t.Helper()
	source, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}

	logger, _ := test.NewNullLogger()
	tokens, _ := tokenizer.New(logger).Tokenize(string(source))
	class, err := parsing.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return source, class
}

func TestExtractSampleClass(t *testing.T) {
	source, _ := loadFile(t, "../testfiles/Estudiante.java")

	outline, err := Extract(context.Background(), source)
	if err != nil {
		t.Fatal(err)
	}

	expected := &Outline{
		ClassName: "estudiante",
		Modifier:  "public",
		Fields: []parsing.Field{
			{Type: "int", Variables: []string{"cr", "t", "e", "q"}},
			{Type: "ArrayList<Persona>", Variables: []string{"listaPersonas"}},
			{Type: "string", Variables: []string{"nombre"}},
			{Type: "int", Variables: []string{"edad"}},
			{Type: "float", Variables: []string{"var34h5"}},
		},
	}
	if !reflect.DeepEqual(outline, expected) {
		t.Errorf("Actual: %v did not meet expected: %v", outline, expected)
	}
}

func TestParsesAgree(t *testing.T) {
	for _, fileName := range []string{
		"../testfiles/Estudiante.java",
		"../testfiles/Persona.java",
		"../testfiles/Empty.java",
	} {
		source, class := loadFile(t, fileName)

		mismatches, err := Check(context.Background(), source, class)
		if err != nil {
			t.Fatalf("%s: %v", fileName, err)
		}
		if len(mismatches) != 0 {
			t.Errorf("%s: unexpected mismatches: %v", fileName, mismatches)
		}
	}
}

func TestCompareReportsDifferences(t *testing.T) {
	class := &parsing.ClassDeclaration{
		Name: "A",
		Body: &parsing.ClassBody{
			Declarations: []*parsing.VariableDeclaration{
				{Field: parsing.Field{Type: "int", Variables: []string{"a", "b"}}},
			},
		},
	}
	outline := &Outline{
		ClassName: "B",
		Modifier:  "public",
		Fields: []parsing.Field{
			{Type: "long", Variables: []string{"a"}, Modifier: "private"},
			{Type: "int", Variables: []string{"c"}},
		},
	}

	expected := []Mismatch{
		{"class name", "A", "B"},
		{"class modifier", "", "public"},
		{"field declarations", "1", "2"},
		{"field 0 type", "int", "long"},
		{"field 0 modifier", "", "private"},
		{"field 0 variables", "a, b", "a"},
	}
	if mismatches := Compare(class, outline); !reflect.DeepEqual(mismatches, expected) {
		t.Errorf("Actual: %v did not meet expected: %v", mismatches, expected)
	}
}

func TestUnsupportedMember(t *testing.T) {
	source := []byte("class A {\n  int getX() { return 0; }\n}\n")
	if _, err := Extract(context.Background(), source); err == nil {
		t.Error("Expected methods to be rejected")
	}
}

func TestMissingClass(t *testing.T) {
	if _, err := Extract(context.Background(), []byte("interface A {}")); err == nil {
		t.Error("Expected an error when there is no class")
	}
}
