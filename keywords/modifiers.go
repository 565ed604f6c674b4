package keywords

import "golang.org/x/exp/slices"

// The reserved words of the supported Java subset
var (
	AccessModifiers = []string{"private", "public", "protected"}
	ClassModifiers  = []string{"static"}
)

const (
	ClassKeyword = "class"
)

var (
	// PrimitiveTypes are the data types that are recognized by name alone,
	// both spellings of the string type are accepted
	PrimitiveTypes = []string{"int", "float", "String", "double", "char", "boolean", "string"}
)

// IsAccessModifier reports whether the word is one of the access modifiers
func IsAccessModifier(word string) bool {
	return slices.Contains(AccessModifiers, word)
}

// IsClassModifier reports whether the word can modify a class declaration
func IsClassModifier(word string) bool {
	return slices.Contains(ClassModifiers, word)
}

// IsPrimitiveType reports whether the word names one of the fixed data types
func IsPrimitiveType(word string) bool {
	return slices.Contains(PrimitiveTypes, word)
}
