// Package operation defines the closed set of named text operations and
// resolves user-supplied names to them.
//
// Each operation maps to one transform in the transformer package (or, for
// CSV, to the csvtable package). The set is fixed at compile time:
// Kinds() enumerates every kind in a stable order, and Parse() matches a
// user-supplied name case-insensitively against the canonical names.
package operation

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported text operations.
type Kind int

const (
	// CamelCase joins words into camelCase: "hello world" -> "helloWorld".
	CamelCase Kind = iota

	// CSV renders comma-separated input as an aligned table.
	CSV

	// LowerCase maps every character to its lowercase form.
	LowerCase

	// NoSpaces removes all whitespace characters from the input.
	NoSpaces

	// Slugify produces a URL-safe slug: "Hello, World!" -> "hello-world".
	Slugify

	// SnakeCase joins words with underscores: "hello world" -> "hello_world".
	SnakeCase

	// UpperCase maps every character to its uppercase form.
	UpperCase
)

// kinds lists every Kind in declaration order. This is the stable order
// used by Kinds(), Names(), and all help text.
var kinds = []Kind{CamelCase, CSV, LowerCase, NoSpaces, Slugify, SnakeCase, UpperCase}

// aliasNoSpaces is the hyphenated spelling accepted for the nospaces
// operation, kept for backward compatibility with earlier releases.
const aliasNoSpaces = "no-spaces"

// String returns the canonical lowercase name of the operation.
func (k Kind) String() string {
	switch k {
	case CamelCase:
		return "camelcase"
	case CSV:
		return "csv"
	case LowerCase:
		return "lowercase"
	case NoSpaces:
		return "nospaces"
	case Slugify:
		return "slugify"
	case SnakeCase:
		return "snakecase"
	case UpperCase:
		return "uppercase"
	default:
		return "unknown"
	}
}

// Describe returns a one-line description of the operation, suitable for
// help text and tool listings.
func (k Kind) Describe() string {
	switch k {
	case CamelCase:
		return `join words into camelCase: "hello world" -> "helloWorld"`
	case CSV:
		return "render comma-separated input as an aligned table"
	case LowerCase:
		return `map every character to lowercase: "Hello World" -> "hello world"`
	case NoSpaces:
		return `remove all whitespace: "hello world" -> "helloworld"`
	case Slugify:
		return `produce a URL-safe slug: "Hello, World!" -> "hello-world"`
	case SnakeCase:
		return `join words with underscores: "hello world" -> "hello_world"`
	case UpperCase:
		return `map every character to uppercase: "hello world" -> "HELLO WORLD"`
	default:
		return "unknown operation"
	}
}

// Kinds returns all operation kinds in a fixed, stable order.
// The returned slice is a fresh copy; callers may modify it freely.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Names returns the canonical operation names in the same stable order
// as Kinds(). Aliases are not included.
func Names() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

// Parse resolves a user-supplied operation name to its Kind.
//
// Matching trims surrounding whitespace and compares case-insensitively
// against each canonical name; there is no partial or fuzzy matching.
// The hyphenated alias "no-spaces" resolves to NoSpaces. Unrecognized
// names fail with an *UnknownOperationError carrying the name exactly as
// it was provided.
func Parse(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for _, k := range kinds {
		if strings.EqualFold(trimmed, k.String()) {
			return k, nil
		}
	}
	if strings.EqualFold(trimmed, aliasNoSpaces) {
		return NoSpaces, nil
	}
	return 0, &UnknownOperationError{Provided: name}
}

// MustParse is like Parse but panics on unrecognized names.
// Intended for tests and compile-time-known names only.
func MustParse(name string) Kind {
	k, err := Parse(name)
	if err != nil {
		panic(fmt.Sprintf("operation: MustParse(%q): %v", name, err))
	}
	return k
}
