// Package transformer implements the text transforms behind each operation.
//
// All transforms are pure, total functions: they never fail, and for any
// input string (empty, whitespace-only, non-alphabetic) they return a
// deterministic output. Unknown-operation handling happens earlier, in the
// operation package; by the time Apply runs, the kind is valid.
//
// SnakeCase and CamelCase share one word-splitting policy, documented on
// splitWords and locked in by the corpus tests: whitespace and punctuation
// runs, lower-to-upper transitions, and letter/digit boundaries all split
// words, and an uppercase run followed by a lowercase letter splits before
// its last upper ("HTTPServer" -> "http_server").
package transformer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/strtools/operation"
)

// settings holds optional behavior for ApplyWithOptions.
type settings struct {
	logger Logger
}

// Option configures optional behavior for ApplyWithOptions.
type Option func(*settings)

// WithLogger sets a structured logger for debug output during transforms.
// The default is NopLogger, which discards all output.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply dispatches input to the transform for kind and returns the result.
// It is total: every kind produces an output for every input. Kinds that
// are not plain string transforms (CSV) pass input through unchanged.
func Apply(kind operation.Kind, input string) string {
	return ApplyWithOptions(kind, input)
}

// ApplyWithOptions is Apply with optional behavior, currently a debug
// logger set via WithLogger.
func ApplyWithOptions(kind operation.Kind, input string, opts ...Option) string {
	set := newSettings(opts)
	set.logger.Debug("applying transform", "operation", kind.String(), "input_len", len(input))

	var out string
	switch kind {
	case operation.UpperCase:
		out = UpperCase(input)
	case operation.LowerCase:
		out = LowerCase(input)
	case operation.NoSpaces:
		out = NoSpaces(input)
	case operation.SnakeCase:
		out = SnakeCase(input)
	case operation.CamelCase:
		out = CamelCase(input)
	case operation.Slugify:
		out = Slugify(input)
	default:
		// CSV is rendered by the csvtable package, not mapped rune-wise;
		// treat it (and any future non-string kind) as identity here.
		out = input
	}

	set.logger.Debug("transform complete", "operation", kind.String(), "output_len", len(out))
	return out
}

// UpperCase maps every character to its uppercase form using full Unicode
// case mapping ("straße" -> "STRASSE"). Non-alphabetic characters pass
// through unchanged.
func UpperCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// LowerCase maps every character to its lowercase form. Non-alphabetic
// characters pass through unchanged.
func LowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// NoSpaces removes every Unicode whitespace character, preserving the
// relative order of the remaining characters.
func NoSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SnakeCase splits input into words, lowercases each, and joins them with
// single underscores. Consecutive separators collapse, and the result
// never starts or ends with an underscore.
// Example: "Hello World" -> "hello_world"
// Example: "HTTPServer" -> "http_server"
func SnakeCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	caser := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "_")
}

// CamelCase splits input into words, lowercases the first, capitalizes
// each subsequent word, and concatenates them with no separator.
// Example: "hello world" -> "helloWorld"
// Example: "HTTP server" -> "httpServer"
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(cases.Lower(language.Und).String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// capitalize uppercases the first rune of word and lowercases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(word[size:])
}
