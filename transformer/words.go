package transformer

import "unicode"

// splitWords breaks input into words using the shared boundary policy for
// SnakeCase and CamelCase:
//
//   - any run of non-letter, non-digit characters separates words and is
//     discarded: "hello,  world" -> [hello world]
//   - a lower-to-upper transition starts a new word: "helloWorld" -> [hello World]
//   - in an uppercase run followed by a lowercase letter, the last upper
//     belongs to the next word: "HTTPServer" -> [HTTP Server]
//   - letter-to-digit and digit-to-letter transitions are boundaries:
//     "user2name" -> [user 2 name]
//
// Empty and separator-only input yields no words.
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 {
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if wordBoundary(current[len(current)-1], r, next) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

// wordBoundary reports whether a new word starts at r. prev is the last
// rune of the word being built; next is the rune after r (0 at end of input).
func wordBoundary(prev, r, next rune) bool {
	// Crossing between letters and digits splits in both directions.
	if unicode.IsDigit(r) != unicode.IsDigit(prev) {
		return true
	}
	// A lowercase (or non-cased) rune followed by an uppercase rune.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}
	// Inside an uppercase run, the last upper before a lowercase rune
	// starts the next word: the "S" in "HTTPServer".
	if unicode.IsUpper(prev) && unicode.IsUpper(r) && unicode.IsLower(next) {
		return true
	}
	return false
}
