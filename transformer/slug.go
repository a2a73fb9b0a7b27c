package transformer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters, strips combining marks, and recomposes,
// reducing accented characters to their base form: "é" -> "e", "ü" -> "u".
// Characters with no decomposition are left alone.
func foldMarks(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		// Folding is best-effort; slug on the raw input instead.
		return s
	}
	return folded
}

// Slugify produces a URL-safe lowercase slug: accents fold to their base
// ASCII form, case folding handles letters without a simple lowercase
// ("ß" -> "ss"), every run of non-alphanumeric characters becomes a
// single hyphen, and leading/trailing hyphens are stripped.
// Example: "Hello, World!" -> "hello-world"
// Example: "Crème Brûlée" -> "creme-brulee"
func Slugify(s string) string {
	folded := cases.Fold().String(foldMarks(s))

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		isSafe := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isSafe {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
