// Package textsearch normalizes text for the SQLite full-text index. FTS5
// ships no French stemmer, so French text is stemmed here both when it is
// indexed (through the stem_fr SQL function) and when it is queried.
package textsearch

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/french"
)

// French lowercases text, splits it into words and replaces each word with
// its Snowball stem. Stop words are kept as they are.
func French(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		words[i] = french.Stem(w, false)
	}
	return strings.Join(words, " ")
}
