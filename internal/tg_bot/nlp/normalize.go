// Package nlp provides the text preparation used around the opaque
// collaborator boundaries: ticket normalization for the classifier and
// location extraction for the weather lookup.
package nlp

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball/russian"
)

// Normalizer prepares free-form Russian text for classification:
// punctuation and digits are stripped, stop words removed, the rest
// lowercased and stemmed.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the cleaned, stemmed representation of text.
func (n *Normalizer) Normalize(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)

	cleaned = stopwords.CleanString(cleaned, "ru", false)

	words := strings.Fields(cleaned)
	stemmed := make([]string, 0, len(words))
	for _, word := range words {
		stemmed = append(stemmed, russian.Stem(strings.ToLower(word), false))
	}
	return strings.Join(stemmed, " ")
}
