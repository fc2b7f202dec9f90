package search

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer splits text on Unicode word boundaries (UAX #29) and drops
// whitespace-only segments. Punctuation is kept as its own token.
type WordTokenizer struct{}

func (WordTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	out := make([]string, 0, 16)
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if isBlank(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
