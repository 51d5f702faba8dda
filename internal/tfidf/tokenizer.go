package tfidf

import (
	"regexp"
	"strings"
)

// termPattern matches a maximal run of word characters (letters, digits,
// underscore) of length two or more. Single-character tokens carry almost
// no lexical signal and are dropped.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize splits text into lowercase terms. No stopword removal, no
// stemming, unigrams only.
func Tokenize(text string) []string {
	return termPattern.FindAllString(strings.ToLower(text), -1)
}
