package similarity

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	punctuationRE = regexp.MustCompile(`[.,;:!?()\[\]{}'"]`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text, strips common punctuation and collapses runs of
// whitespace (including line breaks) into single spaces.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = punctuationRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize normalizes text and splits it into words, dropping tokens of
// length <= 2. Short connective words are suppressed by length rather than
// a stop-word list.
func Tokenize(text string) []string {
	return tokensOf(Normalize(text))
}

// tokensOf splits an already-normalized string into tokens.
func tokensOf(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
