package similarity

import (
	"regexp"
	"strings"
)

var (
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRE  = regexp.MustCompile(`//[^\n]*`)
	hashCommentRE  = regexp.MustCompile(`#[^\n]*`)
	tripleQuoteRE  = regexp.MustCompile(`(?s)'''.*?'''`)
)

// StripComments removes comments from source code before it enters the
// similarity pipeline. JavaScript/TypeScript lose block and line comments,
// Python loses hash comments and triple-quoted blocks; any other language
// passes through unchanged. Whitespace is collapsed afterward, so code
// similarity reuses the same metrics as prose.
func StripComments(code, language string) string {
	var stripped string

	switch strings.ToLower(language) {
	case "javascript", "typescript":
		stripped = blockCommentRE.ReplaceAllString(code, " ")
		stripped = lineCommentRE.ReplaceAllString(stripped, " ")
	case "python":
		stripped = tripleQuoteRE.ReplaceAllString(code, " ")
		stripped = hashCommentRE.ReplaceAllString(stripped, " ")
	default:
		stripped = code
	}

	return strings.TrimSpace(whitespaceRE.ReplaceAllString(stripped, " "))
}
