package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "collapses whitespace and line breaks",
			input:    "  spaced \t out\nacross\r\nlines  ",
			expected: "spaced out across lines",
		},
		{
			name:     "strips brackets and quotes",
			input:    `(alpha) [beta] {gamma} 'delta' "epsilon"`,
			expected: "alpha beta gamma delta epsilon",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!.,;:",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "splits into words",
			input:    "The quick brown fox",
			expected: []string{"the", "quick", "brown", "fox"},
		},
		{
			name:     "drops short tokens",
			input:    "an AI is to be good",
			expected: []string{"good"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only short tokens",
			input:    "a to of in",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}
