package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single line", "Status: Draft", 1},
		{"trailing newline", "a\n", 1},
		{"three lines", "A\nB\nC", 3},
		{"blank lines", "a\n\n", 2},
		{"only newline", "\n", 1},
		{"crlf", "a\r\nb\r\n", 2},
		{"bare cr", "a\rb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineCount(tt.text))
		})
	}
}

func TestDocument_Changed(t *testing.T) {
	doc := &Document{Path: "a.md", Original: "x", Corrected: "x"}
	assert.False(t, doc.Changed())

	doc.Corrected = "y"
	assert.True(t, doc.Changed())
}
