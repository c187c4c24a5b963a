package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "John Smith\r\nBoston,   MA\n\n\n\nEDUCATION\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "John Smith\nBoston, MA\n\nEDUCATION", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := ExtractText(path)

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".odt", ufe.Ext)
	assert.Equal(t, path, ufe.Path)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses horizontal runs per line",
			input:    "a \t b\nc\t\td",
			expected: "a b\nc d",
		},
		{
			name:     "keeps single blank line",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "collapses long blank stretches",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "replaces non-breaking spaces",
			input:    "a\u00A0b",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeWhitespace(tt.input))
		})
	}
}
