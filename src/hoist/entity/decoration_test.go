package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/protocol"
)

func TestIsWorksheet(t *testing.T) {
	testCases := []struct {
		name     string
		uri      protocol.DocumentURI
		expected bool
	}{
		{
			name:     "worksheet",
			uri:      protocol.DocumentURI("file:///repo/notebooks/scratch.worksheet.tc"),
			expected: true,
		},
		{
			name:     "regular source",
			uri:      protocol.DocumentURI("file:///repo/src/main.tc"),
			expected: false,
		},
		{
			name:     "suffix in directory name only",
			uri:      protocol.DocumentURI("file:///repo/a.worksheet.tc/main.tc"),
			expected: false,
		},
		{
			name:     "empty",
			uri:      protocol.DocumentURI(""),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsWorksheet(tc.uri))
		})
	}
}

func TestIsTacitDocument(t *testing.T) {
	testCases := []struct {
		name       string
		uri        protocol.DocumentURI
		languageID protocol.LanguageIdentifier
		expected   bool
	}{
		{
			name:     "source by extension",
			uri:      protocol.DocumentURI("file:///repo/src/main.tc"),
			expected: true,
		},
		{
			name:     "worksheet by extension",
			uri:      protocol.DocumentURI("file:///repo/scratch.worksheet.tc"),
			expected: true,
		},
		{
			name:     "other language by extension",
			uri:      protocol.DocumentURI("file:///repo/notes.md"),
			expected: false,
		},
		{
			name:       "declared language ID without extension",
			uri:        protocol.DocumentURI("untitled:Scratch-1"),
			languageID: LanguageID,
			expected:   true,
		},
		{
			name:       "declared foreign language ID wins over extension",
			uri:        protocol.DocumentURI("file:///repo/vendored.tc"),
			languageID: "scala",
			expected:   false,
		},
		{
			name:     "empty",
			uri:      protocol.DocumentURI(""),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsTacitDocument(tc.uri, tc.languageID))
		})
	}
}
