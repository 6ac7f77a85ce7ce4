package entity

import (
	"strings"

	"go.lsp.dev/protocol"
)

const (
	// LanguageID is the LSP language identifier for Tacit documents.
	LanguageID protocol.LanguageIdentifier = "tacit"

	// FileExtension of Tacit source documents.
	FileExtension = ".tc"

	// WorksheetSuffix marks worksheet documents, whose decorations are cleared on losing
	// visibility rather than persisted.
	WorksheetSuffix = ".worksheet.tc"
)

// IsWorksheet reports whether the URI names a worksheet document.
func IsWorksheet(uri protocol.DocumentURI) bool {
	return strings.HasSuffix(string(uri), WorksheetSuffix)
}

// IsTacitDocument reports whether a document belongs to the Tacit language.
// A declared language ID decides when the editor sends one; otherwise the
// file extension does.
func IsTacitDocument(uri protocol.DocumentURI, languageID protocol.LanguageIdentifier) bool {
	if languageID != "" {
		return languageID == LanguageID
	}
	return strings.HasSuffix(string(uri), FileExtension)
}

// DecorationOptions is one inline annotation: a rendered range with its hover payload.
type DecorationOptions struct {
	Range protocol.Range `json:"range"`
	// RenderText is displayed inline after the range, typically a worksheet evaluation result.
	RenderText   string `json:"renderText,omitempty"`
	HoverMessage string `json:"hoverMessage,omitempty"`
}

// PublishDecorationsParams is the payload of a tacit/publishDecorations push.
// The options replace any previously published set for the URI wholesale.
type PublishDecorationsParams struct {
	URI     protocol.DocumentURI `json:"uri"`
	Options []DecorationOptions  `json:"options"`
}

// ShowDecorationHoverParams asks the editor to render one decoration's payload
// in a transient overlay at the given range.
type ShowDecorationHoverParams struct {
	URI          protocol.DocumentURI `json:"uri"`
	Range        protocol.Range       `json:"range"`
	HoverMessage string               `json:"hoverMessage"`
}

// FocusTextDocumentParams carries the document of a focus or blur event.
type FocusTextDocumentParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	// LanguageID optionally declares the document's language.
	LanguageID protocol.LanguageIdentifier `json:"languageId,omitempty"`
}

// DecorationExpandParams locates the cursor for a tacit.decoration-expand command.
type DecorationExpandParams struct {
	URI      protocol.DocumentURI `json:"uri"`
	Position protocol.Position    `json:"position"`
}
