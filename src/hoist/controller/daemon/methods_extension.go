package daemon

import (
	"context"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"go.uber.org/multierr"
)

// DidFocusTextDocument records the newly focused document and relays the event
// to the analyzer when the document belongs to the Tacit language.
func (c *controller) DidFocusTextDocument(ctx context.Context, params *entity.FocusTextDocumentParams) error {
	err := c.decorations.FocusGained(ctx, params.TextDocument.URI)

	if !entity.IsTacitDocument(params.TextDocument.URI, params.LanguageID) {
		return err
	}
	return multierr.Append(err, c.launcher.NotifyDidFocus(ctx, params.TextDocument.URI))
}

// DidBlurTextDocument clears per-document focus state. Blur events stay local
// to the daemon; the analyzer only learns about focus.
func (c *controller) DidBlurTextDocument(ctx context.Context, params *entity.FocusTextDocumentParams) error {
	return c.decorations.FocusLost(ctx, params.TextDocument.URI)
}

// DoctorVisibilityDidChange records whether the editor currently displays the doctor view.
func (c *controller) DoctorVisibilityDidChange(ctx context.Context, params *entity.DoctorVisibilityParams) error {
	return c.doctor.SetVisibility(ctx, params.Visible)
}
