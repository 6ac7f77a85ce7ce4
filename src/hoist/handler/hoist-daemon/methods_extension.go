package hoistdaemon

import (
	"context"

	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"go.lsp.dev/jsonrpc2"
)

// DidFocusTextDocument records editor focus on a document.
func (r *jsonRPCRouter) DidFocusTextDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToFocusTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.daemon.DidFocusTextDocument(ctx, params)
	return reply(ctx, nil, err)
}

// DidBlurTextDocument records editor focus leaving a document.
func (r *jsonRPCRouter) DidBlurTextDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToFocusTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.daemon.DidBlurTextDocument(ctx, params)
	return reply(ctx, nil, err)
}

// DoctorVisibilityDidChange records the doctor view's editor-side visibility.
func (r *jsonRPCRouter) DoctorVisibilityDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDoctorVisibilityParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.daemon.DoctorVisibilityDidChange(ctx, params)
	return reply(ctx, nil, err)
}
