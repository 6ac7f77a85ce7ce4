package launcher

import (
	"context"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// handleServerRequest routes messages originating from the tacit-server
// process: extension notifications to their controllers, standard window and
// diagnostics traffic straight through to the editor. The serving context
// carries the session UUID, so gateway calls reach the right editor.
func (c *controller) handleServerRequest(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	c.stats.SubScope("server_inbound").Tagged(map[string]string{"method": req.Method()}).Counter("received").Inc(1)

	switch req.Method() {
	case entity.MethodExecuteClientCommand:
		cmd, err := mapper.RequestToClientCommand(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.router.Execute(ctx, cmd))

	case entity.MethodPublishDecorations:
		params, err := mapper.RequestToPublishDecorationsParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.decorations.HandlePublish(ctx, params))

	case protocol.MethodWindowShowMessage:
		params, err := mapper.RequestToShowMessageParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.editorGateway.ShowMessage(ctx, params))

	case protocol.MethodWindowShowMessageRequest:
		params, err := mapper.RequestToShowMessageRequestParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		result, err := c.editorGateway.ShowMessageRequest(ctx, params)
		return reply(ctx, result, err)

	case protocol.MethodWindowLogMessage:
		params, err := mapper.RequestToLogMessageParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.editorGateway.LogMessage(ctx, params))

	case protocol.MethodTextDocumentPublishDiagnostics:
		params, err := mapper.RequestToPublishDiagnosticsParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.editorGateway.PublishDiagnostics(ctx, params))

	case protocol.MethodProgress:
		params, err := mapper.RequestToProgressParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.editorGateway.Progress(ctx, params))

	case protocol.MethodWorkDoneProgressCreate:
		params, err := mapper.RequestToWorkDoneProgressCreateParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, c.editorGateway.WorkDoneProgressCreate(ctx, params))

	case protocol.MethodShowDocument:
		params, err := mapper.RequestToShowDocumentParams(req)
		if err != nil {
			return reply(ctx, nil, err)
		}
		result, err := c.editorGateway.ShowDocument(ctx, params)
		return reply(ctx, result, err)

	default:
		c.logger.Debugw("unrouted analyzer message", "method", req.Method())
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}
