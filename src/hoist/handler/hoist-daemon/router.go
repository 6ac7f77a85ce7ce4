package hoistdaemon

import (
	"context"

	"github.com/gofrs/uuid"
	daemon "github.com/tacit-lsp/hoist/src/hoist/controller/daemon"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type jsonRPCRouter struct {
	daemon daemon.Controller
	uuid   uuid.UUID
	stats  tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("received").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	case entity.MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Workspace methods.
	case protocol.MethodWorkspaceExecuteCommand:
		return r.ExecuteCommand(ctx, reply, req)

	// Tacit extension methods.
	case entity.MethodDidFocusTextDocument:
		return r.DidFocusTextDocument(ctx, reply, req)

	case entity.MethodDidBlurTextDocument:
		return r.DidBlurTextDocument(ctx, reply, req)

	case entity.MethodDoctorVisibilityDidChange:
		return r.DoctorVisibilityDidChange(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
