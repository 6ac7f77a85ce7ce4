package hoistdaemon

import (
	"context"

	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ExecuteCommand dispatches a host command invocation to the daemon's command table.
func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.daemon.ExecuteCommand(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}
