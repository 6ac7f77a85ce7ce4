package daemon

import (
	"context"

	"go.lsp.dev/protocol"
)

// ExecuteCommand dispatches a host command invoked from the editor.
func (c *controller) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	return c.commands.ExecuteCommand(ctx, params)
}
