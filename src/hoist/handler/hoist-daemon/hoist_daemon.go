// Package hoistdaemon connects editor JSON-RPC connections to the daemon controller.
package hoistdaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	daemon "github.com/tacit-lsp/hoist/src/hoist/controller/daemon"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/internal/jsonrpcfx"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
)

// Handler represents the hoist daemon's editor-facing JSON-RPC surface.
type Handler interface {
	// ConnectionManager returns the manager registered with the serving layer.
	ConnectionManager() jsonrpcfx.ConnectionManager
}

type handler struct {
	daemon            daemon.Controller
	connectionManager jsonrpcfx.ConnectionManager
	stats             tally.Scope
}

// New constructs a new hoist-daemon Handler.
func New(ctrl daemon.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}

	return &handler{
		daemon:            ctrl,
		connectionManager: &c,
		stats:             stats,
	}, nil
}

func (h *handler) ConnectionManager() jsonrpcfx.ConnectionManager {
	return h.connectionManager
}

type jsonRPCConnectionManager struct {
	ctrl  daemon.Controller
	stats tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		daemon: c.ctrl,
		uuid:   id,
		stats:  c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
