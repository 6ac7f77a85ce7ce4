// Package commands serves the fixed tacit.* host command table over
// workspace/executeCommand from the editor.
package commands

import (
	"context"
	"encoding/json"
	stderr "errors"
	"fmt"

	"github.com/tacit-lsp/hoist/src/hoist/controller/decorations"
	"github.com/tacit-lsp/hoist/src/hoist/controller/launcher"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "commands"

const (
	_fmtMsgDispatched     = "Sent %q to the Tacit analyzer."
	_fmtMsgNoSession      = "The Tacit analyzer is not running. Run %q to start it."
	_fmtErrUnknownCommand = "unsupported command %q"
)

// _serverCommands maps each server-bound host command to the command name the
// analyzer serves. The table is fixed; host identifiers stay namespaced
// tacit.* and disjoint from editor-native commands.
var _serverCommands = map[string]string{
	entity.CommandBuildImport:    "build-import",
	entity.CommandBuildConnect:   "build-connect",
	entity.CommandSourcesScan:    "sources-scan",
	entity.CommandDoctorRun:      "doctor-run",
	entity.CommandCompileCascade: "compile-cascade",
	entity.CommandCompileCancel:  "compile-cancel",
}

//go:generate mockgen -source=commands.go -destination=commandsmock/commands_mock.go -package=commandsmock

// Controller dispatches host commands invoked from the editor's command surface.
type Controller interface {
	// ExecuteCommand runs one host command. A missing analyzer session on a
	// server-bound command surfaces a transient message and is not an error.
	ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)
}

// Params are the parameters required to create a new Controller.
type Params struct {
	fx.In

	Launcher      launcher.Controller
	Decorations   decorations.Controller
	EditorGateway editor.Gateway
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
}

type controller struct {
	launcher      launcher.Controller
	decorations   decorations.Controller
	editorGateway editor.Gateway
	logger        *zap.SugaredLogger
	stats         tally.Scope
}

// New creates a new commands Controller.
func New(p Params) Controller {
	return &controller{
		launcher:      p.Launcher,
		decorations:   p.Decorations,
		editorGateway: p.EditorGateway,
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
	}
}

func (c *controller) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	c.stats.Tagged(map[string]string{"command": params.Command}).Counter("executed").Inc(1)

	if serverCommand, ok := _serverCommands[params.Command]; ok {
		return nil, c.forwardToServer(ctx, serverCommand, params.Arguments)
	}

	switch params.Command {
	case entity.CommandLogsToggle:
		// Local only, no analyzer session required.
		return nil, c.editorGateway.ToggleLogs(ctx)

	case entity.CommandServerRestart:
		return nil, c.launcher.Restart(ctx)

	case entity.CommandDecorationExpand:
		return nil, c.expandDecoration(ctx, params.Arguments)

	default:
		return nil, fmt.Errorf(_fmtErrUnknownCommand, params.Command)
	}
}

// forwardToServer relays a server-bound command, surfacing a transient status
// on dispatch and a non-fatal hint when no session is live.
func (c *controller) forwardToServer(ctx context.Context, command string, args []interface{}) error {
	err := c.launcher.ExecuteServerCommand(ctx, command, args)

	var noSession *errors.NoActiveSessionError
	if stderr.As(err, &noSession) {
		c.stats.Counter("no_active_session").Inc(1)
		return c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeWarning,
			Message: fmt.Sprintf(_fmtMsgNoSession, entity.CommandServerRestart),
		})
	}
	if err != nil {
		return err
	}

	if err := c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: fmt.Sprintf(_fmtMsgDispatched, command),
	}); err != nil {
		c.logger.Warnf("reporting command dispatch: %s", err)
	}
	return nil
}

func (c *controller) expandDecoration(ctx context.Context, args []interface{}) error {
	if len(args) == 0 {
		return &errors.MalformedPayloadError{Command: entity.CommandDecorationExpand, Err: errors.New("missing arguments")}
	}

	raw, ok := args[0].(json.RawMessage)
	if !ok {
		return &errors.MalformedPayloadError{Command: entity.CommandDecorationExpand, Err: errors.New("argument is not raw JSON")}
	}

	expand := &entity.DecorationExpandParams{}
	if err := json.Unmarshal(raw, expand); err != nil {
		return &errors.MalformedPayloadError{Command: entity.CommandDecorationExpand, Err: err}
	}
	return c.decorations.Expand(ctx, expand)
}
