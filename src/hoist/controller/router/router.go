// Package router translates tacit/executeClientCommand notifications from the
// analyzer into editor-side effects.
package router

import (
	"context"
	"encoding/json"
	stderr "errors"
	"fmt"
	"time"

	"github.com/tacit-lsp/hoist/src/hoist/controller/doctor"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/clock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "router"

// _gotoFocusDelay is waited after focusing the editor window and before the
// navigation call. Navigating immediately after a focus change races a
// request-id reuse quirk in some editor hosts and loses the navigation.
// Unclear whether the underlying race still exists in current hosts.
const _gotoFocusDelay = 100 * time.Millisecond

//go:generate mockgen -source=router.go -destination=routermock/router_mock.go -package=routermock

// Controller dispatches a single client command to its host-side effect.
type Controller interface {
	// Execute routes one notification. Failures are isolated to that
	// notification: Execute never returns an error that should tear down the
	// session, and unknown commands are informational only.
	Execute(ctx context.Context, cmd *entity.ClientCommand) error
}

// Params are the parameters required to create a new Controller.
type Params struct {
	fx.In

	EditorGateway editor.Gateway
	Doctor        doctor.Controller
	Clock         clock.Clock
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
}

type controller struct {
	editorGateway editor.Gateway
	doctor        doctor.Controller
	clock         clock.Clock
	logger        *zap.SugaredLogger
	stats         tally.Scope
}

// New creates a new router Controller.
func New(p Params) Controller {
	return &controller{
		editorGateway: p.EditorGateway,
		doctor:        p.Doctor,
		clock:         p.Clock,
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
	}
}

func (c *controller) Execute(ctx context.Context, cmd *entity.ClientCommand) error {
	kind := cmd.Kind()
	c.stats.Tagged(map[string]string{"command": kind.String()}).Counter("routed").Inc(1)

	switch kind {
	case entity.ClientCommandGotoLocation:
		return c.gotoLocation(ctx, cmd)

	case entity.ClientCommandDoctorRun:
		return c.doctorRun(ctx, cmd)

	case entity.ClientCommandDoctorReload:
		return c.doctor.Reload(ctx)

	case entity.ClientCommandDiagnosticsFocus:
		return c.editorGateway.FocusDiagnostics(ctx)

	case entity.ClientCommandLogsToggle:
		return c.editorGateway.ToggleLogs(ctx)

	default:
		// The analyzer's protocol surface evolves independently of this
		// daemon, so an unrecognized command is never a fault.
		c.logger.Infow("unknown client command received", "command", cmd.Command)
		return c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: fmt.Sprintf("Unknown command received from the Tacit analyzer: %q", cmd.Command),
		})
	}
}

func (c *controller) gotoLocation(ctx context.Context, cmd *entity.ClientCommand) error {
	location, err := locationArgument(cmd)
	if err != nil {
		// A navigation with nowhere to go is dropped, not surfaced.
		c.logger.Warnw("dropping goto-location", "error", err)
		return nil
	}

	c.clock.Sleep(_gotoFocusDelay)

	if _, err := c.editorGateway.ShowDocument(ctx, &protocol.ShowDocumentParams{
		URI:       protocol.URI(location.URI),
		TakeFocus: true,
		Selection: &location.Range,
	}); err != nil {
		return fmt.Errorf("navigating to %s: %w", location.URI, err)
	}
	return nil
}

func (c *controller) doctorRun(ctx context.Context, cmd *entity.ClientCommand) error {
	if len(cmd.Arguments) == 0 {
		c.logger.Warnw("dropping doctor-run without a payload")
		return nil
	}

	// The report arrives as a JSON document embedded in a string argument.
	var embedded string
	payload := []byte(cmd.Arguments[0])
	if err := json.Unmarshal(cmd.Arguments[0], &embedded); err == nil {
		payload = []byte(embedded)
	}

	err := c.doctor.Show(ctx, payload)
	var malformed *errors.MalformedPayloadError
	if stderr.As(err, &malformed) {
		c.logger.Warnw("doctor payload rejected", "error", err)
		return c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: "The Tacit analyzer sent a doctor report that could not be parsed.",
		})
	}
	return err
}

func locationArgument(cmd *entity.ClientCommand) (*protocol.Location, error) {
	if len(cmd.Arguments) == 0 {
		return nil, errors.New("missing location argument")
	}

	location := &protocol.Location{}
	if err := json.Unmarshal(cmd.Arguments[0], location); err != nil {
		return nil, fmt.Errorf("parsing location argument: %w", err)
	}
	if location.URI == "" {
		return nil, errors.New("location argument without a URI")
	}
	return location, nil
}
