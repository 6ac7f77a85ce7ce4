// Package doctor tracks and renders the analyzer's doctor report per session.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	tally "github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "doctor"

//go:generate mockgen -source=doctor.go -destination=doctormock/doctor_mock.go -package=doctormock

// Controller owns the editor-side doctor view state for each session.
type Controller interface {
	// Show parses the embedded JSON report and renders it in the editor.
	// A malformed payload is a MalformedPayloadError; the view is not opened.
	Show(ctx context.Context, payload []byte) error
	// Reload re-renders the last report, only if the doctor view is visible.
	Reload(ctx context.Context) error
	// SetVisibility records whether the editor currently displays the doctor view.
	SetVisibility(ctx context.Context, visible bool) error
	// EndSession discards state for an ended session.
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are the parameters required to create a new Controller.
type Params struct {
	fx.In

	EditorGateway editor.Gateway
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
}

type viewState struct {
	lastReport *entity.DoctorReport
	visible    bool
}

type controller struct {
	editorGateway editor.Gateway
	logger        *zap.SugaredLogger
	stats         tally.Scope

	mu    sync.Mutex
	views map[uuid.UUID]*viewState
}

// New creates a new doctor Controller.
func New(p Params) Controller {
	return &controller{
		editorGateway: p.EditorGateway,
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
		views:         make(map[uuid.UUID]*viewState),
	}
}

func (c *controller) Show(ctx context.Context, payload []byte) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	report := &entity.DoctorReport{}
	if err := json.Unmarshal(payload, report); err != nil {
		c.stats.Counter("malformed_payload").Inc(1)
		return &errors.MalformedPayloadError{Command: entity.CommandDoctorRun, Err: err}
	}

	c.mu.Lock()
	view := c.view(id)
	view.lastReport = report
	c.mu.Unlock()

	if err := c.editorGateway.ShowDoctor(ctx, report); err != nil {
		return fmt.Errorf("rendering doctor report: %w", err)
	}
	c.stats.Counter("shown").Inc(1)
	return nil
}

func (c *controller) Reload(ctx context.Context) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	view := c.view(id)
	report := view.lastReport
	visible := view.visible
	c.mu.Unlock()

	// A reload for a hidden or never-opened view is silently ignored.
	if !visible || report == nil {
		return nil
	}

	if err := c.editorGateway.ShowDoctor(ctx, report); err != nil {
		return fmt.Errorf("re-rendering doctor report: %w", err)
	}
	return nil
}

func (c *controller) SetVisibility(ctx context.Context, visible bool) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view(id).visible = visible
	return nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, id)
	return nil
}

// view returns the state for a session, creating it on first use. Callers hold c.mu.
func (c *controller) view(id uuid.UUID) *viewState {
	if _, ok := c.views[id]; !ok {
		c.views[id] = &viewState{}
	}
	return c.views[id]
}
