// Package decorations keeps per-document inline decoration state in sync with
// analyzer pushes and editor focus events.
package decorations

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "decorations"

//go:generate mockgen -source=decorations.go -destination=decorationsmock/decorations_mock.go -package=decorationsmock

// Controller is the decoration state manager for all editor sessions.
type Controller interface {
	// SetProvider records whether the analyzer negotiated decoration support.
	// All other operations are no-ops for sessions without support.
	SetProvider(ctx context.Context, enabled bool) error
	// HandlePublish replaces a document's decoration set wholesale and renders
	// it when the document is currently focused.
	HandlePublish(ctx context.Context, params *entity.PublishDecorationsParams) error
	// FocusGained records the newly focused document.
	FocusGained(ctx context.Context, uri protocol.DocumentURI) error
	// FocusLost clears state and any rendered overlay for worksheet documents.
	FocusLost(ctx context.Context, uri protocol.DocumentURI) error
	// Expand renders the decoration under the cursor in a transient overlay.
	// It is a no-op when no decoration spans the cursor.
	Expand(ctx context.Context, params *entity.DecorationExpandParams) error
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

type sessionDecorations struct {
	enabled bool
	focused protocol.DocumentURI
	// documents maps each URI to its last-published decoration set.
	// Sets are replaced wholesale, never merged.
	documents map[protocol.DocumentURI][]entity.DecorationOptions
}

type controller struct {
	editorGateway editor.Gateway
	logger        *zap.SugaredLogger
	stats         tally.Scope

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionDecorations
}

// New creates a new decorations Controller.
func New(p Params) Controller {
	return &controller{
		editorGateway: p.EditorGateway,
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
		sessions:      make(map[uuid.UUID]*sessionDecorations),
	}
}

func (c *controller) SetProvider(ctx context.Context, enabled bool) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(id).enabled = enabled
	return nil
}

func (c *controller) HandlePublish(ctx context.Context, params *entity.PublishDecorationsParams) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	s := c.session(id)
	if !s.enabled {
		c.mu.Unlock()
		return nil
	}
	s.documents[params.URI] = params.Options
	focused := s.focused == params.URI
	c.mu.Unlock()

	c.stats.Counter("published").Inc(1)
	if !focused {
		return nil
	}

	if err := c.editorGateway.PublishDecorations(ctx, params); err != nil {
		return fmt.Errorf("rendering decorations: %w", err)
	}
	return nil
}

func (c *controller) FocusGained(ctx context.Context, uri protocol.DocumentURI) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session(id).focused = uri
	return nil
}

func (c *controller) FocusLost(ctx context.Context, uri protocol.DocumentURI) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	s := c.session(id)
	if s.focused == uri {
		s.focused = ""
	}

	// Worksheet results are transient: dropping visibility drops the state.
	if !s.enabled || !entity.IsWorksheet(uri) {
		c.mu.Unlock()
		return nil
	}
	_, hadState := s.documents[uri]
	delete(s.documents, uri)
	c.mu.Unlock()

	if !hadState {
		return nil
	}

	c.stats.Counter("worksheet_cleared").Inc(1)
	if err := c.editorGateway.PublishDecorations(ctx, &entity.PublishDecorationsParams{
		URI:     uri,
		Options: []entity.DecorationOptions{},
	}); err != nil {
		return fmt.Errorf("clearing rendered decorations: %w", err)
	}
	return nil
}

func (c *controller) Expand(ctx context.Context, params *entity.DecorationExpandParams) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	s := c.session(id)
	var hovered *entity.DecorationOptions
	for i := range s.documents[params.URI] {
		if rangeContains(s.documents[params.URI][i].Range, params.Position) {
			hovered = &s.documents[params.URI][i]
			break
		}
	}
	c.mu.Unlock()

	if hovered == nil {
		return nil
	}

	if err := c.editorGateway.ShowDecorationHover(ctx, &entity.ShowDecorationHoverParams{
		URI:          params.URI,
		Range:        hovered.Range,
		HoverMessage: hovered.HoverMessage,
	}); err != nil {
		return fmt.Errorf("showing decoration hover: %w", err)
	}
	return nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}

// session returns the state for a session, creating it on first use. Callers hold c.mu.
func (c *controller) session(id uuid.UUID) *sessionDecorations {
	if _, ok := c.sessions[id]; !ok {
		c.sessions[id] = &sessionDecorations{
			documents: make(map[protocol.DocumentURI][]entity.DecorationOptions),
		}
	}
	return c.sessions[id]
}

func rangeContains(r protocol.Range, p protocol.Position) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Character < r.Start.Character {
		return false
	}
	if p.Line == r.End.Line && p.Character > r.End.Character {
		return false
	}
	return true
}
