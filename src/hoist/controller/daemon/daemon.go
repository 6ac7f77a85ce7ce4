// Package daemon implements the hoist daemon's session lifecycle: editor
// connection bookkeeping, the LSP handshake, idle shutdown, and dispatch into
// the launch and command controllers.
package daemon

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/controller/commands"
	"github.com/tacit-lsp/hoist/src/hoist/controller/decorations"
	"github.com/tacit-lsp/hoist/src/hoist/controller/doctor"
	"github.com/tacit-lsp/hoist/src/hoist/controller/launcher"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	workspaceutils "github.com/tacit-lsp/hoist/src/hoist/internal/workspace-utils"
	"github.com/tacit-lsp/hoist/src/hoist/internal/workspacecfg"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"github.com/tacit-lsp/hoist/src/hoist/repository/session"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "daemon"

	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
)

//go:generate mockgen -source=daemon.go -destination=daemonmock/daemon_mock.go -package=daemonmock

// Controller orchestrates the business logic for each editor request.
type Controller interface {
	// LSP methods defined per protocol.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error
	ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)

	// Tacit extension methods.
	DidFocusTextDocument(ctx context.Context, params *entity.FocusTextDocumentParams) error
	DidBlurTextDocument(ctx context.Context, params *entity.FocusTextDocumentParams) error
	DoctorVisibilityDidChange(ctx context.Context, params *entity.DoctorVisibilityParams) error

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner      fx.Shutdowner
	Sessions        session.Repository
	EditorGateway   editor.Gateway
	Launcher        launcher.Controller
	Commands        commands.Controller
	Decorations     decorations.Controller
	Doctor          doctor.Controller
	WorkspaceUtils  workspaceutils.WorkspaceUtils
	WorkspaceConfig workspacecfg.WorkspaceConfig
	Logger          *zap.SugaredLogger
	Config          config.Provider
	Stats           tally.Scope
}

type controller struct {
	sessions        session.Repository
	shutdowner      fx.Shutdowner
	editorGateway   editor.Gateway
	launcher        launcher.Controller
	commands        commands.Controller
	decorations     decorations.Controller
	doctor          doctor.Controller
	workspaceUtils  workspaceutils.WorkspaceUtils
	workspaceConfig workspacecfg.WorkspaceConfig
	logger          *zap.SugaredLogger
	stats           tally.Scope

	// idleTimerMu guards idleTimer and fullShutdown, which connection
	// goroutines touch concurrently.
	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration

	// baseSettings are the daemon-level launch defaults from the tacit config
	// block, merged under workspace and initialize overrides per session.
	baseSettings entity.LaunchSettings

	settingsWatchStops map[uuid.UUID]func() error
	settingsWatchMu    sync.Mutex

	wg sync.WaitGroup
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	var baseSettings entity.LaunchSettings
	if err := p.Config.Get(entity.TacitConfigKey).Populate(&baseSettings); err != nil {
		return nil, fmt.Errorf("unable to get launch defaults from config: %w", err)
	}

	c := &controller{
		sessions:        p.Sessions,
		shutdowner:      p.Shutdowner,
		editorGateway:   p.EditorGateway,
		launcher:        p.Launcher,
		commands:        p.Commands,
		decorations:     p.Decorations,
		doctor:          p.Doctor,
		workspaceUtils:  p.WorkspaceUtils,
		workspaceConfig: p.WorkspaceConfig,
		logger:          p.Logger.With("controller", _nameKey),
		stats:           p.Stats.SubScope(_nameKey),

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
		baseSettings:       baseSettings,
		settingsWatchStops: map[uuid.UUID]func() error{},
	}
	c.refreshIdleTimer(ctx)

	return c, nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.editorGateway.RegisterEditor(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}

	c.stats.Counter("sessions_started").Inc(1)
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, uuid uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	c.stopSettingsWatch(uuid)

	if err := c.launcher.EndSession(ctx, uuid); err != nil {
		c.logger.Errorf("ending launcher session: %s", err)
	}
	if err := c.decorations.EndSession(ctx, uuid); err != nil {
		c.logger.Errorf("ending decoration session: %s", err)
	}
	if err := c.doctor.EndSession(ctx, uuid); err != nil {
		c.logger.Errorf("ending doctor session: %s", err)
	}
	if err := c.editorGateway.DeregisterEditor(ctx, uuid); err != nil {
		c.logger.Error(err)
	}

	c.stats.Counter("sessions_ended").Inc(1)
	return c.sessions.Delete(ctx, uuid)
}

// RequestFullShutdown will set the controller to treat subsequent Shutdown and Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.idleTimerMu.Lock()
	c.fullShutdown = true
	c.idleTimerMu.Unlock()

	return nil
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}

func (c *controller) stopSettingsWatch(id uuid.UUID) {
	c.settingsWatchMu.Lock()
	stop, ok := c.settingsWatchStops[id]
	delete(c.settingsWatchStops, id)
	c.settingsWatchMu.Unlock()

	if !ok {
		return
	}
	if err := stop(); err != nil {
		c.logger.Warnf("stopping settings watch: %s", err)
	}
}
