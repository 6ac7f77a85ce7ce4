// Package launcher orchestrates the lifecycle of the tacit-server process for
// each editor session: environment probing, dependency resolution, process
// spawn, the LSP handshake, and teardown.
package launcher

import (
	"context"
	stderr "errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/controller/decorations"
	"github.com/tacit-lsp/hoist/src/hoist/controller/router"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/coursier"
	"github.com/tacit-lsp/hoist/src/hoist/internal/envprobe"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/internal/executor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/fs"
	"github.com/tacit-lsp/hoist/src/hoist/internal/logfilewriter"
	"github.com/tacit-lsp/hoist/src/hoist/internal/progress"
	"github.com/tacit-lsp/hoist/src/hoist/internal/serverinfofile"
	"github.com/tacit-lsp/hoist/src/hoist/internal/workspacecfg"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"github.com/tacit-lsp/hoist/src/hoist/repository/session"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_nameKey          = "launcher"
	_serverOutputName = "tacit-server"

	_progressTitle = "Tacit Analyzer"
	_msgProbing    = "Probing environment"
	_msgResolving  = "Resolving analyzer dependencies"
	_msgStarting   = "Starting tacit-server"

	_actionOpenConfiguration = "Open configuration"

	_fmtMsgToolchainConflict = "Another Tacit toolchain owns this workspace (%s found in the workspace root). Remove the file, then run %q to launch the analyzer."
	_fmtMsgMarkerRemoved     = "The conflicting toolchain marker was removed. Run %q to launch the analyzer."
	_msgNoRuntime            = "No usable Java runtime was found for the Tacit analyzer. Install a JDK or set javaHome in your workspace settings."
	_fmtMsgLaunchFailed      = "The Tacit analyzer (tacit-server %s) failed to launch."
	_fmtMsgLaunchFailedPin   = "The Tacit analyzer failed to launch with the configured version %s. Review serverVersion in your workspace settings."
	_fmtMsgStartFailed       = "The Tacit analyzer process could not be started: %v"
	_fmtMsgExtraProperties   = "Additional analyzer properties detected: %s"
	_fmtMsgCustomRepos       = "Resolving the Tacit analyzer through %d custom repositories."
)

//go:generate mockgen -source=launcher.go -destination=launchermock/launcher_mock.go -package=launchermock

// Controller owns the analyzer server session for each editor session. At most
// one live server session exists per activation; a launch while one is pending
// or running is rejected.
type Controller interface {
	// Launch runs a full launch sequence for the session in ctx. Failures are
	// surfaced to the editor before the error is returned; the activation
	// returns to idle and waits for an explicit restart.
	Launch(ctx context.Context) error
	// Restart stops any live server session, then runs a fresh launch.
	Restart(ctx context.Context) error
	// ExecuteServerCommand forwards a workspace/executeCommand call to the
	// analyzer. NoActiveSessionError when no server session is live.
	ExecuteServerCommand(ctx context.Context, command string, args []interface{}) error
	// NotifyDidFocus informs the analyzer that the editor focused a document.
	// Dropped silently when no server session is live.
	NotifyDidFocus(ctx context.Context, uri protocol.DocumentURI) error
	// State reports the launch phase of the session in ctx.
	State(ctx context.Context) entity.LaunchState
	// EndSession tears down the server session and releases watchers.
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are the parameters required to create a new Controller.
type Params struct {
	fx.In

	Sessions       session.Repository
	EditorGateway  editor.Gateway
	Decorations    decorations.Controller
	Router         router.Controller
	Prober         envprobe.Prober
	Resolver       coursier.Resolver
	Progress       progress.Reporter
	Executor       executor.Executor
	FS             fs.HoistFS
	ServerInfoFile serverinfofile.ServerInfoFile
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	Stats          tally.Scope
}

// activation tracks one editor session's launch state and, when running, its
// server session.
type activation struct {
	state           entity.LaunchState
	session         *entity.ServerSession
	stopMarkerWatch func() error
}

type controller struct {
	sessions      session.Repository
	editorGateway editor.Gateway
	decorations   decorations.Controller
	router        router.Controller
	prober        envprobe.Prober
	resolver      coursier.Resolver
	progress      progress.Reporter
	executor      executor.Executor
	logger        *zap.SugaredLogger
	stats         tally.Scope

	// Server process output is written to a log file for the editor to tail.
	// Created on first launch rather than daemon startup.
	outputWriterParams logfilewriter.Params
	outputWriterMu     sync.Mutex
	outputWriter       io.Writer

	// newServerConn builds the message channel over the spawned process's stdio.
	newServerConn func(stdout io.ReadCloser, stdin io.WriteCloser) jsonrpc2.Conn

	mu          sync.Mutex
	activations map[uuid.UUID]*activation
}

// New creates a new launcher Controller.
func New(p Params) Controller {
	return &controller{
		sessions:      p.Sessions,
		editorGateway: p.EditorGateway,
		decorations:   p.Decorations,
		router:        p.Router,
		prober:        p.Prober,
		resolver:      p.Resolver,
		progress:      p.Progress,
		executor:      p.Executor,
		logger:        p.Logger.With("controller", _nameKey),
		stats:         p.Stats.SubScope(_nameKey),
		outputWriterParams: logfilewriter.Params{
			FS:             p.FS,
			Lifecycle:      p.Lifecycle,
			ServerInfoFile: p.ServerInfoFile,
		},
		newServerConn: func(stdout io.ReadCloser, stdin io.WriteCloser) jsonrpc2.Conn {
			return jsonrpc2.NewConn(jsonrpc2.NewStream(&stdioPipe{reader: stdout, writer: stdin}))
		},
		activations: make(map[uuid.UUID]*activation),
	}
}

func (c *controller) Launch(ctx context.Context) error {
	sess, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting session: %w", err)
	}

	c.mu.Lock()
	act := c.activation(sess.UUID)
	if act.state != entity.LaunchStateIdle {
		c.mu.Unlock()
		return fmt.Errorf("launch rejected: activation is %s", act.state)
	}
	act.state = entity.LaunchStateProbingEnvironment
	c.mu.Unlock()

	if err := c.run(ctx, sess); err != nil {
		c.setState(sess.UUID, entity.LaunchStateIdle)
		c.stats.Counter("launch_failed").Inc(1)
		return err
	}

	c.stats.Counter("launched").Inc(1)
	return nil
}

func (c *controller) Restart(ctx context.Context) error {
	sess, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting session: %w", err)
	}

	c.stop(sess.UUID)
	return c.Launch(ctx)
}

func (c *controller) ExecuteServerCommand(ctx context.Context, command string, args []interface{}) error {
	serverSession, err := c.activeSession(ctx)
	if err != nil {
		return err
	}

	if _, err := serverSession.Server.ExecuteCommand(ctx, &protocol.ExecuteCommandParams{
		Command:   command,
		Arguments: args,
	}); err != nil {
		return fmt.Errorf("forwarding %q to the analyzer: %w", command, err)
	}
	return nil
}

func (c *controller) NotifyDidFocus(ctx context.Context, docURI protocol.DocumentURI) error {
	serverSession, err := c.activeSession(ctx)
	if err != nil {
		var noSession *errors.NoActiveSessionError
		if stderr.As(err, &noSession) {
			// Focus events ahead of a live session carry no obligation.
			return nil
		}
		return err
	}

	if err := serverSession.Conn.Notify(ctx, entity.MethodDidFocusTextDocument, &entity.FocusTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	}); err != nil {
		return fmt.Errorf("notifying document focus: %w", err)
	}
	return nil
}

func (c *controller) State(ctx context.Context) entity.LaunchState {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return entity.LaunchStateIdle
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if act, ok := c.activations[id]; ok {
		return act.state
	}
	return entity.LaunchStateIdle
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	c.stop(id)

	c.mu.Lock()
	delete(c.activations, id)
	c.mu.Unlock()
	return nil
}

// run advances the launch state machine for one activation. Every failure path
// surfaces an actionable message before returning.
func (c *controller) run(ctx context.Context, sess *entity.Session) error {
	token, err := c.progress.Begin(ctx, _progressTitle)
	if err != nil {
		c.logger.Warnf("opening launch progress: %s", err)
	}
	defer func() {
		if token == nil {
			return
		}
		if err := c.progress.End(ctx, token); err != nil {
			c.logger.Warnf("closing launch progress: %s", err)
		}
	}()

	c.reportPhase(ctx, token, _msgProbing)
	if err := c.prober.CheckToolchainConflict(ctx, sess.WorkspaceRoot); err != nil {
		if marker, ok := errors.IsToolchainConflict(err); ok {
			c.surfaceToolchainConflict(ctx, sess, marker)
		}
		return fmt.Errorf("probing environment: %w", err)
	}

	runtimePath, err := c.prober.ResolveJavaRuntime(ctx, sess)
	if err != nil {
		c.promptRecovery(ctx, sess, _msgNoRuntime)
		return fmt.Errorf("probing environment: %w", err)
	}

	c.setState(sess.UUID, entity.LaunchStateResolvingDependencies)
	c.reportPhase(ctx, token, _msgResolving)
	c.reportCustomConfiguration(ctx, sess)

	classpath, err := c.resolver.Fetch(ctx, sess, c.progress.LineWriter(ctx, token))
	if err != nil {
		c.promptRecovery(ctx, sess, launchFailureMessage(sess))
		return fmt.Errorf("resolving dependencies: %w", err)
	}

	c.setState(sess.UUID, entity.LaunchStateStarting)
	c.reportPhase(ctx, token, _msgStarting)

	serverSession, err := c.startServer(ctx, sess, entity.ServerLaunchConfig{
		RuntimePath: runtimePath,
		Classpath:   classpath,
		ExtraArgs:   sess.Settings.ServerProperties,
		Environment: sess.Env,
	})
	if err != nil {
		var startErr *errors.ProcessStartError
		if stderr.As(err, &startErr) {
			c.showError(ctx, fmt.Sprintf(_fmtMsgStartFailed, startErr.Err))
		} else {
			c.promptRecovery(ctx, sess, launchFailureMessage(sess))
		}
		return fmt.Errorf("starting analyzer: %w", err)
	}

	c.mu.Lock()
	act := c.activation(sess.UUID)
	act.session = serverSession
	act.state = entity.LaunchStateRunning
	c.mu.Unlock()

	c.logger.Infow("analyzer session running",
		"uuid", sess.UUID.String(),
		"version", sess.Settings.Version(),
		"decorationProvider", serverSession.DecorationProvider,
	)
	return nil
}

// startServer spawns the server process, wires its stdio channel, and performs
// the LSP handshake.
func (c *controller) startServer(ctx context.Context, sess *entity.Session, cfg entity.ServerLaunchConfig) (*entity.ServerSession, error) {
	clientName := mapper.InitializeParamsToClientName(sess.InitializeParams)
	args := mapper.LaunchConfigToArgs(cfg, clientName)

	cmd := exec.Command(cfg.RuntimePath, args...)
	cmd.Dir = sess.WorkspaceRoot
	cmd.Stderr = c.serverOutputWriter()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.ProcessStartError{Path: cfg.RuntimePath, Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.ProcessStartError{Path: cfg.RuntimePath, Err: err}
	}

	if err := c.executor.StartCommand(cmd, cfg.Environment); err != nil {
		return nil, &errors.ProcessStartError{Path: cfg.RuntimePath, Err: err}
	}

	conn := c.newServerConn(stdout, stdin)
	serverCtx := context.WithValue(context.Background(), entity.SessionContextKey, sess.UUID)
	conn.Go(serverCtx, c.handleServerRequest)

	server := protocol.ServerDispatcher(conn, c.logger.Desugar())

	initParams := sess.InitializeParams
	if initParams == nil {
		initParams = &protocol.InitializeParams{RootURI: protocol.DocumentURI(uri.File(sess.WorkspaceRoot))}
	}
	result, err := server.Initialize(ctx, initParams)
	if err != nil {
		conn.Close()
		killProcess(cmd)
		return nil, fmt.Errorf("initialize handshake: %w", err)
	}
	if err := server.Initialized(ctx, &protocol.InitializedParams{}); err != nil {
		conn.Close()
		killProcess(cmd)
		return nil, fmt.Errorf("initialized notification: %w", err)
	}

	provider := mapper.InitializeResultToDecorationProvider(result)
	if err := c.decorations.SetProvider(ctx, provider); err != nil {
		c.logger.Warnf("recording decoration capability: %s", err)
	}

	go c.monitor(sess.UUID, conn, cmd)

	return &entity.ServerSession{
		Process:            cmd,
		Conn:               conn,
		Server:             server,
		State:              entity.LaunchStateRunning,
		LaunchConfig:       cfg,
		DecorationProvider: provider,
		InitializeResult:   result,
	}, nil
}

// monitor invalidates the activation once the server channel closes, whatever
// the cause. The process is killed in case the channel closed first.
func (c *controller) monitor(id uuid.UUID, conn jsonrpc2.Conn, cmd *exec.Cmd) {
	<-conn.Done()
	killProcess(cmd)

	c.mu.Lock()
	if act, ok := c.activations[id]; ok && act.session != nil && act.session.Conn == conn {
		act.session.State = entity.LaunchStateIdle
		act.session = nil
		act.state = entity.LaunchStateIdle
	}
	c.mu.Unlock()

	c.stats.Counter("session_ended").Inc(1)
	c.logger.Infow("analyzer session ended", "uuid", id.String())
}

// stop tears down a running server session and any marker watcher. Pending
// launches are left to finish; the in-flight attempt keeps ownership.
func (c *controller) stop(id uuid.UUID) {
	c.mu.Lock()
	act := c.activation(id)
	if act.stopMarkerWatch != nil {
		if err := act.stopMarkerWatch(); err != nil {
			c.logger.Warnf("stopping marker watcher: %s", err)
		}
		act.stopMarkerWatch = nil
	}

	var serverSession *entity.ServerSession
	if act.state == entity.LaunchStateRunning {
		serverSession = act.session
		act.session = nil
		act.state = entity.LaunchStateIdle
	}
	c.mu.Unlock()

	if serverSession == nil {
		return
	}
	serverSession.State = entity.LaunchStateIdle
	serverSession.Conn.Close()
	killProcess(serverSession.Process)
}

// activeSession returns the running server session for the context's session
// UUID, or NoActiveSessionError.
func (c *controller) activeSession(ctx context.Context) (*entity.ServerSession, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	act, ok := c.activations[id]
	if !ok || !act.session.Active() {
		return nil, &errors.NoActiveSessionError{}
	}
	return act.session, nil
}

func (c *controller) surfaceToolchainConflict(ctx context.Context, sess *entity.Session, marker string) {
	c.stats.Counter("toolchain_conflict").Inc(1)
	if err := c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeWarning,
		Message: fmt.Sprintf(_fmtMsgToolchainConflict, filepath.Base(marker), entity.CommandServerRestart),
	}); err != nil {
		c.logger.Warnf("surfacing toolchain conflict: %s", err)
	}
	c.watchMarkerRemoval(sess)
}

// watchMarkerRemoval hints that a restart is worthwhile once the conflicting
// marker disappears. One watcher per activation.
func (c *controller) watchMarkerRemoval(sess *entity.Session) {
	c.mu.Lock()
	if c.activation(sess.UUID).stopMarkerWatch != nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	watchCtx := context.WithValue(context.Background(), entity.SessionContextKey, sess.UUID)
	stop, err := c.prober.WatchMarker(watchCtx, sess.WorkspaceRoot, func(present bool) {
		if present {
			return
		}
		if err := c.editorGateway.ShowMessage(watchCtx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: fmt.Sprintf(_fmtMsgMarkerRemoved, entity.CommandServerRestart),
		}); err != nil {
			c.logger.Warnf("surfacing marker removal: %s", err)
		}
	})
	if err != nil {
		c.logger.Warnf("watching toolchain marker: %s", err)
		return
	}

	c.mu.Lock()
	c.activation(sess.UUID).stopMarkerWatch = stop
	c.mu.Unlock()
}

// promptRecovery shows the single-action failure prompt. Selecting the action
// opens the workspace settings file in the editor.
func (c *controller) promptRecovery(ctx context.Context, sess *entity.Session, message string) {
	choice, err := c.editorGateway.ShowMessageRequest(ctx, &protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeError,
		Message: message,
		Actions: []protocol.MessageActionItem{{Title: _actionOpenConfiguration}},
	})
	if err != nil {
		c.logger.Warnf("showing recovery prompt: %s", err)
		return
	}
	if choice == nil || choice.Title != _actionOpenConfiguration {
		return
	}

	if _, err := c.editorGateway.ShowDocument(ctx, &protocol.ShowDocumentParams{
		URI:       protocol.URI(uri.File(workspacecfg.SettingsPath(sess.WorkspaceRoot))),
		TakeFocus: true,
	}); err != nil {
		c.logger.Warnf("opening settings file: %s", err)
	}
}

// reportCustomConfiguration surfaces non-default launch configuration once per
// attempt. Agent flags stay out of the report but remain in the argv.
func (c *controller) reportCustomConfiguration(ctx context.Context, sess *entity.Session) {
	if reported := mapper.ReportableServerProperties(sess.Settings.ServerProperties); len(reported) > 0 {
		c.showInfo(ctx, fmt.Sprintf(_fmtMsgExtraProperties, strings.Join(reported, " ")))
	}
	if repos := sess.Settings.CustomRepositories; len(repos) > 1 {
		c.showInfo(ctx, fmt.Sprintf(_fmtMsgCustomRepos, len(repos)))
	}
}

func (c *controller) reportPhase(ctx context.Context, token *protocol.ProgressToken, message string) {
	if token == nil {
		return
	}
	if err := c.progress.Report(ctx, token, message); err != nil {
		c.logger.Warnf("reporting launch phase: %s", err)
	}
}

func (c *controller) showInfo(ctx context.Context, message string) {
	if err := c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeInfo,
		Message: message,
	}); err != nil {
		c.logger.Warnf("showing message: %s", err)
	}
}

func (c *controller) showError(ctx context.Context, message string) {
	if err := c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeError,
		Message: message,
	}); err != nil {
		c.logger.Warnf("showing message: %s", err)
	}
}

// serverOutputWriter lazily creates the log file the editor tails for server
// process output.
func (c *controller) serverOutputWriter() io.Writer {
	c.outputWriterMu.Lock()
	defer c.outputWriterMu.Unlock()

	if c.outputWriter != nil {
		return c.outputWriter
	}
	w, err := logfilewriter.SetupOutputWriter(c.outputWriterParams, _serverOutputName)
	if err != nil {
		c.logger.Warnf("setting up server output file: %s", err)
		return io.Discard
	}
	c.outputWriter = w
	return c.outputWriter
}

// activation returns the state for a session, creating it on first use. Callers hold c.mu.
func (c *controller) activation(id uuid.UUID) *activation {
	if _, ok := c.activations[id]; !ok {
		c.activations[id] = &activation{state: entity.LaunchStateIdle}
	}
	return c.activations[id]
}

func (c *controller) setState(id uuid.UUID, state entity.LaunchState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activation(id).state = state
}

func launchFailureMessage(sess *entity.Session) string {
	if sess.Settings.VersionOverridden() {
		return fmt.Sprintf(_fmtMsgLaunchFailedPin, sess.Settings.Version())
	}
	return fmt.Sprintf(_fmtMsgLaunchFailed, sess.Settings.Version())
}

func killProcess(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	cmd.Process.Kill()
	cmd.Wait()
}

// stdioPipe joins the server process's stdout and stdin into the single
// read-write stream the jsonrpc2 codec expects.
type stdioPipe struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (p *stdioPipe) Read(b []byte) (int, error) {
	return p.reader.Read(b)
}

func (p *stdioPipe) Write(b []byte) (int, error) {
	return p.writer.Write(b)
}

func (p *stdioPipe) Close() error {
	return multierr.Append(p.reader.Close(), p.writer.Close())
}
