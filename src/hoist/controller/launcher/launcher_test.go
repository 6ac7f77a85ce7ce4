package launcher

import (
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacit-lsp/hoist/src/hoist/controller/decorations/decorationsmock"
	"github.com/tacit-lsp/hoist/src/hoist/controller/router/routermock"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/factory"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor/editormock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/coursier/coursiermock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/envprobe"
	"github.com/tacit-lsp/hoist/src/hoist/internal/envprobe/envprobemock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/internal/executor/executormock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/fs"
	"github.com/tacit-lsp/hoist/src/hoist/internal/mock/jsonrpc2mock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/progress/progressmock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/serverinfofile/serverinfofilemock"
	"github.com/tacit-lsp/hoist/src/hoist/repository/session/repositorymock"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testMocks struct {
	sessions    *repositorymock.MockRepository
	gateway     *editormock.MockGateway
	decorations *decorationsmock.MockController
	router      *routermock.MockController
	prober      *envprobemock.MockProber
	resolver    *coursiermock.MockResolver
	progress    *progressmock.MockReporter
	executor    *executormock.MockExecutor
	conn        *jsonrpc2mock.MockConn
}

func newTestController(t *testing.T, ctrl *gomock.Controller) (*controller, *testMocks) {
	t.Helper()

	m := &testMocks{
		sessions:    repositorymock.NewMockRepository(ctrl),
		gateway:     editormock.NewMockGateway(ctrl),
		decorations: decorationsmock.NewMockController(ctrl),
		router:      routermock.NewMockController(ctrl),
		prober:      envprobemock.NewMockProber(ctrl),
		resolver:    coursiermock.NewMockResolver(ctrl),
		progress:    progressmock.NewMockReporter(ctrl),
		executor:    executormock.NewMockExecutor(ctrl),
		conn:        jsonrpc2mock.NewMockConn(ctrl),
	}

	infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)
	infoFile.EXPECT().UpdateField(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	c := New(Params{
		Sessions:       m.sessions,
		EditorGateway:  m.gateway,
		Decorations:    m.decorations,
		Router:         m.router,
		Prober:         m.prober,
		Resolver:       m.resolver,
		Progress:       m.progress,
		Executor:       m.executor,
		FS:             fs.New(),
		ServerInfoFile: infoFile,
		Lifecycle:      fxtest.NewLifecycle(t),
		Logger:         zap.NewNop().Sugar(),
		Stats:          tally.NewTestScope("testing", map[string]string{}),
	}).(*controller)

	c.newServerConn = func(stdout io.ReadCloser, stdin io.WriteCloser) jsonrpc2.Conn {
		return m.conn
	}
	return c, m
}

func testSession(t *testing.T) (*entity.Session, context.Context) {
	t.Helper()
	id := factory.UUID()
	sess := &entity.Session{
		UUID:          id,
		WorkspaceRoot: t.TempDir(),
		InitializeParams: &protocol.InitializeParams{
			ClientInfo: &protocol.ClientInfo{Name: string(entity.ClientNameVSCode)},
		},
	}
	return sess, context.WithValue(context.Background(), entity.SessionContextKey, id)
}

// expectLaunch wires the mock expectations for one successful launch and
// returns the channel that ends the session when closed.
func expectLaunch(t *testing.T, m *testMocks, sess *entity.Session) chan struct{} {
	t.Helper()
	token := protocol.NewProgressToken("launch")
	done := make(chan struct{})

	m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(sess, nil)
	m.progress.EXPECT().Begin(gomock.Any(), _progressTitle).Return(token, nil)
	m.progress.EXPECT().Report(gomock.Any(), token, gomock.Any()).Return(nil).AnyTimes()
	m.progress.EXPECT().LineWriter(gomock.Any(), token).Return(io.Discard)
	m.progress.EXPECT().End(gomock.Any(), token).Return(nil)

	m.prober.EXPECT().CheckToolchainConflict(gomock.Any(), sess.WorkspaceRoot).Return(nil)
	m.prober.EXPECT().ResolveJavaRuntime(gomock.Any(), sess).Return("/usr/bin/java", nil)

	m.resolver.EXPECT().Fetch(gomock.Any(), sess, gomock.Any()).Return("/cache/tacit-server.jar:/cache/dep.jar", nil)

	m.executor.EXPECT().StartCommand(gomock.Any(), gomock.Any()).DoAndReturn(
		func(cmd *exec.Cmd, env []string) error {
			assert.Equal(t, "/usr/bin/java", cmd.Path)
			assert.Contains(t, cmd.Args, "-classpath")
			assert.Contains(t, cmd.Args, entity.ServerEntryPoint)
			assert.Equal(t, sess.WorkspaceRoot, cmd.Dir)
			return nil
		})

	m.conn.EXPECT().Go(gomock.Any(), gomock.Any())
	m.conn.EXPECT().Call(gomock.Any(), protocol.MethodInitialize, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, method string, params, result any) (jsonrpc2.ID, error) {
			res := result.(**protocol.InitializeResult)
			*res = &protocol.InitializeResult{}
			(*res).Capabilities.Experimental = map[string]interface{}{"decorationProvider": true}
			return jsonrpc2.NewNumberID(1), nil
		})
	m.conn.EXPECT().Notify(gomock.Any(), protocol.MethodInitialized, gomock.Any()).Return(nil)
	m.conn.EXPECT().Done().Return(done).AnyTimes()

	m.decorations.EXPECT().SetProvider(gomock.Any(), true).Return(nil)

	return done
}

// endLaunch closes the session channel and waits for the monitor goroutine to
// settle the activation back to idle.
func endLaunch(t *testing.T, c *controller, ctx context.Context, done chan struct{}) {
	t.Helper()
	close(done)
	require.Eventually(t, func() bool {
		return c.State(ctx) == entity.LaunchStateIdle
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.NotPanics(t, func() {
		newTestController(t, ctrl)
	})
}

func TestLaunch(t *testing.T) {
	t.Run("full sequence reaches running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)

		done := expectLaunch(t, m, sess)
		require.NoError(t, c.Launch(ctx))
		assert.Equal(t, entity.LaunchStateRunning, c.State(ctx))

		endLaunch(t, c, ctx, done)
	})

	t.Run("launch while running is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)

		done := expectLaunch(t, m, sess)
		require.NoError(t, c.Launch(ctx))

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(sess, nil)
		assert.Error(t, c.Launch(ctx))
		assert.Equal(t, entity.LaunchStateRunning, c.State(ctx))

		endLaunch(t, c, ctx, done)
	})

	t.Run("toolchain conflict aborts with a warning and no prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)
		marker := sess.WorkspaceRoot + "/" + envprobe.MarkerFileName
		token := protocol.NewProgressToken("launch")

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(sess, nil)
		m.progress.EXPECT().Begin(gomock.Any(), _progressTitle).Return(token, nil)
		m.progress.EXPECT().Report(gomock.Any(), token, gomock.Any()).Return(nil).AnyTimes()
		m.progress.EXPECT().End(gomock.Any(), token).Return(nil)
		m.prober.EXPECT().CheckToolchainConflict(gomock.Any(), sess.WorkspaceRoot).Return(&errors.ToolchainConflictError{Marker: marker})

		var onMarkerChange func(bool)
		m.prober.EXPECT().WatchMarker(gomock.Any(), sess.WorkspaceRoot, gomock.Any()).DoAndReturn(
			func(ctx context.Context, root string, onChange func(bool)) (func() error, error) {
				onMarkerChange = onChange
				return func() error { return nil }, nil
			})
		m.gateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeWarning, params.Type)
				assert.Contains(t, params.Message, envprobe.MarkerFileName)
				assert.Contains(t, params.Message, entity.CommandServerRestart)
				return nil
			})

		err := c.Launch(ctx)
		require.Error(t, err)
		_, ok := errors.IsToolchainConflict(err)
		assert.True(t, ok)
		assert.Equal(t, entity.LaunchStateIdle, c.State(ctx))

		// Marker removal hints that a restart is now worthwhile.
		m.gateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeInfo, params.Type)
				assert.Contains(t, params.Message, entity.CommandServerRestart)
				return nil
			})
		require.NotNil(t, onMarkerChange)
		onMarkerChange(false)
	})

	t.Run("missing runtime prompts recovery and opens settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)
		token := protocol.NewProgressToken("launch")

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(sess, nil)
		m.progress.EXPECT().Begin(gomock.Any(), _progressTitle).Return(token, nil)
		m.progress.EXPECT().Report(gomock.Any(), token, gomock.Any()).Return(nil).AnyTimes()
		m.progress.EXPECT().End(gomock.Any(), token).Return(nil)
		m.prober.EXPECT().CheckToolchainConflict(gomock.Any(), sess.WorkspaceRoot).Return(nil)
		m.prober.EXPECT().ResolveJavaRuntime(gomock.Any(), sess).Return("", &errors.EnvironmentError{})

		m.gateway.EXPECT().ShowMessageRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
				require.Len(t, params.Actions, 1)
				assert.Equal(t, _actionOpenConfiguration, params.Actions[0].Title)
				return &params.Actions[0], nil
			})
		m.gateway.EXPECT().ShowDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error) {
				assert.Contains(t, string(params.URI), ".tacit/settings.yaml")
				assert.True(t, params.TakeFocus)
				return &protocol.ShowDocumentResult{Success: true}, nil
			})

		assert.Error(t, c.Launch(ctx))
		assert.Equal(t, entity.LaunchStateIdle, c.State(ctx))
	})

	t.Run("resolution failure wording names an overridden version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)
		sess.Settings.ServerVersion = "9.9.9"
		token := protocol.NewProgressToken("launch")

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(sess, nil)
		m.progress.EXPECT().Begin(gomock.Any(), _progressTitle).Return(token, nil)
		m.progress.EXPECT().Report(gomock.Any(), token, gomock.Any()).Return(nil).AnyTimes()
		m.progress.EXPECT().LineWriter(gomock.Any(), token).Return(io.Discard)
		m.progress.EXPECT().End(gomock.Any(), token).Return(nil)
		m.prober.EXPECT().CheckToolchainConflict(gomock.Any(), sess.WorkspaceRoot).Return(nil)
		m.prober.EXPECT().ResolveJavaRuntime(gomock.Any(), sess).Return("/usr/bin/java", nil)
		m.resolver.EXPECT().Fetch(gomock.Any(), sess, gomock.Any()).Return("", &errors.DependencyResolutionError{
			Coordinate: sess.Settings.ArtifactCoordinate(),
			ExitCode:   1,
		})

		m.gateway.EXPECT().ShowMessageRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
				assert.Contains(t, params.Message, "9.9.9")
				assert.Contains(t, params.Message, "serverVersion")
				return nil, nil
			})

		assert.Error(t, c.Launch(ctx))
		assert.Equal(t, entity.LaunchStateIdle, c.State(ctx))
	})

	t.Run("custom configuration is reported once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)
		sess.Settings.ServerProperties = []string{"-Dtacit.telemetry=off", "-agentlib:jdwp=transport=dt_socket"}
		sess.Settings.CustomRepositories = []string{"https://repo.internal/a", "https://repo.internal/b"}

		done := expectLaunch(t, m, sess)
		m.gateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeInfo, params.Type)
				assert.Contains(t, params.Message, "-Dtacit.telemetry=off")
				assert.NotContains(t, params.Message, "-agentlib:")
				return nil
			})
		m.gateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeInfo, params.Type)
				assert.Contains(t, params.Message, "2 custom repositories")
				return nil
			})

		require.NoError(t, c.Launch(ctx))
		endLaunch(t, c, ctx, done)
	})
}

func TestExecuteServerCommand(t *testing.T) {
	t.Run("forwards to the analyzer when running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)

		done := expectLaunch(t, m, sess)
		require.NoError(t, c.Launch(ctx))

		m.conn.EXPECT().Call(gomock.Any(), protocol.MethodWorkspaceExecuteCommand, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params, result any) (jsonrpc2.ID, error) {
				execParams := params.(*protocol.ExecuteCommandParams)
				assert.Equal(t, "build-import", execParams.Command)
				return jsonrpc2.NewNumberID(2), nil
			})
		assert.NoError(t, c.ExecuteServerCommand(ctx, "build-import", nil))

		endLaunch(t, c, ctx, done)
	})

	t.Run("arguments reach the analyzer as their original JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)

		done := expectLaunch(t, m, sess)
		require.NoError(t, c.Launch(ctx))

		m.conn.EXPECT().Call(gomock.Any(), protocol.MethodWorkspaceExecuteCommand, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params, result any) (jsonrpc2.ID, error) {
				wire, err := json.Marshal(params)
				require.NoError(t, err)
				assert.Contains(t, string(wire), `{"uri":"file:///repo/a.tc"}`)
				return jsonrpc2.NewNumberID(2), nil
			})
		args := []interface{}{json.RawMessage(`{"uri":"file:///repo/a.tc"}`)}
		assert.NoError(t, c.ExecuteServerCommand(ctx, "build-import", args))

		endLaunch(t, c, ctx, done)
	})

	t.Run("no active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, _ := newTestController(t, ctrl)
		_, ctx := testSession(t)

		err := c.ExecuteServerCommand(ctx, "build-import", nil)
		var noSession *errors.NoActiveSessionError
		assert.ErrorAs(t, err, &noSession)
	})
}

func TestNotifyDidFocus(t *testing.T) {
	t.Run("notifies the analyzer when running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		sess, ctx := testSession(t)

		done := expectLaunch(t, m, sess)
		require.NoError(t, c.Launch(ctx))

		m.conn.EXPECT().Notify(gomock.Any(), entity.MethodDidFocusTextDocument, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params any) error {
				focus := params.(*entity.FocusTextDocumentParams)
				assert.Equal(t, protocol.DocumentURI("file:///repo/a.tc"), focus.TextDocument.URI)
				return nil
			})
		assert.NoError(t, c.NotifyDidFocus(ctx, "file:///repo/a.tc"))

		endLaunch(t, c, ctx, done)
	})

	t.Run("dropped without a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, _ := newTestController(t, ctrl)
		_, ctx := testSession(t)

		assert.NoError(t, c.NotifyDidFocus(ctx, "file:///repo/a.tc"))
	})
}

func TestEndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, m := newTestController(t, ctrl)
	sess, ctx := testSession(t)

	done := expectLaunch(t, m, sess)
	require.NoError(t, c.Launch(ctx))

	m.conn.EXPECT().Close().Return(nil)
	require.NoError(t, c.EndSession(ctx, sess.UUID))
	assert.Equal(t, entity.LaunchStateIdle, c.State(ctx))

	// Release the monitor goroutine; the session is already torn down.
	close(done)
}

func TestState(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _ := newTestController(t, ctrl)

	t.Run("no session uuid", func(t *testing.T) {
		assert.Equal(t, entity.LaunchStateIdle, c.State(context.Background()))
	})

	t.Run("unknown session", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, factory.UUID())
		assert.Equal(t, entity.LaunchStateIdle, c.State(ctx))
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
