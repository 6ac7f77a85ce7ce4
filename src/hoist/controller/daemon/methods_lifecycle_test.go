package daemon

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/factory"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func sessionContext(s *entity.Session) context.Context {
	return context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)
}

func TestInitialize(t *testing.T) {
	params := &protocol.InitializeParams{
		WorkspaceFolders: []protocol.WorkspaceFolder{{URI: "file:///repo"}},
		InitializationOptions: map[string]interface{}{
			"serverVersion": "9.9.9",
		},
	}

	t.Run("stores workspace state and merged settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		c.baseSettings = entity.LaunchSettings{ServerProperties: []string{"-Xmx2g"}}

		s := &entity.Session{UUID: factory.UUID()}
		ctx := sessionContext(s)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.workspaceUtils.EXPECT().GetWorkspaceRoot(gomock.Any(), params.WorkspaceFolders).Return("/repo", nil)
		m.workspaceUtils.EXPECT().GetEnv(gomock.Any(), "/repo").Return([]string{"PATH=/usr/bin"}, nil)
		m.workspaceConfig.EXPECT().Load(gomock.Any(), "/repo").Return(entity.LaunchSettings{
			JavaHome:      "/opt/jdk",
			ServerVersion: "5.5.5",
		}, nil)
		m.workspaceConfig.EXPECT().Watch(gomock.Any(), "/repo", gomock.Any()).Return(func() error { return nil }, nil)

		var stored *entity.Session
		m.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s *entity.Session) error {
				stored = s
				return nil
			})

		result, err := c.Initialize(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, _serverName, result.ServerInfo.Name)
		require.NotNil(t, result.Capabilities.ExecuteCommandProvider)
		assert.ElementsMatch(t, entity.SupportedCommands(), result.Capabilities.ExecuteCommandProvider.Commands)

		require.NotNil(t, stored)
		assert.Equal(t, params, stored.InitializeParams)
		assert.Equal(t, "/repo", stored.WorkspaceRoot)
		assert.Equal(t, []string{"PATH=/usr/bin"}, stored.Env)

		// initializationOptions over workspace settings over daemon defaults.
		assert.Equal(t, "9.9.9", stored.Settings.ServerVersion)
		assert.Equal(t, "/opt/jdk", stored.Settings.JavaHome)
		assert.Equal(t, []string{"-Xmx2g"}, stored.Settings.ServerProperties)

		assert.Contains(t, c.settingsWatchStops, s.UUID)
	})

	t.Run("unresolvable workspace root is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)

		s := &entity.Session{UUID: factory.UUID()}
		ctx := sessionContext(s)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.workspaceUtils.EXPECT().GetWorkspaceRoot(gomock.Any(), gomock.Any()).Return("", assert.AnError)
		m.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		result, err := c.Initialize(ctx, params)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, c.settingsWatchStops)
	})

	t.Run("workspace settings failure falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		c.baseSettings = entity.LaunchSettings{ServerVersion: "1.0.0"}

		s := &entity.Session{UUID: factory.UUID()}
		ctx := sessionContext(s)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.workspaceUtils.EXPECT().GetWorkspaceRoot(gomock.Any(), gomock.Any()).Return("/repo", nil)
		m.workspaceUtils.EXPECT().GetEnv(gomock.Any(), "/repo").Return(nil, nil)
		m.workspaceConfig.EXPECT().Load(gomock.Any(), "/repo").Return(entity.LaunchSettings{}, assert.AnError)
		m.workspaceConfig.EXPECT().Watch(gomock.Any(), "/repo", gomock.Any()).Return(func() error { return nil }, nil)

		var stored *entity.Session
		m.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s *entity.Session) error {
				stored = s
				return nil
			})

		_, err := c.Initialize(ctx, &protocol.InitializeParams{
			WorkspaceFolders: []protocol.WorkspaceFolder{{URI: "file:///repo"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", stored.Settings.ServerVersion)
	})
}

func TestInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, m := newTestController(t, ctrl)

	s := &entity.Session{UUID: factory.UUID()}
	ctx := sessionContext(s)

	m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
	m.gateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params *protocol.ShowMessageParams) error {
			assert.Equal(t, protocol.MessageTypeInfo, params.Type)
			return nil
		})

	launched := make(chan struct{})
	m.launcher.EXPECT().Launch(gomock.Any()).DoAndReturn(
		func(launchCtx context.Context) error {
			defer close(launched)
			assert.Equal(t, s.UUID, launchCtx.Value(entity.SessionContextKey))
			return nil
		})

	require.NoError(t, c.Initialized(ctx, &protocol.InitializedParams{}))
	<-launched
}

func TestShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _ := newTestController(t, ctrl)
	assert.NoError(t, c.Shutdown(context.Background()))
}

func TestExit(t *testing.T) {
	t.Run("ends the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)

		s := &entity.Session{UUID: factory.UUID()}
		ctx := sessionContext(s)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.launcher.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil)
		m.decorations.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil)
		m.doctor.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil)
		m.gateway.EXPECT().DeregisterEditor(gomock.Any(), s.UUID).Return(nil)
		m.sessions.EXPECT().Delete(gomock.Any(), s.UUID).Return(nil)

		assert.NoError(t, c.Exit(ctx))
	})

	t.Run("full shutdown zeroes the idle timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, _ := newTestController(t, ctrl)

		require.NoError(t, c.RequestFullShutdown(context.Background()))
		assert.NoError(t, c.Exit(context.Background()))
	})

	t.Run("full shutdown raced against exits from other connections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)

		s := &entity.Session{UUID: factory.UUID()}
		ctx := sessionContext(s)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil).AnyTimes()
		m.launcher.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil).AnyTimes()
		m.decorations.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil).AnyTimes()
		m.doctor.EXPECT().EndSession(gomock.Any(), s.UUID).Return(nil).AnyTimes()
		m.gateway.EXPECT().DeregisterEditor(gomock.Any(), s.UUID).Return(nil).AnyTimes()
		m.sessions.EXPECT().Delete(gomock.Any(), s.UUID).Return(nil).AnyTimes()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				assert.NoError(t, c.RequestFullShutdown(ctx))
			}()
			go func() {
				defer wg.Done()
				assert.NoError(t, c.Exit(ctx))
			}()
		}
		wg.Wait()

		// All requests drained, the flag is set and exits take the timer path.
		assert.NoError(t, c.Exit(ctx))
		assert.True(t, c.fullShutdown)
	})
}

func TestSettingsWatch(t *testing.T) {
	newSession := func() *entity.Session {
		return &entity.Session{
			UUID:             factory.UUID(),
			WorkspaceRoot:    "/repo",
			InitializeParams: &protocol.InitializeParams{},
		}
	}

	t.Run("change prompts a restart and re-merges settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		s := newSession()

		var onChange func()
		m.workspaceConfig.EXPECT().Watch(gomock.Any(), "/repo", gomock.Any()).DoAndReturn(
			func(ctx context.Context, root string, fn func()) (func() error, error) {
				onChange = fn
				return func() error { return nil }, nil
			})

		c.watchSettings(s.UUID, s.WorkspaceRoot)
		require.NotNil(t, onChange)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.workspaceConfig.EXPECT().Load(gomock.Any(), "/repo").Return(entity.LaunchSettings{ServerVersion: "6.0.0"}, nil)
		m.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, updated *entity.Session) error {
				assert.Equal(t, "6.0.0", updated.Settings.ServerVersion)
				return nil
			})
		m.gateway.EXPECT().ShowMessageRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
				assert.Equal(t, _msgSettingsChanged, params.Message)
				return &protocol.MessageActionItem{Title: _actionRestartAnalyzer}, nil
			})
		m.launcher.EXPECT().Restart(gomock.Any()).Return(nil)

		onChange()
		c.wg.Wait()
	})

	t.Run("dismissal leaves the analyzer alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)
		s := newSession()

		var onChange func()
		m.workspaceConfig.EXPECT().Watch(gomock.Any(), "/repo", gomock.Any()).DoAndReturn(
			func(ctx context.Context, root string, fn func()) (func() error, error) {
				onChange = fn
				return func() error { return nil }, nil
			})

		c.watchSettings(s.UUID, s.WorkspaceRoot)

		m.sessions.EXPECT().GetFromContext(gomock.Any()).Return(s, nil)
		m.workspaceConfig.EXPECT().Load(gomock.Any(), "/repo").Return(entity.LaunchSettings{}, nil)
		m.sessions.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
		m.gateway.EXPECT().ShowMessageRequest(gomock.Any(), gomock.Any()).Return(nil, nil)

		onChange()
		c.wg.Wait()
	})

	t.Run("watch setup failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, m := newTestController(t, ctrl)

		m.workspaceConfig.EXPECT().Watch(gomock.Any(), "/repo", gomock.Any()).Return(nil, assert.AnError)

		c.watchSettings(factory.UUID(), "/repo")
		assert.Empty(t, c.settingsWatchStops)
	})
}
