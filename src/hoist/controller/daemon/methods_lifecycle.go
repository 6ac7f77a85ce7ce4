package daemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"go.lsp.dev/protocol"
)

const (
	_serverName = "Tacit Analyzer Host"

	_msgInitialized          = "Connection to the Tacit analyzer host is now initialized."
	_msgSettingsChanged      = "Tacit workspace settings changed. Restart the analyzer to apply the new configuration."
	_actionRestartAnalyzer   = "Restart analyzer"
	_fmtErrSessionFromCtx    = "getting session from context: %w"
	_fmtErrSettingUpdatedSes = "setting updated session state: %w"
)

// Initialize will store information about a new connection and perform any setup needed.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	result := &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{
			Name: _serverName,
		},
		Capabilities: protocol.ServerCapabilities{
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: entity.SupportedCommands(),
			},
		},
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf(_fmtErrSessionFromCtx, err)
	}

	s.InitializeParams = params
	folders := mapper.InitializeParamsToWorkspaceFolders(params)
	if s.WorkspaceRoot, err = c.workspaceUtils.GetWorkspaceRoot(ctx, folders); err != nil {
		c.logger.Warnf("getting workspace root: %s", err)
	}

	if s.WorkspaceRoot != "" {
		if s.Env, err = c.workspaceUtils.GetEnv(ctx, s.WorkspaceRoot); err != nil {
			return nil, fmt.Errorf("getting environment: %w", err)
		}
	}

	s.Settings = c.sessionSettings(ctx, s.WorkspaceRoot, params)

	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, fmt.Errorf(_fmtErrSettingUpdatedSes, err)
	}

	if s.WorkspaceRoot != "" {
		c.watchSettings(s.UUID, s.WorkspaceRoot)
	}

	return result, nil
}

// Initialized handles any actions that need to occur immediately after initialization.
// The analyzer launch itself runs asynchronously so the editor's handshake is
// never held up by dependency resolution.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf(_fmtErrSessionFromCtx, err)
	}

	c.editorGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Message: _msgInitialized,
		Type:    protocol.MessageTypeInfo,
	})

	launchCtx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.launcher.Launch(launchCtx); err != nil {
			// The launcher has already surfaced the failure to the editor.
			c.logger.Warnf("launching analyzer: %s", err)
		}
	}()

	return nil
}

// Shutdown is sent just before Exit to indicate that the session will exit.
func (c *controller) Shutdown(ctx context.Context) error {
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	c.idleTimerMu.Lock()
	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}
	c.idleTimerMu.Unlock()

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}

	return c.EndSession(ctx, s.UUID)
}

// sessionSettings merges the launch configuration layers in override order:
// daemon defaults, then workspace settings, then initializationOptions.
func (c *controller) sessionSettings(ctx context.Context, workspaceRoot string, params *protocol.InitializeParams) entity.LaunchSettings {
	merged := c.baseSettings

	if workspaceRoot != "" {
		workspaceSettings, err := c.workspaceConfig.Load(ctx, workspaceRoot)
		if err != nil {
			c.logger.Warnf("loading workspace settings: %s", err)
		} else {
			merged = mapper.MergeLaunchSettings(merged, workspaceSettings)
		}
	}

	if params != nil {
		optionSettings, err := mapper.InitializationOptionsToSettings(params.InitializationOptions)
		if err != nil {
			c.logger.Warnf("reading initialization options: %s", err)
		} else {
			merged = mapper.MergeLaunchSettings(merged, optionSettings)
		}
	}

	return merged
}

// watchSettings observes the workspace settings file and prompts the session's
// editor to restart the analyzer after each change. Changes never restart the
// analyzer on their own.
func (c *controller) watchSettings(id uuid.UUID, workspaceRoot string) {
	sessionCtx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	stop, err := c.workspaceConfig.Watch(sessionCtx, workspaceRoot, func() {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.promptSettingsRestart(sessionCtx)
		}()
	})
	if err != nil {
		c.logger.Warnf("watching workspace settings: %s", err)
		return
	}

	c.settingsWatchMu.Lock()
	c.settingsWatchStops[id] = stop
	c.settingsWatchMu.Unlock()
}

// promptSettingsRestart re-merges the session's launch settings from the
// changed file, then offers a restart to apply them.
func (c *controller) promptSettingsRestart(ctx context.Context) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		// The session ended between the file event and this prompt.
		return
	}

	s.Settings = c.sessionSettings(ctx, s.WorkspaceRoot, s.InitializeParams)
	if err := c.sessions.Set(ctx, s); err != nil {
		c.logger.Warnf("storing refreshed settings: %s", err)
	}

	selected, err := c.editorGateway.ShowMessageRequest(ctx, &protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeInfo,
		Message: _msgSettingsChanged,
		Actions: []protocol.MessageActionItem{{Title: _actionRestartAnalyzer}},
	})
	if err != nil {
		c.logger.Warnf("prompting settings restart: %s", err)
		return
	}
	if selected == nil || selected.Title != _actionRestartAnalyzer {
		return
	}

	if err := c.launcher.Restart(ctx); err != nil {
		c.logger.Warnf("restarting after settings change: %s", err)
	}
}
