// Package workspacecfg reads per-workspace analyzer settings from the
// workspace's .tacit directory and watches them for changes.
package workspacecfg

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsDirName is the workspace directory holding Tacit tooling files.
	SettingsDirName = ".tacit"
	// SettingsFileName holds the per-workspace launch settings overrides.
	SettingsFileName = "settings.yaml"

	_repoSeparator = "|"
)

// Module provides a new WorkspaceConfig.
var Module = fx.Provide(New)

//go:generate mockgen -source=workspacecfg.go -destination=workspacecfgmock/workspacecfg_mock.go -package=workspacecfgmock

// WorkspaceConfig loads launch settings overrides from the workspace.
type WorkspaceConfig interface {
	// Load returns the settings from <workspaceRoot>/.tacit/settings.yaml.
	// A missing file yields zero settings and no error.
	Load(ctx context.Context, workspaceRoot string) (entity.LaunchSettings, error)

	// Watch observes the settings file for changes and invokes onChange after
	// each write. The returned stop function releases the watcher.
	Watch(ctx context.Context, workspaceRoot string, onChange func()) (func() error, error)
}

// SettingsPath returns the settings file location for a workspace root.
func SettingsPath(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, SettingsDirName, SettingsFileName)
}

// Params are the parameters required to create a new WorkspaceConfig.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	FS     fs.HoistFS
}

type workspaceConfigImpl struct {
	logger *zap.SugaredLogger
	fs     fs.HoistFS
}

// New creates a new WorkspaceConfig.
func New(p Params) WorkspaceConfig {
	return &workspaceConfigImpl{
		logger: p.Logger,
		fs:     p.FS,
	}
}

func (w *workspaceConfigImpl) Load(ctx context.Context, workspaceRoot string) (entity.LaunchSettings, error) {
	settings := entity.LaunchSettings{}

	path := SettingsPath(workspaceRoot)
	ok, err := w.fs.FileExists(path)
	if err != nil {
		return settings, fmt.Errorf("checking %q: %w", path, err)
	}
	if !ok {
		return settings, nil
	}

	data, err := w.fs.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return entity.LaunchSettings{}, fmt.Errorf("parsing %q: %w", path, err)
	}

	if err := validate(settings); err != nil {
		return entity.LaunchSettings{}, fmt.Errorf("invalid settings in %q: %w", path, err)
	}
	return settings, nil
}

// validate rejects entries that would corrupt the launch invocation. Repository
// URIs are otherwise passed through opaquely, without well-formedness checks.
func validate(settings entity.LaunchSettings) error {
	var result error
	for i, prop := range settings.ServerProperties {
		if strings.TrimSpace(prop) == "" {
			result = multierr.Append(result, fmt.Errorf("serverProperties[%d] is empty", i))
		}
	}
	for i, repo := range settings.CustomRepositories {
		if strings.TrimSpace(repo) == "" {
			result = multierr.Append(result, fmt.Errorf("customRepositories[%d] is empty", i))
		}
		// The repository list is pipe-joined into a single environment value.
		if strings.Contains(repo, _repoSeparator) {
			result = multierr.Append(result, fmt.Errorf("customRepositories[%d] contains the reserved separator %q", i, _repoSeparator))
		}
	}
	return result
}

func (w *workspaceConfigImpl) Watch(ctx context.Context, workspaceRoot string, onChange func()) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file itself: editors replace files on
	// save, and rename events only arrive on the parent.
	dir := filepath.Join(workspaceRoot, SettingsDirName)
	if ok, err := w.fs.DirExists(dir); err != nil || !ok {
		// Settings may be created later, fall back to watching the root for the directory.
		dir = workspaceRoot
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	settingsPath := SettingsPath(workspaceRoot)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != settingsPath && event.Name != filepath.Dir(settingsPath) {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warnf("watching %s: %s", settingsPath, err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return watcher.Close, nil
}
