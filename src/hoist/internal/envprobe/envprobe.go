package envprobe

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_javaBinary     = "java"
	_javaHomeEnvVar = "JAVA_HOME"

	// MarkerFileName is placed in a workspace root by the legacy Tacit IDE tooling.
	// Its presence means another toolchain owns the analyzer for this workspace.
	MarkerFileName = ".tacit-ide-artifact"
)

// Module provides a new Prober.
var Module = fx.Provide(New)

//go:generate mockgen -source=envprobe.go -destination=envprobemock/envprobe_mock.go -package=envprobemock

// Prober inspects the host environment ahead of an analyzer launch.
type Prober interface {
	// ResolveJavaRuntime returns the path to the java binary to launch the analyzer with.
	// Candidates are tried in order: per-session javaHome setting, JAVA_HOME from the
	// session environment, then a PATH lookup.
	ResolveJavaRuntime(ctx context.Context, session *entity.Session) (string, error)

	// CheckToolchainConflict returns a ToolchainConflictError when the legacy marker
	// file is present in the workspace root.
	CheckToolchainConflict(ctx context.Context, workspaceRoot string) error

	// WatchMarker observes the workspace root for marker file changes and invokes
	// onChange with the marker's new presence state. The returned stop function
	// releases the watcher.
	WatchMarker(ctx context.Context, workspaceRoot string, onChange func(present bool)) (func() error, error)
}

// Params are the parameters required to create a new Prober.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	FS     fs.HoistFS
}

type proberImpl struct {
	logger   *zap.SugaredLogger
	fs       fs.HoistFS
	lookPath func(file string) (string, error)
}

// New creates a new Prober.
func New(p Params) Prober {
	return &proberImpl{
		logger:   p.Logger,
		fs:       p.FS,
		lookPath: exec.LookPath,
	}
}

func (p *proberImpl) ResolveJavaRuntime(ctx context.Context, session *entity.Session) (string, error) {
	hint := session.Settings.JavaHome
	if hint != "" {
		candidate := filepath.Join(hint, "bin", _javaBinary)
		ok, err := p.fs.FileExists(candidate)
		if err == nil && ok {
			return candidate, nil
		}
		// A stale hint should not block a launch when another runtime is available.
		p.logger.Warnf("configured javaHome %q has no %s binary, continuing search", hint, _javaBinary)
	}

	if home := envValue(session.Env, _javaHomeEnvVar); home != "" {
		candidate := filepath.Join(home, "bin", _javaBinary)
		ok, err := p.fs.FileExists(candidate)
		if err == nil && ok {
			return candidate, nil
		}
	}

	if path, err := p.lookPath(_javaBinary); err == nil {
		return path, nil
	}

	return "", &errors.EnvironmentError{Hint: hint}
}

func (p *proberImpl) CheckToolchainConflict(ctx context.Context, workspaceRoot string) error {
	marker := filepath.Join(workspaceRoot, MarkerFileName)
	ok, err := p.fs.FileExists(marker)
	if err != nil {
		return err
	}
	if ok {
		return &errors.ToolchainConflictError{Marker: marker}
	}
	return nil
}

func (p *proberImpl) WatchMarker(ctx context.Context, workspaceRoot string, onChange func(present bool)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the marker itself: the marker usually does not
	// exist yet, and removal events only arrive on the parent.
	if err := watcher.Add(workspaceRoot); err != nil {
		watcher.Close()
		return nil, err
	}

	marker := filepath.Join(workspaceRoot, MarkerFileName)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != marker {
					continue
				}
				switch {
				case event.Has(fsnotify.Create):
					onChange(true)
				case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
					onChange(false)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.logger.Warnf("watching %s: %s", marker, err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return watcher.Close, nil
}

func envValue(env []string, key string) string {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return strings.TrimPrefix(entry, prefix)
		}
	}
	return ""
}
