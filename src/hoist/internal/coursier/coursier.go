package coursier

import (
	"bytes"
	"context"
	stderr "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/internal/executor"
	"github.com/tacit-lsp/hoist/src/hoist/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_coursierBinary = "coursier"

	_noTermEnvEntry     = "COURSIER_NO_TERM=true"
	_fmtRepositoriesEnv = "COURSIER_REPOSITORIES=%s"
	_flagRepository     = "-r"
	_repositoryCentral  = "central"
	_repositorySonatype = "sonatype:releases"
)

// Module provides a new Resolver.
var Module = fx.Provide(New)

//go:generate mockgen -source=coursier.go -destination=coursiermock/coursier_mock.go -package=coursiermock

// Resolver materializes the analyzer artifact's transitive classpath.
type Resolver interface {
	// Fetch resolves the classpath for the session's artifact coordinate.
	// Resolver output is streamed line by line to progressOut as it arrives; on
	// success the final stdout line is the classpath.
	Fetch(ctx context.Context, session *entity.Session, progressOut io.Writer) (string, error)
}

// Params are the parameters required to create a new Resolver.
type Params struct {
	fx.In

	Logger   *zap.SugaredLogger
	Executor executor.Executor
}

type resolverImpl struct {
	logger   *zap.SugaredLogger
	executor executor.Executor
}

// New creates a new Resolver.
func New(p Params) Resolver {
	return &resolverImpl{
		logger:   p.Logger,
		executor: p.Executor,
	}
}

func (r *resolverImpl) Fetch(ctx context.Context, session *entity.Session, progressOut io.Writer) (string, error) {
	coordinate := session.Settings.ArtifactCoordinate()
	args := []string{
		"fetch",
		"-p",
		"--ttl", "Inf",
		coordinate,
		_flagRepository, _repositoryCentral,
		_flagRepository, _repositorySonatype,
		"-p",
	}

	var stdout, stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, _coursierBinary, args...)
	cmd.Dir = session.WorkspaceRoot
	if progressOut != nil {
		cmd.Stdout = io.MultiWriter(&stdout, progressOut)
		cmd.Stderr = io.MultiWriter(&stderrBuf, progressOut)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderrBuf
	}

	if err := r.executor.RunCommand(cmd, r.buildEnv(session)); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderr.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &errors.DependencyResolutionError{
			Coordinate: coordinate,
			ExitCode:   exitCode,
			Output:     strings.TrimSpace(stdout.String() + "\n" + stderrBuf.String()),
		}
	}

	classpath := lastLine(stdout.String())
	if classpath == "" {
		// Exit 0 with no classpath on stdout still leaves nothing to launch.
		return "", &errors.DependencyResolutionError{
			Coordinate: coordinate,
			ExitCode:   0,
			Output:     strings.TrimSpace(stderrBuf.String()),
		}
	}

	r.logger.Infow("Resolved analyzer classpath", "coordinate", coordinate, "entries", strings.Count(classpath, string(os.PathListSeparator))+1)
	return classpath, nil
}

// buildEnv assembles the resolver environment from the session's workspace
// environment, forcing non-interactive output and injecting any custom
// repositories.
func (r *resolverImpl) buildEnv(session *entity.Session) []string {
	base := session.Env
	if len(base) == 0 {
		base = os.Environ()
	}

	env := make([]string, 0, len(base)+2)
	env = append(env, base...)
	env = append(env, _noTermEnvEntry)
	if len(session.Settings.CustomRepositories) > 0 {
		env = append(env, fmt.Sprintf(_fmtRepositoriesEnv, mapper.RepositoriesToEnvValue(session.Settings.CustomRepositories)))
	}
	return env
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
