// Package app assembles the hoist daemon's Fx application.
package app

import (
	"context"
	"time"

	"github.com/tacit-lsp/hoist/src/hoist/gateway"
	"github.com/tacit-lsp/hoist/src/hoist/handler"
	"github.com/tacit-lsp/hoist/src/hoist/internal/clock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/core"
	"github.com/tacit-lsp/hoist/src/hoist/internal/coursier"
	"github.com/tacit-lsp/hoist/src/hoist/internal/envprobe"
	"github.com/tacit-lsp/hoist/src/hoist/internal/executor"
	"github.com/tacit-lsp/hoist/src/hoist/internal/fs"
	"github.com/tacit-lsp/hoist/src/hoist/internal/jsonrpcfx"
	"github.com/tacit-lsp/hoist/src/hoist/internal/progress"
	"github.com/tacit-lsp/hoist/src/hoist/internal/serverinfofile"
	workspaceutils "github.com/tacit-lsp/hoist/src/hoist/internal/workspace-utils"
	"github.com/tacit-lsp/hoist/src/hoist/internal/workspacecfg"
	tally "github.com/uber-go/tally"
	"go.uber.org/fx"
)

// Module defines the hoist-daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	workspaceutils.Module,
	workspacecfg.Module,
	envprobe.Module,
	coursier.Module,
	progress.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "hoist-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
