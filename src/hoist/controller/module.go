// Package controller provides the full set of hoist controllers to the fx graph.
package controller

import (
	"github.com/tacit-lsp/hoist/src/hoist/controller/commands"
	"github.com/tacit-lsp/hoist/src/hoist/controller/daemon"
	"github.com/tacit-lsp/hoist/src/hoist/controller/decorations"
	"github.com/tacit-lsp/hoist/src/hoist/controller/doctor"
	"github.com/tacit-lsp/hoist/src/hoist/controller/launcher"
	"github.com/tacit-lsp/hoist/src/hoist/controller/router"
	"go.uber.org/fx"
)

// Module provides every controller in the daemon.
var Module = fx.Options(
	fx.Provide(daemon.New),
	fx.Provide(launcher.New),
	fx.Provide(commands.New),
	fx.Provide(router.New),
	fx.Provide(decorations.New),
	fx.Provide(doctor.New),
)
