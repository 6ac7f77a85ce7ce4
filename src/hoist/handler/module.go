// Package handler provides the hoist daemon's editor-facing surface into an Fx application.
package handler

import (
	controller "github.com/tacit-lsp/hoist/src/hoist/controller"
	daemon "github.com/tacit-lsp/hoist/src/hoist/controller/daemon"
	hoistdaemon "github.com/tacit-lsp/hoist/src/hoist/handler/hoist-daemon"
	"github.com/tacit-lsp/hoist/src/hoist/repository/session"
	"go.uber.org/fx"
)

// Module provides the hoist-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(hoistdaemon.New),
	fx.Invoke(func(h hoistdaemon.Handler) {}),
	fx.Invoke(func(c daemon.Controller) {}),
)
