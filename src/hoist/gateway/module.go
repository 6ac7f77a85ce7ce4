package gateway

import (
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"go.uber.org/fx"
)

// Module provides the outbound gateways into an Fx application.
var Module = fx.Options(
	fx.Provide(editor.New),
)
