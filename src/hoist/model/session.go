// Package model contains the repository layer models for the hoist daemon.
package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Session is the repository layer model for an individual editor session.
type Session struct {
	UUID               uuid.UUID
	InitializeParams   *protocol.InitializeParams
	Conn               *jsonrpc2.Conn
	WorkspaceRoot      string
	Env                []string
	JavaHome           string
	ServerVersion      string
	ServerProperties   []string
	CustomRepositories []string
}
