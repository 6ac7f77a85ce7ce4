// Package mapper converts between wire requests, entities, and repository models.
package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	"github.com/tacit-lsp/hoist/src/hoist/model"
	"go.lsp.dev/jsonrpc2"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(f *entity.Session) *model.Session {
	return &model.Session{
		UUID:               f.UUID,
		InitializeParams:   f.InitializeParams,
		Conn:               f.Conn,
		WorkspaceRoot:      f.WorkspaceRoot,
		Env:                f.Env,
		JavaHome:           f.Settings.JavaHome,
		ServerVersion:      f.Settings.ServerVersion,
		ServerProperties:   f.Settings.ServerProperties,
		CustomRepositories: f.Settings.CustomRepositories,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(f *model.Session) (*entity.Session, error) {
	return &entity.Session{
		UUID:             f.UUID,
		InitializeParams: f.InitializeParams,
		Conn:             f.Conn,
		WorkspaceRoot:    f.WorkspaceRoot,
		Env:              f.Env,
		Settings: entity.LaunchSettings{
			JavaHome:           f.JavaHome,
			ServerVersion:      f.ServerVersion,
			ServerProperties:   f.ServerProperties,
			CustomRepositories: f.CustomRepositories,
		},
	}, nil
}

// UUIDToSession initializes a new Session entity with the assigned uuid and connection.
func UUIDToSession(u uuid.UUID, c *jsonrpc2.Conn) *entity.Session {
	return &entity.Session{
		UUID: u,
		Conn: c,
	}
}

// ContextToSessionUUID extracts the UUID from a context
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}
