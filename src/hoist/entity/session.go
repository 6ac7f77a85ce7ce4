// Package entity contains the domain logic for the hoist daemon.
package entity

import (
	"fmt"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// TacitConfigKey is the key that contains analyzer launch configuration.
const TacitConfigKey = "tacit"

const (
	// DefaultServerVersion is the tacit-server release launched when no override is configured.
	DefaultServerVersion = "1.4.3"

	// ServerEntryPoint is the main class started by the server launch invocation.
	ServerEntryPoint = "tacitlang.server.Main"

	_serverArtifactGroup = "io.tacitlang"
	_serverArtifactName  = "tacit-server_3"
)

// Session entity representing a single editor session.
type Session struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	WorkspaceRoot    string                     `json:"workspaceRoot" zap:"workspaceRoot"`
	Env              []string                   `json:"-" zap:"-"`
	Settings         LaunchSettings             `json:"-" zap:"-"`
}

// ClientName identifies the name that will be set in the initialization parameters for a given client.
type ClientName string

const (
	// ClientNameVSCode is the name of the VSCode client.
	ClientNameVSCode ClientName = "Visual Studio Code"
	// ClientNameCursor is the name of the Cursor client.
	ClientNameCursor ClientName = "Cursor"
)

// LaunchSettings carries the analyzer launch configuration for one session.
// Values are merged from daemon config, workspace settings, and initialize options.
type LaunchSettings struct {
	JavaHome           string   `yaml:"javaHome" json:"javaHome,omitempty"`
	ServerVersion      string   `yaml:"serverVersion" json:"serverVersion,omitempty"`
	ServerProperties   []string `yaml:"serverProperties" json:"serverProperties,omitempty"`
	CustomRepositories []string `yaml:"customRepositories" json:"customRepositories,omitempty"`
}

// Version returns the configured server version, falling back to the default release.
func (s LaunchSettings) Version() string {
	if s.ServerVersion != "" {
		return s.ServerVersion
	}
	return DefaultServerVersion
}

// VersionOverridden reports whether this session launches a non-default server version.
func (s LaunchSettings) VersionOverridden() bool {
	return s.ServerVersion != "" && s.ServerVersion != DefaultServerVersion
}

// ArtifactCoordinate returns the Maven coordinate of the configured tacit-server release.
func (s LaunchSettings) ArtifactCoordinate() string {
	return fmt.Sprintf("%s:%s:%s", _serverArtifactGroup, _serverArtifactName, s.Version())
}
