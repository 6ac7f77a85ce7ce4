package entity

import (
	"os/exec"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// LaunchState identifies the current phase of an analyzer launch sequence.
type LaunchState int

const (
	// LaunchStateIdle before any launch attempt, and again after a failed one.
	LaunchStateIdle LaunchState = iota
	// LaunchStateProbingEnvironment while locating a Java runtime and checking for toolchain conflicts.
	LaunchStateProbingEnvironment
	// LaunchStateResolvingDependencies while the resolver subprocess computes the server classpath.
	LaunchStateResolvingDependencies
	// LaunchStateStarting while the server process is spawned and the handshake completes.
	LaunchStateStarting
	// LaunchStateRunning once the analyzer session is live.
	LaunchStateRunning
)

// String implements fmt.Stringer.
func (s LaunchState) String() string {
	switch s {
	case LaunchStateIdle:
		return "idle"
	case LaunchStateProbingEnvironment:
		return "probing-environment"
	case LaunchStateResolvingDependencies:
		return "resolving-dependencies"
	case LaunchStateStarting:
		return "starting"
	case LaunchStateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// ServerLaunchConfig is the assembled launch invocation for one activation.
// Built once per activation and not mutated afterwards.
type ServerLaunchConfig struct {
	RuntimePath string
	Classpath   string
	ExtraArgs   []string
	Environment []string
}

// ServerSession wraps one live tacit-server process and its message channel.
// It is owned exclusively by the launcher; once invalidated it must not be used.
type ServerSession struct {
	Process      *exec.Cmd
	Conn         jsonrpc2.Conn
	Server       protocol.Server
	State        LaunchState
	LaunchConfig ServerLaunchConfig

	// DecorationProvider records whether the negotiated capabilities include decoration support.
	DecorationProvider bool

	// InitializeResult holds the server's handshake response for capability checks.
	InitializeResult *protocol.InitializeResult
}

// Active reports whether the session can still carry traffic.
func (s *ServerSession) Active() bool {
	return s != nil && s.State == LaunchStateRunning
}
