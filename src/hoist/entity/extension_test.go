package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientCommandKind(t *testing.T) {
	testCases := []struct {
		name     string
		command  string
		expected ClientCommandKind
	}{
		{
			name:     "goto location",
			command:  "tacit-goto-location",
			expected: ClientCommandGotoLocation,
		},
		{
			name:     "doctor run",
			command:  "tacit-doctor-run",
			expected: ClientCommandDoctorRun,
		},
		{
			name:     "doctor reload",
			command:  "tacit-doctor-reload",
			expected: ClientCommandDoctorReload,
		},
		{
			name:     "diagnostics focus",
			command:  "tacit-diagnostics-focus",
			expected: ClientCommandDiagnosticsFocus,
		},
		{
			name:     "logs toggle",
			command:  "tacit-logs-toggle",
			expected: ClientCommandLogsToggle,
		},
		{
			name:     "unrecognized",
			command:  "tacit-future-command",
			expected: ClientCommandUnknown,
		},
		{
			name:     "empty",
			command:  "",
			expected: ClientCommandUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ClientCommand{Command: tc.command}
			assert.Equal(t, tc.expected, c.Kind())
		})
	}
}

func TestClientCommandKindString(t *testing.T) {
	kinds := []ClientCommandKind{
		ClientCommandGotoLocation,
		ClientCommandDoctorRun,
		ClientCommandDoctorReload,
		ClientCommandDiagnosticsFocus,
		ClientCommandLogsToggle,
	}

	seen := make(map[string]struct{})
	for _, k := range kinds {
		str := k.String()
		assert.NotEqual(t, "unknown", str)

		// Round trip back to the same variant.
		assert.Equal(t, k, ClientCommand{Command: str}.Kind())
		seen[str] = struct{}{}
	}
	assert.Len(t, seen, len(kinds))
	assert.Equal(t, "unknown", ClientCommandUnknown.String())
}

func TestSupportedCommands(t *testing.T) {
	commands := SupportedCommands()
	assert.Len(t, commands, 9)

	seen := make(map[string]struct{})
	for _, c := range commands {
		assert.Contains(t, c, "tacit.", "host commands must be namespaced")
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, len(commands))
}

func TestLaunchStateString(t *testing.T) {
	testCases := []struct {
		state    LaunchState
		expected string
	}{
		{LaunchStateIdle, "idle"},
		{LaunchStateProbingEnvironment, "probing-environment"},
		{LaunchStateResolvingDependencies, "resolving-dependencies"},
		{LaunchStateStarting, "starting"},
		{LaunchStateRunning, "running"},
		{LaunchState(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.state.String())
		})
	}
}

func TestServerSessionActive(t *testing.T) {
	t.Run("nil session", func(t *testing.T) {
		var s *ServerSession
		assert.False(t, s.Active())
	})

	t.Run("not yet running", func(t *testing.T) {
		s := &ServerSession{State: LaunchStateStarting}
		assert.False(t, s.Active())
	})

	t.Run("running", func(t *testing.T) {
		s := &ServerSession{State: LaunchStateRunning}
		assert.True(t, s.Active())
	})
}
