package entity

import "encoding/json"

// Extension methods exchanged with the tacit-server process.
const (
	// MethodExecuteClientCommand is sent by the server to request a host-side effect.
	MethodExecuteClientCommand = "tacit/executeClientCommand"
	// MethodPublishDecorations is sent by the server with the full decoration set for one document.
	MethodPublishDecorations = "tacit/publishDecorations"
	// MethodDidFocusTextDocument notifies the server that the editor focused a document.
	MethodDidFocusTextDocument = "tacit/didFocusTextDocument"
)

// Extension methods exchanged with the editor connection.
const (
	// MethodDidBlurTextDocument notifies the daemon that a document lost editor focus.
	MethodDidBlurTextDocument = "tacit/didBlurTextDocument"
	// MethodDoctorVisibilityDidChange notifies the daemon that the doctor view was shown or hidden.
	MethodDoctorVisibilityDidChange = "tacit/doctorVisibilityDidChange"
	// MethodShowDoctor asks the editor to render a doctor report.
	MethodShowDoctor = "tacit/showDoctor"
	// MethodFocusDiagnostics asks the editor to focus its diagnostics list.
	MethodFocusDiagnostics = "tacit/focusDiagnostics"
	// MethodToggleLogs asks the editor to toggle the server log channel's visibility.
	MethodToggleLogs = "tacit/toggleLogs"
	// MethodShowDecorationHover asks the editor to render a decoration payload in a transient overlay.
	MethodShowDecorationHover = "tacit/showDecorationHover"
	// MethodRequestFullShutdown asks the daemon to exit once outstanding sessions end.
	MethodRequestFullShutdown = "hoist/requestFullShutdown"
)

// Host commands registered on the editor's command surface. Namespaced to stay
// disjoint from editor-native command identifiers.
const (
	CommandBuildImport      = "tacit.build-import"
	CommandBuildConnect     = "tacit.build-connect"
	CommandSourcesScan      = "tacit.sources-scan"
	CommandDoctorRun        = "tacit.doctor-run"
	CommandCompileCascade   = "tacit.compile-cascade"
	CommandCompileCancel    = "tacit.compile-cancel"
	CommandLogsToggle       = "tacit.logs-toggle"
	CommandServerRestart    = "tacit.server-restart"
	CommandDecorationExpand = "tacit.decoration-expand"
)

// SupportedCommands lists every host command served over workspace/executeCommand.
func SupportedCommands() []string {
	return []string{
		CommandBuildImport,
		CommandBuildConnect,
		CommandSourcesScan,
		CommandDoctorRun,
		CommandCompileCascade,
		CommandCompileCancel,
		CommandLogsToggle,
		CommandServerRestart,
		CommandDecorationExpand,
	}
}

// ClientCommand is the payload of a tacit/executeClientCommand notification.
// Unknown Command values are a recoverable condition, not a fault.
type ClientCommand struct {
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// ClientCommandKind is the decoded variant of a ClientCommand's Command field.
type ClientCommandKind int

const (
	// ClientCommandUnknown for command values this daemon does not recognize.
	ClientCommandUnknown ClientCommandKind = iota
	// ClientCommandGotoLocation navigates the editor to a location.
	ClientCommandGotoLocation
	// ClientCommandDoctorRun renders a doctor report from an embedded JSON payload.
	ClientCommandDoctorRun
	// ClientCommandDoctorReload re-renders the doctor report if it is visible.
	ClientCommandDoctorReload
	// ClientCommandDiagnosticsFocus focuses the editor's diagnostics list.
	ClientCommandDiagnosticsFocus
	// ClientCommandLogsToggle toggles the server log channel's visibility.
	ClientCommandLogsToggle
)

// Wire values of the Command field.
const (
	_cmdGotoLocation     = "tacit-goto-location"
	_cmdDoctorRun        = "tacit-doctor-run"
	_cmdDoctorReload     = "tacit-doctor-reload"
	_cmdDiagnosticsFocus = "tacit-diagnostics-focus"
	_cmdLogsToggle       = "tacit-logs-toggle"
)

// Kind decodes the Command field into its variant, once, ahead of dispatch.
func (c ClientCommand) Kind() ClientCommandKind {
	switch c.Command {
	case _cmdGotoLocation:
		return ClientCommandGotoLocation
	case _cmdDoctorRun:
		return ClientCommandDoctorRun
	case _cmdDoctorReload:
		return ClientCommandDoctorReload
	case _cmdDiagnosticsFocus:
		return ClientCommandDiagnosticsFocus
	case _cmdLogsToggle:
		return ClientCommandLogsToggle
	default:
		return ClientCommandUnknown
	}
}

// String implements fmt.Stringer.
func (k ClientCommandKind) String() string {
	switch k {
	case ClientCommandGotoLocation:
		return _cmdGotoLocation
	case ClientCommandDoctorRun:
		return _cmdDoctorRun
	case ClientCommandDoctorReload:
		return _cmdDoctorReload
	case ClientCommandDiagnosticsFocus:
		return _cmdDiagnosticsFocus
	case ClientCommandLogsToggle:
		return _cmdLogsToggle
	default:
		return "unknown"
	}
}
