package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"go.lsp.dev/protocol"
)

// AgentFlagPrefix marks server properties that configure a JVM agent. They are
// passed through to the launch argv but excluded from user-facing reports.
const AgentFlagPrefix = "-agentlib:"

const _fmtClientProperty = "-Dtacit.client=%s"

// _baseServerFlags are the tuning flags every tacit-server launch carries, first in the argv.
var _baseServerFlags = []string{
	"-XX:+UseG1GC",
	"-XX:+UseStringDeduplication",
	"-Xss4m",
	"-Xms100m",
}

// LaunchConfigToArgs assembles the server argument vector in its fixed order:
// base tuning flags, client hint, passthrough properties as configured, classpath,
// entry point. Properties are not deduplicated; later entries override earlier
// ones with identical keys by JVM semantics.
func LaunchConfigToArgs(cfg entity.ServerLaunchConfig, client entity.ClientName) []string {
	args := make([]string, 0, len(_baseServerFlags)+len(cfg.ExtraArgs)+4)
	args = append(args, _baseServerFlags...)
	args = append(args, fmt.Sprintf(_fmtClientProperty, ClientNameToHint(client)))
	args = append(args, cfg.ExtraArgs...)
	args = append(args, "-classpath", cfg.Classpath, entity.ServerEntryPoint)
	return args
}

// ClientNameToHint normalizes the editor client name for the launch property value.
func ClientNameToHint(name entity.ClientName) string {
	switch name {
	case entity.ClientNameVSCode:
		return "vscode"
	case entity.ClientNameCursor:
		return "cursor"
	case "":
		return "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(string(name)), " ", "-")
}

// ReportableServerProperties returns the configured properties to surface to the
// user, excluding agent flags.
func ReportableServerProperties(props []string) []string {
	reported := make([]string, 0, len(props))
	for _, p := range props {
		if strings.HasPrefix(p, AgentFlagPrefix) {
			continue
		}
		reported = append(reported, p)
	}
	return reported
}

// RepositoriesToEnvValue pipe-joins the custom repository list for the resolver
// environment. Entries are passed through opaquely, without URI validation.
func RepositoriesToEnvValue(repos []string) string {
	return strings.Join(repos, "|")
}

// MergeLaunchSettings overlays override onto base. Scalar fields win when
// non-empty; list fields replace the base list entirely when present.
func MergeLaunchSettings(base, override entity.LaunchSettings) entity.LaunchSettings {
	merged := base
	if override.JavaHome != "" {
		merged.JavaHome = override.JavaHome
	}
	if override.ServerVersion != "" {
		merged.ServerVersion = override.ServerVersion
	}
	if override.ServerProperties != nil {
		merged.ServerProperties = override.ServerProperties
	}
	if override.CustomRepositories != nil {
		merged.CustomRepositories = override.CustomRepositories
	}
	return merged
}

// InitializationOptionsToSettings decodes the initialize request's
// initializationOptions into LaunchSettings. Nil options yield zero settings.
func InitializationOptionsToSettings(opts interface{}) (entity.LaunchSettings, error) {
	settings := entity.LaunchSettings{}
	if opts == nil {
		return settings, nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return settings, fmt.Errorf("encoding initialization options: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing initialization options: %w", err)
	}
	return settings, nil
}

// InitializeParamsToClientName extracts the connecting client's name.
func InitializeParamsToClientName(params *protocol.InitializeParams) entity.ClientName {
	if params == nil || params.ClientInfo == nil {
		return ""
	}
	return entity.ClientName(params.ClientInfo.Name)
}

// InitializeParamsToWorkspaceFolders returns the declared workspace folders,
// synthesizing one from the root URI or path for clients that predate folders.
func InitializeParamsToWorkspaceFolders(params *protocol.InitializeParams) []protocol.WorkspaceFolder {
	if params == nil {
		return nil
	}
	if len(params.WorkspaceFolders) > 0 {
		return params.WorkspaceFolders
	}
	if params.RootURI != "" {
		return []protocol.WorkspaceFolder{{URI: string(params.RootURI)}}
	}
	if params.RootPath != "" {
		return []protocol.WorkspaceFolder{{URI: params.RootPath}}
	}
	return nil
}
