package mapper

import (
	"encoding/json"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToShowMessageParams maps the parameters from a jsonrpc2.Request into protocol.ShowMessageParams.
func RequestToShowMessageParams(req jsonrpc2.Request) (*protocol.ShowMessageParams, error) {
	params := protocol.ShowMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowMessageRequestParams maps the parameters from a jsonrpc2.Request into protocol.ShowMessageRequestParams.
func RequestToShowMessageRequestParams(req jsonrpc2.Request) (*protocol.ShowMessageRequestParams, error) {
	params := protocol.ShowMessageRequestParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToLogMessageParams maps the parameters from a jsonrpc2.Request into protocol.LogMessageParams.
func RequestToLogMessageParams(req jsonrpc2.Request) (*protocol.LogMessageParams, error) {
	params := protocol.LogMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToPublishDiagnosticsParams maps the parameters from a jsonrpc2.Request into protocol.PublishDiagnosticsParams.
func RequestToPublishDiagnosticsParams(req jsonrpc2.Request) (*protocol.PublishDiagnosticsParams, error) {
	params := protocol.PublishDiagnosticsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToProgressParams maps the parameters from a jsonrpc2.Request into protocol.ProgressParams.
func RequestToProgressParams(req jsonrpc2.Request) (*protocol.ProgressParams, error) {
	params := protocol.ProgressParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToWorkDoneProgressCreateParams maps the parameters from a jsonrpc2.Request into protocol.WorkDoneProgressCreateParams.
func RequestToWorkDoneProgressCreateParams(req jsonrpc2.Request) (*protocol.WorkDoneProgressCreateParams, error) {
	params := protocol.WorkDoneProgressCreateParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowDocumentParams maps the parameters from a jsonrpc2.Request into protocol.ShowDocumentParams.
func RequestToShowDocumentParams(req jsonrpc2.Request) (*protocol.ShowDocumentParams, error) {
	params := protocol.ShowDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// InitializeResultToDecorationProvider reports whether the analyzer's
// experimental capabilities advertise decoration support.
func InitializeResultToDecorationProvider(result *protocol.InitializeResult) bool {
	if result == nil || result.Capabilities.Experimental == nil {
		return false
	}

	experimental, ok := result.Capabilities.Experimental.(map[string]interface{})
	if !ok {
		return false
	}

	provider, ok := experimental["decorationProvider"].(bool)
	return ok && provider
}
