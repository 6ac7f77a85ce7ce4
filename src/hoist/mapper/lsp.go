package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInitializedParams maps the parameters from a jsonrpc2.Request into protocol.InitializedParams.
func RequestToInitializedParams(req jsonrpc2.Request) (*protocol.InitializedParams, error) {
	params := protocol.InitializedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsonrpc2.Request into protocol.ExecuteCommandParams.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*protocol.ExecuteCommandParams, error) {
	params := protocol.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}

	// store params.Arguments as json.RawMessage instead of []map[string]interface{}
	// this will allow command handlers to unmarshal the arguments themselves, and
	// arguments forwarded to the analyzer re-encode as their original JSON.
	rawArgs := []interface{}{}
	for _, arg := range params.Arguments {
		rawArg, err := json.Marshal(arg)
		if err != nil {
			return nil, wrapErrParse(err)
		}
		rawArgs = append(rawArgs, json.RawMessage(rawArg))
	}

	params.Arguments = rawArgs
	return &params, nil
}

// RequestToClientCommand maps the parameters from a jsonrpc2.Request into entity.ClientCommand.
func RequestToClientCommand(req jsonrpc2.Request) (*entity.ClientCommand, error) {
	params := entity.ClientCommand{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToPublishDecorationsParams maps the parameters from a jsonrpc2.Request into entity.PublishDecorationsParams.
func RequestToPublishDecorationsParams(req jsonrpc2.Request) (*entity.PublishDecorationsParams, error) {
	params := entity.PublishDecorationsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToFocusTextDocumentParams maps the parameters from a jsonrpc2.Request into entity.FocusTextDocumentParams.
func RequestToFocusTextDocumentParams(req jsonrpc2.Request) (*entity.FocusTextDocumentParams, error) {
	params := entity.FocusTextDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDoctorVisibilityParams maps the parameters from a jsonrpc2.Request into entity.DoctorVisibilityParams.
func RequestToDoctorVisibilityParams(req jsonrpc2.Request) (*entity.DoctorVisibilityParams, error) {
	params := entity.DoctorVisibilityParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
