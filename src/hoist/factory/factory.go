// Package factory provides shared test fixtures.
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// ClientCommand is a factory for a tacit/executeClientCommand payload with JSON-encoded arguments.
func ClientCommand(command string, args ...interface{}) entity.ClientCommand {
	rawArgs := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		data, _ := json.Marshal(a)
		rawArgs = append(rawArgs, data)
	}
	return entity.ClientCommand{Command: command, Arguments: rawArgs}
}

// DoctorReport is a factory for a populated doctor report.
func DoctorReport(targets int) entity.DoctorReport {
	report := entity.DoctorReport{
		Title:   "Tacit Doctor",
		Summary: "All build targets loaded",
	}
	for i := 0; i < targets; i++ {
		report.Targets = append(report.Targets, entity.DoctorTarget{
			Name:        fmt.Sprintf("services/api%d", i),
			Status:      "ok",
			Explanation: "",
		})
	}
	return report
}
