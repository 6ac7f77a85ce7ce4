package hoistdaemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tacit-lsp/hoist/src/hoist/controller/daemon/daemonmock"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func newTestRouter(c *daemonmock.MockController) *jsonRPCRouter {
	return &jsonRPCRouter{
		daemon: c,
		stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name             string
		controllerResult *protocol.InitializeResult
		controllerError  error
		wantErr          bool
	}{
		{
			name:            "error from controller",
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
		{
			name:             "no error from controller",
			controllerResult: &protocol.InitializeResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			c := daemonmock.NewMockController(ctrl)
			c.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(tt.controllerResult, tt.controllerError)

			r := newTestRouter(c)
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodInitialize, protocol.InitializeParams{})
			err := r.HandleReq(ctx, newMockReplier(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("malformed params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newTestRouter(daemonmock.NewMockController(ctrl))

		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodInitialize, "not an object")
		err := r.HandleReq(context.Background(), newMockReplier(), req)
		assert.Error(t, err)
	})
}

func TestInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := daemonmock.NewMockController(ctrl)
	c.EXPECT().Initialized(gomock.Any(), gomock.Any()).Return(nil)

	r := newTestRouter(c)
	req, _ := jsonrpc2.NewNotification(protocol.MethodInitialized, protocol.InitializedParams{})
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
}

func TestShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := daemonmock.NewMockController(ctrl)
	c.EXPECT().Shutdown(gomock.Any()).Return(nil)

	r := newTestRouter(c)
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodShutdown, nil)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
}

func TestExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := daemonmock.NewMockController(ctrl)
	c.EXPECT().Exit(gomock.Any()).Return(nil)

	replied := false
	replier := func(ctx context.Context, result interface{}, err error) error {
		replied = true
		return err
	}

	r := newTestRouter(c)
	req, _ := jsonrpc2.NewNotification(protocol.MethodExit, nil)
	assert.NoError(t, r.HandleReq(context.Background(), replier, req))
	assert.True(t, replied)
}

func TestRequestFullShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := daemonmock.NewMockController(ctrl)
	c.EXPECT().RequestFullShutdown(gomock.Any()).Return(nil)

	r := newTestRouter(c)
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), "hoist/requestFullShutdown", nil)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
}
