package doctor

import (
	"context"
	"encoding/json"
	stderr "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"github.com/tacit-lsp/hoist/src/hoist/factory"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor/editormock"
	"github.com/tacit-lsp/hoist/src/hoist/internal/errors"
	tally "github.com/uber-go/tally"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.NotPanics(t, func() {
		New(Params{
			EditorGateway: editormock.NewMockGateway(ctrl),
			Logger:        zap.NewNop().Sugar(),
			Stats:         tally.NewTestScope("testing", map[string]string{}),
		})
	})
}

func TestShow(t *testing.T) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	t.Run("valid payload renders and is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gatewayMock := editormock.NewMockGateway(ctrl)
		c := newTestController(t, gatewayMock)

		report := factory.DoctorReport(3)
		payload, err := json.Marshal(report)
		require.NoError(t, err)

		gatewayMock.EXPECT().ShowDoctor(gomock.Any(), &report).Return(nil)
		require.NoError(t, c.Show(ctx, payload))

		c.mu.Lock()
		defer c.mu.Unlock()
		assert.Equal(t, &report, c.views[id].lastReport)
	})

	t.Run("malformed payload does not open the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gatewayMock := editormock.NewMockGateway(ctrl)
		c := newTestController(t, gatewayMock)

		err := c.Show(ctx, []byte(`{"title": unquoted}`))
		require.Error(t, err)

		var malformed *errors.MalformedPayloadError
		assert.True(t, stderr.As(err, &malformed))

		c.mu.Lock()
		defer c.mu.Unlock()
		assert.Nil(t, c.views[id].lastReport)
	})

	t.Run("missing session uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := newTestController(t, editormock.NewMockGateway(ctrl))
		assert.Error(t, c.Show(context.Background(), []byte(`{}`)))
	})
}

func TestReload(t *testing.T) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
	report := factory.DoctorReport(1)

	t.Run("visible view re-renders the last report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gatewayMock := editormock.NewMockGateway(ctrl)
		c := newTestController(t, gatewayMock)
		c.views[id] = &viewState{lastReport: &report, visible: true}

		gatewayMock.EXPECT().ShowDoctor(gomock.Any(), &report).Return(nil)
		assert.NoError(t, c.Reload(ctx))
	})

	t.Run("hidden view is silently ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gatewayMock := editormock.NewMockGateway(ctrl)
		c := newTestController(t, gatewayMock)
		c.views[id] = &viewState{lastReport: &report, visible: false}

		assert.NoError(t, c.Reload(ctx))
	})

	t.Run("never-opened view is silently ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := newTestController(t, editormock.NewMockGateway(ctrl))
		c.views[id] = &viewState{visible: true}

		assert.NoError(t, c.Reload(ctx))
	})
}

func TestSetVisibility(t *testing.T) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	ctrl := gomock.NewController(t)
	c := newTestController(t, editormock.NewMockGateway(ctrl))

	require.NoError(t, c.SetVisibility(ctx, true))
	assert.True(t, c.views[id].visible)

	require.NoError(t, c.SetVisibility(ctx, false))
	assert.False(t, c.views[id].visible)
}

func TestEndSession(t *testing.T) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	ctrl := gomock.NewController(t)
	c := newTestController(t, editormock.NewMockGateway(ctrl))
	c.views[id] = &viewState{visible: true}

	require.NoError(t, c.EndSession(ctx, id))
	assert.NotContains(t, c.views, id)
}

func newTestController(t *testing.T, gateway *editormock.MockGateway) *controller {
	t.Helper()
	return New(Params{
		EditorGateway: gateway,
		Logger:        zap.NewNop().Sugar(),
		Stats:         tally.NewTestScope("testing", map[string]string{}),
	}).(*controller)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
