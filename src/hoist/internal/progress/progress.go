package progress

import (
	"context"
	"io"
	"strings"

	"github.com/tacit-lsp/hoist/src/hoist/factory"
	"github.com/tacit-lsp/hoist/src/hoist/gateway/editor"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a new Reporter.
var Module = fx.Provide(New)

//go:generate mockgen -source=progress.go -destination=progressmock/progress_mock.go -package=progressmock

// Reporter drives work-done progress notifications in the editor. A token is
// created per launch attempt and threaded through the phases of that launch.
type Reporter interface {
	// Begin opens a progress notification and returns its token.
	Begin(ctx context.Context, title string) (*protocol.ProgressToken, error)
	// Report posts an updated message on an open notification.
	Report(ctx context.Context, token *protocol.ProgressToken, message string) error
	// End closes an open notification.
	End(ctx context.Context, token *protocol.ProgressToken) error
	// LineWriter adapts line-oriented subprocess output into Report calls.
	// Write never fails: a session that stops accepting progress must not
	// break the subprocess output pipe.
	LineWriter(ctx context.Context, token *protocol.ProgressToken) io.Writer
}

// Params are the parameters required to create a new Reporter.
type Params struct {
	fx.In

	EditorGateway editor.Gateway
	Logger        *zap.SugaredLogger
}

type reporterImpl struct {
	editorGateway editor.Gateway
	logger        *zap.SugaredLogger
}

// New creates a new Reporter.
func New(p Params) Reporter {
	return &reporterImpl{
		editorGateway: p.EditorGateway,
		logger:        p.Logger,
	}
}

func (r *reporterImpl) Begin(ctx context.Context, title string) (*protocol.ProgressToken, error) {
	token := protocol.NewProgressToken(factory.UUID().String())
	if err := r.editorGateway.WorkDoneProgressCreate(ctx, &protocol.WorkDoneProgressCreateParams{
		Token: *token,
	}); err != nil {
		return nil, err
	}

	if err := r.editorGateway.Progress(ctx, &protocol.ProgressParams{
		Token: *token,
		Value: &protocol.WorkDoneProgressBegin{
			Kind:  protocol.WorkDoneProgressKindBegin,
			Title: title,
		},
	}); err != nil {
		return nil, err
	}
	return token, nil
}

func (r *reporterImpl) Report(ctx context.Context, token *protocol.ProgressToken, message string) error {
	return r.editorGateway.Progress(ctx, &protocol.ProgressParams{
		Token: *token,
		Value: &protocol.WorkDoneProgressReport{
			Kind:    protocol.WorkDoneProgressKindReport,
			Message: message,
		},
	})
}

func (r *reporterImpl) End(ctx context.Context, token *protocol.ProgressToken) error {
	return r.editorGateway.Progress(ctx, &protocol.ProgressParams{
		Token: *token,
		Value: &protocol.WorkDoneProgressEnd{
			Kind: protocol.WorkDoneProgressKindEnd,
		},
	})
}

func (r *reporterImpl) LineWriter(ctx context.Context, token *protocol.ProgressToken) io.Writer {
	return &lineWriter{reporter: r, logger: r.logger, ctx: ctx, token: token}
}

// lineWriter forwards each non-empty line as a progress report.
type lineWriter struct {
	reporter Reporter
	logger   *zap.SugaredLogger
	ctx      context.Context
	token    *protocol.ProgressToken
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if err := w.reporter.Report(w.ctx, w.token, line); err != nil {
			w.logger.Warnf("reporting subprocess progress: %s", err)
		}
	}
	return len(p), nil
}
