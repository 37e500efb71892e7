package usecase

import (
	"context"
	"strings"

	"retail-insights/internal/chat"
	"retail-insights/internal/metrics"
)

// Ask runs one question through intent parsing, routing and rendering.
// Each stage runs at most once; a failure stops the pipeline with a *chat.StageError.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return chat.AskOutput{}, chat.ErrEmptyQuery
	}

	intent, err := uc.parser.ParseIntent(ctx, query)
	if err != nil {
		return chat.AskOutput{}, uc.fail(ctx, &chat.StageError{Stage: chat.StageParse, Err: err})
	}

	routed, err := uc.router.Route(ctx, intent)
	if err != nil {
		return chat.AskOutput{}, uc.fail(ctx, &chat.StageError{Stage: chat.StageRoute, Err: err, Intent: &intent})
	}

	answer, err := uc.renderer.Render(ctx, query, routed)
	if err != nil {
		return chat.AskOutput{}, uc.fail(ctx, &chat.StageError{Stage: chat.StageRender, Err: err, Intent: &intent, Routed: &routed})
	}

	return chat.AskOutput{
		Intent: intent,
		Routed: routed,
		Answer: answer,
	}, nil
}

func (uc *implUseCase) fail(ctx context.Context, err *chat.StageError) error {
	metrics.ChatFailures.WithLabelValues(string(err.Stage)).Inc()
	uc.l.Warnf(ctx, "chat.usecase.Ask: %v", err)
	return err
}
