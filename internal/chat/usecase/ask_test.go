package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/chat"
	"retail-insights/internal/model"
	"retail-insights/internal/router"
	"retail-insights/pkg/log"
)

type stubParser struct {
	intent model.Intent
	err    error
	calls  int
	query  string
}

func (p *stubParser) ParseIntent(_ context.Context, query string) (model.Intent, error) {
	p.calls++
	p.query = query
	return p.intent, p.err
}

type stubRouter struct {
	result router.RoutedResult
	err    error
	calls  int
}

func (r *stubRouter) Route(_ context.Context, intent model.Intent) (router.RoutedResult, error) {
	r.calls++
	if r.err != nil {
		return router.RoutedResult{}, r.err
	}
	out := r.result
	out.Intent = intent
	return out, nil
}

type stubRenderer struct {
	answer string
	err    error
	calls  int
	data   any
}

func (r *stubRenderer) Render(_ context.Context, _ string, data any) (string, error) {
	r.calls++
	r.data = data
	return r.answer, r.err
}

func customerIntent() model.Intent {
	id := int64(1)
	return model.Intent{Kind: model.IntentCustomer, CustomerID: &id}
}

func TestAsk_Success(t *testing.T) {
	parser := &stubParser{intent: customerIntent()}
	rt := &stubRouter{result: router.RoutedResult{Data: router.NoData{Status: router.StatusNoData}}}
	renderer := &stubRenderer{answer: "No data found."}

	out, err := New(parser, rt, renderer, log.NewNop()).Ask(context.Background(), chat.AskInput{Query: "  customer 1?  "})
	require.NoError(t, err)
	assert.Equal(t, "customer 1?", parser.query)
	assert.Equal(t, "No data found.", out.Answer)
	assert.Equal(t, model.IntentCustomer, out.Intent.Kind)
	assert.Equal(t, out.Routed, renderer.data)
	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, 1, rt.calls)
	assert.Equal(t, 1, renderer.calls)
}

func TestAsk_EmptyQuery(t *testing.T) {
	parser := &stubParser{}
	_, err := New(parser, &stubRouter{}, &stubRenderer{}, log.NewNop()).Ask(context.Background(), chat.AskInput{Query: " \n "})
	assert.ErrorIs(t, err, chat.ErrEmptyQuery)
	assert.Zero(t, parser.calls)
}

func TestAsk_StageFailures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("parse", func(t *testing.T) {
		rt := &stubRouter{}
		_, err := New(&stubParser{err: boom}, rt, &stubRenderer{}, log.NewNop()).Ask(context.Background(), chat.AskInput{Query: "q"})

		var stageErr *chat.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, chat.StageParse, stageErr.Stage)
		assert.Nil(t, stageErr.Intent)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, rt.calls)
	})

	t.Run("route", func(t *testing.T) {
		renderer := &stubRenderer{}
		_, err := New(&stubParser{intent: customerIntent()}, &stubRouter{err: boom}, renderer, log.NewNop()).
			Ask(context.Background(), chat.AskInput{Query: "q"})

		var stageErr *chat.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, chat.StageRoute, stageErr.Stage)
		require.NotNil(t, stageErr.Intent)
		assert.Nil(t, stageErr.Routed)
		assert.Zero(t, renderer.calls)
	})

	t.Run("render", func(t *testing.T) {
		rt := &stubRouter{result: router.RoutedResult{Data: router.NoData{Status: router.StatusNoData}}}
		_, err := New(&stubParser{intent: customerIntent()}, rt, &stubRenderer{err: boom}, log.NewNop()).
			Ask(context.Background(), chat.AskInput{Query: "q"})

		var stageErr *chat.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, chat.StageRender, stageErr.Stage)
		require.NotNil(t, stageErr.Intent)
		require.NotNil(t, stageErr.Routed)
		assert.Equal(t, router.StatusNoData, stageErr.Routed.Data.Outcome())
	})
}
