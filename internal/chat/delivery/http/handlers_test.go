package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/chat"
	"retail-insights/internal/model"
	"retail-insights/internal/router"
	"retail-insights/pkg/log"
)

type stubUseCase struct {
	out   chat.AskOutput
	err   error
	input chat.AskInput
	calls int
}

func (s *stubUseCase) Ask(_ context.Context, input chat.AskInput) (chat.AskOutput, error) {
	s.calls++
	s.input = input
	return s.out, s.err
}

func serve(t *testing.T, uc chat.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	RegisterRoutes(engine, New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleIntent() model.Intent {
	id := int64(7)
	return model.Intent{Kind: model.IntentCustomer, CustomerID: &id}
}

func TestChat_Success(t *testing.T) {
	intent := sampleIntent()
	uc := &stubUseCase{out: chat.AskOutput{
		Intent: intent,
		Routed: router.RoutedResult{Intent: intent, Data: router.NoData{Status: router.StatusNoData, Reason: router.ReasonNoCustomerTransactions}},
		Answer: "No transactions found for customer 7.",
	}}

	w := serve(t, uc, `{"query": "  what did customer 7 buy?  "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "what did customer 7 buy?", uc.input.Query)

	body := decode(t, w)
	assert.Equal(t, "No transactions found for customer 7.", body["answer"])

	gotIntent := body["intent"].(map[string]any)
	assert.Equal(t, "customer", gotIntent["intent"])
	assert.Contains(t, gotIntent, "product_id")
	assert.Nil(t, gotIntent["product_id"])

	data := body["data"].(map[string]any)
	assert.Contains(t, data, "intent")
	assert.Equal(t, "no_data", data["data"].(map[string]any)["status"])
}

func TestChat_BadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"missing query": `{}`,
		"blank query":   `{"query": "   "}`,
		"number query":  `{"query": 42}`,
		"not json":      `query=hello`,
		"empty body":    ``,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := serve(t, uc, body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"BadRequest","message":"Field 'query' (non-empty string) is required."}`, w.Body.String())
			assert.Zero(t, uc.calls)
		})
	}
}

func TestChat_StageErrors(t *testing.T) {
	intent := sampleIntent()
	routed := router.RoutedResult{Intent: intent, Data: router.NoData{Status: router.StatusNoData}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantIntent bool
		wantData   bool
	}{
		{
			name:       "intent parsing",
			err:        &chat.StageError{Stage: chat.StageParse, Err: errors.New("LLM output was not valid JSON")},
			wantStatus: http.StatusBadRequest,
			wantKind:   "IntentParsingFailed",
		},
		{
			name:       "routing",
			err:        &chat.StageError{Stage: chat.StageRoute, Err: errors.New("data service unavailable"), Intent: &intent},
			wantStatus: http.StatusBadRequest,
			wantKind:   "RoutingFailed",
			wantIntent: true,
		},
		{
			name:       "response generation",
			err:        &chat.StageError{Stage: chat.StageRender, Err: errors.New("model unavailable"), Intent: &intent, Routed: &routed},
			wantStatus: http.StatusBadGateway,
			wantKind:   "ResponseGenerationFailed",
			wantIntent: true,
			wantData:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, &stubUseCase{err: tt.err}, `{"query":"q"}`)
			require.Equal(t, tt.wantStatus, w.Code)

			body := decode(t, w)
			assert.Equal(t, tt.wantKind, body["error"])
			assert.Equal(t, tt.err.(*chat.StageError).Err.Error(), body["message"])

			_, hasIntent := body["intent"]
			assert.Equal(t, tt.wantIntent, hasIntent)
			_, hasData := body["data"]
			assert.Equal(t, tt.wantData, hasData)
		})
	}
}

func TestChat_UnexpectedError(t *testing.T) {
	w := serve(t, &stubUseCase{err: errors.New("boom")}, `{"query":"q"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
