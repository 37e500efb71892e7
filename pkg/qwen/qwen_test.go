package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Validate())

	cfg = Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.HTTPClient.Timeout)
}

func TestTransformRequest(t *testing.T) {
	q := newQwenImpl(Config{APIKey: "k", Model: "qwen-max", BaseURL: "http://x", HTTPClient: http.DefaultClient})

	out := q.transformRequest(&Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "rules"}, {Text: "more"}}},
		Messages:          []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		JSONOutput:        true,
	})

	assert.Equal(t, "qwen-max", out.Model)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, "system", out.Messages[0].Role)
	assert.Equal(t, "rules\nmore", out.Messages[0].Content)
	assert.Equal(t, "user", out.Messages[1].Role)
	require.NotNil(t, out.ResponseFormat)
}

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Customer 1 spent 24.50."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 6, "total_tokens": 26}
		}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "how much did customer 1 spend?"}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Customer 1 spent 24.50.", resp.Content.Text())
	assert.Equal(t, 26, resp.Usage.TotalTokens)
	assert.Equal(t, "qwen-plus", got["model"])
	assert.NotContains(t, got, "response_format")
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "rate_limit"}}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), &Request{Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
