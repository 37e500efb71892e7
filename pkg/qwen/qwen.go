package qwen

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

func newQwenImpl(cfg Config) *qwenImpl {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = cfg.HTTPClient

	return &qwenImpl{
		model:  cfg.Model,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// GenerateContent sends a chat completion request to Qwen.
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := q.client.CreateChatCompletion(ctx, q.transformRequest(req))
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("qwen: API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}

	return transformResponse(resp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

func (q *qwenImpl) transformRequest(req *Request) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model:       q.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		out.Messages = append(out.Messages, openai.ChatCompletionMessage{
			Role:    roleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}

	if req.JSONOutput {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return out
}

func transformResponse(resp openai.ChatCompletionResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	msg := resp.Choices[0].Message
	out.Content.Role = msg.Role
	if msg.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: msg.Content})
	}
	return out
}
