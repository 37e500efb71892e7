package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	clientCfg := &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents, config := transformRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	return transformResponse(resp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// transformRequest converts request to SDK contents and generation config
func transformRequest(req *Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, &genai.Content{Role: transformRole(msg.Role), Parts: transformParts(msg.Parts)})
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		config.SystemInstruction = &genai.Content{Parts: transformParts(req.SystemInstruction.Parts)}
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONOutput {
		config.ResponseMIMEType = mimeTypeJSON
	}

	return contents, config
}

// transformRole maps provider-neutral roles onto Gemini's user/model pair.
func transformRole(role string) string {
	switch role {
	case "assistant", roleModel:
		return roleModel
	default:
		return roleUser
	}
}

func transformParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		out = append(out, &genai.Part{Text: p.Text})
	}
	return out
}

// transformResponse converts the SDK response to the standard format
func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if resp == nil {
		return out
	}

	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}

	content := resp.Candidates[0].Content
	out.Content.Role = content.Role
	for _, p := range content.Parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	return out
}
