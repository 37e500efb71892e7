package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"retail-insights/pkg/llmprovider"
)

// Render asks the model to answer query from data only. The answer is trimmed.
func (r *renderer) Render(ctx context.Context, query string, data any) (string, error) {
	dataJSON, err := marshalIndent(data)
	if err != nil {
		return "", fmt.Errorf("%s: marshal data: %w", LogPrefixRender, err)
	}

	req := llmprovider.NewTextRequest(responseSystemPrompt, BuildRenderInput(query, dataJSON))

	resp, err := r.gen.GenerateContent(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "%s: generate: %v", LogPrefixRender, err)
		return "", err
	}

	answer := strings.TrimSpace(resp.Content.Text())
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

// BuildRenderInput formats the user turn sent to the response model.
func BuildRenderInput(query, dataJSON string) string {
	return fmt.Sprintf(renderTemplate, query, dataJSON)
}

// marshalIndent is json.MarshalIndent without HTML escaping.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
