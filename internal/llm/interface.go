package llm

import (
	"context"

	"retail-insights/internal/model"
	"retail-insights/pkg/llmprovider"
	"retail-insights/pkg/log"
)

// IntentParser turns a question into a validated Intent.
type IntentParser interface {
	ParseIntent(ctx context.Context, query string) (model.Intent, error)
}

// Renderer writes the natural-language answer for a question and its data.
type Renderer interface {
	Render(ctx context.Context, query string, data any) (string, error)
}

type intentParser struct {
	gen llmprovider.Generator
	l   log.Logger
}

type renderer struct {
	gen llmprovider.Generator
	l   log.Logger
}

// NewIntentParser creates an IntentParser backed by gen.
func NewIntentParser(gen llmprovider.Generator, l log.Logger) IntentParser {
	return &intentParser{gen: gen, l: l}
}

// NewRenderer creates a Renderer backed by gen.
func NewRenderer(gen llmprovider.Generator, l log.Logger) Renderer {
	return &renderer{gen: gen, l: l}
}
