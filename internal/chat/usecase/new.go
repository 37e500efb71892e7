package usecase

import (
	"retail-insights/internal/chat"
	"retail-insights/internal/llm"
	"retail-insights/internal/router"
	"retail-insights/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	parser   llm.IntentParser
	router   router.Router
	renderer llm.Renderer
	l        log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(parser llm.IntentParser, rt router.Router, renderer llm.Renderer, l log.Logger) *implUseCase {
	return &implUseCase{
		parser:   parser,
		router:   rt,
		renderer: renderer,
		l:        l,
	}
}
