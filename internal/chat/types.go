package chat

import (
	"retail-insights/internal/model"
	"retail-insights/internal/router"
)

// --- UseCase Inputs ---

type AskInput struct {
	Query string
}

// --- UseCase Outputs ---

type AskOutput struct {
	Intent model.Intent
	Routed router.RoutedResult
	Answer string
}
