package chat

import (
	"errors"
	"fmt"

	"retail-insights/internal/model"
	"retail-insights/internal/router"
)

var ErrEmptyQuery = errors.New("query is required")

// Stage names the pipeline step a request failed in.
type Stage string

const (
	StageParse  Stage = "intent_parsing"
	StageRoute  Stage = "routing"
	StageRender Stage = "response_generation"
)

// StageError carries whatever the pipeline produced before it failed, so the
// caller can still return the intent and data.
type StageError struct {
	Stage  Stage
	Err    error
	Intent *model.Intent
	Routed *router.RoutedResult
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
