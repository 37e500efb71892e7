package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyAnswer is returned when the model produced no answer text.
var ErrEmptyAnswer = errors.New("LLM returned empty response for answer generation")

// IntentParsingError means the model output could not be turned into an Intent.
// Raw holds the model output, when there was any.
type IntentParsingError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *IntentParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *IntentParsingError) Unwrap() error { return e.Err }
