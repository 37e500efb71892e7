package http

import (
	"strings"

	"retail-insights/internal/chat"
	"retail-insights/internal/model"
	"retail-insights/internal/router"
)

// --- Request DTOs ---

// chatReq keeps Query untyped so a non-string query is a validation error, not a bind error.
type chatReq struct {
	Query any `json:"query"`
}

func (r chatReq) validate() error {
	q, ok := r.Query.(string)
	if !ok || strings.TrimSpace(q) == "" {
		return errInvalidQuery
	}
	return nil
}

func (r chatReq) toInput() chat.AskInput {
	q, _ := r.Query.(string)
	return chat.AskInput{Query: strings.TrimSpace(q)}
}

// --- Response DTOs ---

type chatResp struct {
	Intent model.Intent        `json:"intent"`
	Data   router.RoutedResult `json:"data"`
	Answer string              `json:"answer"`
}

func (h *handler) newChatResp(o chat.AskOutput) chatResp {
	return chatResp{
		Intent: o.Intent,
		Data:   o.Routed,
		Answer: o.Answer,
	}
}
