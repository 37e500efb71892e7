package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail-insights/internal/chat"
	"retail-insights/pkg/response"
)

const invalidQueryMessage = "Field 'query' (non-empty string) is required."

var errInvalidQuery = errors.New("invalid query")

// writeError translates use-case errors into the chat error bodies.
func (h *handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, chat.ErrEmptyQuery) || errors.Is(err, errInvalidQuery) {
		response.BadRequest(c, invalidQueryMessage)
		return
	}

	var stageErr *chat.StageError
	if !errors.As(err, &stageErr) {
		response.InternalError(c, err)
		return
	}

	body := response.ErrorResp{Message: stageErr.Err.Error()}
	if stageErr.Intent != nil {
		body.Intent = stageErr.Intent
	}
	if stageErr.Routed != nil {
		body.Data = stageErr.Routed
	}

	switch stageErr.Stage {
	case chat.StageParse:
		body.Error = response.KindIntentParsingFailed
		response.Error(c, http.StatusBadRequest, body)
	case chat.StageRoute:
		body.Error = response.KindRoutingFailed
		response.Error(c, http.StatusBadRequest, body)
	case chat.StageRender:
		body.Error = response.KindResponseGenerationFailed
		response.Error(c, http.StatusBadGateway, body)
	default:
		response.InternalError(c, err)
	}
}
