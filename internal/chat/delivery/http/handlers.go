package http

import (
	"github.com/gin-gonic/gin"

	"retail-insights/pkg/response"
)

// Chat godoc
// @Summary     Ask a question about the retail data
// @Description Parses the question into an intent, fetches the matching data and answers in natural language.
// @Description On failure the body names the failed stage and carries the intent and data produced so far.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body     chatReq true "Question, e.g. {\"query\": \"How much did customer 109318 spend in 2023?\"}"
// @Success     200     {object} chatResp
// @Failure     400     {object} response.ErrorResp "BadRequest, IntentParsingFailed or RoutingFailed"
// @Failure     429     {object} response.ErrorResp "TooManyRequests"
// @Failure     502     {object} response.ErrorResp "ResponseGenerationFailed"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newChatResp(output))
}
