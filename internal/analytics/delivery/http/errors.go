package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"retail-insights/internal/analytics"
	"retail-insights/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
// Invalid identifiers behave like an unmatched route.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidCustomerID),
		errors.Is(err, analytics.ErrInvalidProductID):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
