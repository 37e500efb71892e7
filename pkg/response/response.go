package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends 200 with data as the whole body. The data and chat APIs use
// bare bodies so clients decode them directly.
func JSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an ErrorResp with the given status.
func Error(c *gin.Context, status int, body ErrorResp) {
	c.AbortWithStatusJSON(status, body)
}

// BadRequest sends 400 with kind BadRequest.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, ErrorResp{Error: KindBadRequest, Message: message})
}

// NotFound sends 404 with kind NotFound.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, ErrorResp{Error: KindNotFound, Message: message})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, ErrorResp{Error: KindTooManyRequests, Message: "Rate limit exceeded"})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, ErrorResp{Error: KindInternal, Message: DefaultErrorMessage})
}
