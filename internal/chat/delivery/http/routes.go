package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoint. mw runs before the handler, e.g. rate limiting.
func RegisterRoutes(r gin.IRouter, h Handler, mw ...gin.HandlerFunc) {
	r.POST("/chat", append(mw, h.Chat)...)
}
