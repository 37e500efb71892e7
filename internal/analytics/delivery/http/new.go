package http

import (
	"github.com/gin-gonic/gin"

	"retail-insights/internal/analytics"
	"retail-insights/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	Customer(c *gin.Context)
	Product(c *gin.Context)
	Summary(c *gin.Context)
	ByCategory(c *gin.Context)
	ByPayment(c *gin.Context)
	TopCustomers(c *gin.Context)
	TopProducts(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
