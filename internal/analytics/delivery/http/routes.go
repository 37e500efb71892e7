package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the read-only aggregation endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/customers/:customer_id", h.Customer)
	rg.GET("/products/:product_id", h.Product)

	metrics := rg.Group("/metrics")
	{
		metrics.GET("/summary", h.Summary)
		metrics.GET("/by_category", h.ByCategory)
		metrics.GET("/by_payment", h.ByPayment)
		metrics.GET("/top_customers", h.TopCustomers)
		metrics.GET("/top_products", h.TopProducts)
	}
}
