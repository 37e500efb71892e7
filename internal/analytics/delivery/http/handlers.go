package http

import (
	"github.com/gin-gonic/gin"

	"retail-insights/internal/analytics"
	"retail-insights/pkg/response"
)

// Customer godoc
// @Summary     Customer transactions
// @Description Returns a customer's transactions (oldest first) and spend summary. Summary is null when nothing matches.
// @Tags        Analytics
// @Produce     json
// @Param       customer_id path  int    true  "Customer ID"
// @Param       from        query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to          query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.CustomerResult
// @Failure     404 {object} response.ErrorResp "Invalid customer ID"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/customers/{customer_id} [GET]
func (h *handler) Customer(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCustomerReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.CustomerHistory(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CustomerHistory: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newCustomerResp(output))
}

// Product godoc
// @Summary     Product transactions
// @Description Returns a product's transactions, revenue, average discount and stores.
// @Tags        Analytics
// @Produce     json
// @Param       product_id path  string true  "Product ID"
// @Param       from       query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to         query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.ProductResult
// @Failure     404 {object} response.ErrorResp "Invalid product ID"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/products/{product_id} [GET]
func (h *handler) Product(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ProductDetail(ctx, h.processProductReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ProductDetail: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newProductResp(output))
}

// Summary godoc
// @Summary     Store-wide KPIs
// @Description Transaction count, revenue, unique customers and products, first and last transaction.
// @Tags        Metrics
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to   query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.SummaryResult
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/metrics/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx, analytics.RangeInput{Range: h.processRange(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newSummaryResp(output))
}

// ByCategory godoc
// @Summary     Revenue by product category
// @Tags        Metrics
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to   query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.CategoryBreakdown
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/metrics/by_category [GET]
func (h *handler) ByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ByCategory(ctx, analytics.RangeInput{Range: h.processRange(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.ByCategory: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newCategoryResp(output))
}

// ByPayment godoc
// @Summary     Revenue by payment method
// @Tags        Metrics
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to   query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.PaymentBreakdown
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/metrics/by_payment [GET]
func (h *handler) ByPayment(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ByPayment(ctx, analytics.RangeInput{Range: h.processRange(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.ByPayment: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newPaymentResp(output))
}

// TopCustomers godoc
// @Summary     Top customers by revenue
// @Tags        Metrics
// @Produce     json
// @Param       limit query int    false "Number of customers (default 5, max 15)"
// @Param       from  query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to    query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.TopCustomers
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/metrics/top_customers [GET]
func (h *handler) TopCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TopCustomers(ctx, h.processTopReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.TopCustomers: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newTopCustomersResp(output))
}

// TopProducts godoc
// @Summary     Top products by revenue
// @Tags        Metrics
// @Produce     json
// @Param       limit query int    false "Number of products (default 5, max 15)"
// @Param       from  query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to    query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {object} retailapi.TopProducts
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/metrics/top_products [GET]
func (h *handler) TopProducts(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TopProducts(ctx, h.processTopReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.TopProducts: %v", err)
		h.writeError(c, err)
		return
	}

	response.JSON(c, h.newTopProductsResp(output))
}
