package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"retail-insights/internal/analytics"
	"retail-insights/pkg/datemath"
)

// processRange reads the optional from/to query parameters. A parameter that
// is present but empty is echoed back but does not filter.
func (h *handler) processRange(c *gin.Context) datemath.Range {
	var r datemath.Range
	if from, ok := c.GetQuery("from"); ok {
		r.From = &from
	}
	if to, ok := c.GetQuery("to"); ok {
		r.To = &to
	}
	return r
}

// processCustomerReq parses the customer path parameter; only non-negative integers match.
func (h *handler) processCustomerReq(c *gin.Context) (analytics.CustomerInput, error) {
	raw := c.Param("customer_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 || strings.HasPrefix(raw, "+") {
		return analytics.CustomerInput{}, analytics.ErrInvalidCustomerID
	}
	return analytics.CustomerInput{CustomerID: id, Range: h.processRange(c)}, nil
}

func (h *handler) processProductReq(c *gin.Context) analytics.ProductInput {
	return analytics.ProductInput{ProductID: c.Param("product_id"), Range: h.processRange(c)}
}

// processTopReq reads limit; missing or non-integer values fall back to the default.
func (h *handler) processTopReq(c *gin.Context) analytics.TopInput {
	limit := analytics.DefaultTopLimit
	if raw, ok := c.GetQuery("limit"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			limit = n
		}
	}
	return analytics.TopInput{RequestedLimit: limit, Range: h.processRange(c)}
}
