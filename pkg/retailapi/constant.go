package retailapi

import "time"

const (
	DefaultTimeout = 10 * time.Second

	// errorBodyLimit caps how much of a failed response is kept in the error.
	errorBodyLimit = 2048

	pathCustomers       = "/api/customers/"
	pathProducts        = "/api/products/"
	pathMetricsSummary  = "/api/metrics/summary"
	pathMetricsCategory = "/api/metrics/by_category"
	pathMetricsPayment  = "/api/metrics/by_payment"
	pathTopCustomers    = "/api/metrics/top_customers"
	pathTopProducts     = "/api/metrics/top_products"
	pathHealth          = "/health"
)
