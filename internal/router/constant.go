package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Payload limits sent downstream.
const (
	// TrimLimit caps transaction and store lists.
	TrimLimit = 15
	// TopNMax caps top_customers and top_products.
	TopNMax = 15
	// TopNDefault is used when the intent has no top_n.
	TopNDefault = 5
)

// Status values carried by non-data payloads.
type Status string

const (
	StatusAmbiguousIntent   Status = "ambiguous_intent"
	StatusNoData            Status = "no_data"
	StatusUnsupportedMetric Status = "unsupported_metric"

	// StatusOK marks a data payload. It is never serialized.
	StatusOK Status = "ok"
)

// Reason values explain a Status.
type Reason string

const (
	ReasonCustomerIDMissing         Reason = "customer_id_missing"
	ReasonProductIDMissing          Reason = "product_id_missing"
	ReasonBusinessMetricUnspecified Reason = "business_metric_unspecified"
	ReasonNoCustomerTransactions    Reason = "no_customer_transactions"
	ReasonNoProductTransactions     Reason = "no_product_transactions"
	ReasonMetricNotSupported        Reason = "metric_not_supported"
	ReasonMetricNotRecognized       Reason = "metric_not_recognized"
)

// Operation is a canonical business-metric query.
type Operation string

const (
	OpSummary      Operation = "summary"
	OpTopCustomers Operation = "top_customers"
	OpTopProducts  Operation = "top_products"
	OpByCategory   Operation = "metrics_by_category"
	OpByPayment    Operation = "metrics_by_payment"
)

// SupportedMetrics is reported back when a metric is missing or unknown.
var SupportedMetrics = []string{
	string(OpSummary),
	string(OpTopCustomers),
	string(OpTopProducts),
	string(OpByCategory),
	string(OpByPayment),
}

// metricSynonyms maps a normalized metric name to its operation.
var metricSynonyms = map[string]Operation{
	"summary":         OpSummary,
	"overview":        OpSummary,
	"kpis":            OpSummary,
	"revenue_summary": OpSummary,
	"total_revenue":   OpSummary,
	"revenue":         OpSummary,

	"metrics_by_category":  OpByCategory,
	"revenue_by_category":  OpByCategory,
	"category_revenue":     OpByCategory,
	"revenue_per_category": OpByCategory,

	"metrics_by_payment":  OpByPayment,
	"revenue_by_payment":  OpByPayment,
	"payment_revenue":     OpByPayment,
	"revenue_per_payment": OpByPayment,
	"by_payment":          OpByPayment,

	"top_customers": OpTopCustomers,
	"top_products":  OpTopProducts,
}

// unsupportedMetricMarkers flag breakdowns the data does not offer.
var unsupportedMetricMarkers = []string{"store", "location"}
