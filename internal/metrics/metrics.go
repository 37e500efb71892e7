package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RouterOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_router_outcomes_total",
			Help: "Routed intents by intent kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ChatFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_chat_failures_total",
			Help: "Chat requests that failed, by pipeline stage",
		},
		[]string{"stage"},
	)

	LLMCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retail_llm_calls_total",
			Help: "Language model calls by provider and result",
		},
		[]string{"provider", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "retail_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Handler exposes the default registry for scraping.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveLLMCall counts one provider attempt. It matches llmprovider.CallObserver.
func ObserveLLMCall(provider string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	LLMCalls.WithLabelValues(provider, result).Inc()
}
