package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLLMCall(t *testing.T) {
	before := testutil.ToFloat64(LLMCalls.WithLabelValues("metrics-test", "error"))

	ObserveLLMCall("metrics-test", errors.New("boom"))
	ObserveLLMCall("metrics-test", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(LLMCalls.WithLabelValues("metrics-test", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(LLMCalls.WithLabelValues("metrics-test", "success")))
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RouterOutcomes.WithLabelValues("customer", "ok").Inc()

	engine := gin.New()
	engine.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "retail_router_outcomes_total"))
}
