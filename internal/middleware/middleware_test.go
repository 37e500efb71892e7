package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"retail-insights/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	return engine
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop())
	engine := newEngine(mw.RequestID())

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, seen)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", seen)
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := log.NewWithZap(zap.New(core))
	mw := New(l)

	engine := newEngine(mw.RequestID(), mw.AccessLog())
	engine.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessageSnippet("GET /fail 502").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop())
	engine := newEngine()
	engine.POST("/chat", mw.RateLimit(10), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		engine.ServeHTTP(w, req)
		return w.Code
	}

	// burst of 1 at 10/min
	assert.Equal(t, http.StatusOK, send("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("1.1.1.1"))
	assert.Equal(t, http.StatusOK, send("2.2.2.2"))
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop())
	engine := newEngine()
	engine.POST("/chat", mw.RateLimit(0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:5555"
	assert.Equal(t, "192.168.1.9", extractIP(req))

	req.Header.Set("X-Real-IP", "8.8.8.8")
	assert.Equal(t, "8.8.8.8", extractIP(req))

	req.Header.Set("X-Forwarded-For", " 9.9.9.9 , 8.8.8.8")
	assert.Equal(t, "9.9.9.9", extractIP(req))
}
