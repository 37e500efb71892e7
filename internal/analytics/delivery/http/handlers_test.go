package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/analytics/analyticstest"
	analyticshttp "retail-insights/internal/analytics/delivery/http"
	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/internal/analytics/usecase"
	"retail-insights/internal/model"
	"retail-insights/internal/router"
	"retail-insights/pkg/log"
	"retail-insights/pkg/retailapi"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(sqlite.New(analyticstest.NewDB(t), l), l)

	engine := gin.New()
	analyticshttp.RegisterRoutes(engine.Group("/api"), analyticshttp.New(l, uc))
	return engine
}

func doGet(t *testing.T, engine *gin.Engine, target string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestCustomerEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	var res retailapi.CustomerResult
	require.Equal(t, http.StatusOK, doGet(t, engine, "/api/customers/1", &res))
	assert.Equal(t, int64(1), res.CustomerID)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "2024-01-15 12:00", res.Transactions[0].TransactionDate)
	require.NotNil(t, res.Summary)
	assert.InDelta(t, 24.5, res.Summary.TotalSpend, 1e-9)
	assert.Nil(t, res.Filters.From)
	assert.Nil(t, res.Filters.To)

	res = retailapi.CustomerResult{}
	require.Equal(t, http.StatusOK, doGet(t, engine, "/api/customers/1?from=2024-02-01", &res))
	require.Len(t, res.Transactions, 1)
	require.NotNil(t, res.Filters.From)
	assert.Equal(t, "2024-02-01", *res.Filters.From)

	res = retailapi.CustomerResult{}
	require.Equal(t, http.StatusOK, doGet(t, engine, "/api/customers/999", &res))
	assert.Empty(t, res.Transactions)
	assert.Nil(t, res.Summary)

	assert.Equal(t, http.StatusNotFound, doGet(t, engine, "/api/customers/abc", nil))
	assert.Equal(t, http.StatusNotFound, doGet(t, engine, "/api/customers/-3", nil))
}

func TestProductEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	var res retailapi.ProductResult
	require.Equal(t, http.StatusOK, doGet(t, engine, "/api/products/A", &res))
	require.NotNil(t, res.Summary)
	assert.Equal(t, int64(2), res.Summary.TransactionCount)
	assert.Equal(t, int64(5), res.Summary.TotalQuantity)
	assert.InDelta(t, 50.0, res.Summary.TotalRevenue, 1e-9)
	assert.Equal(t, []string{"Store 1"}, res.Summary.Stores)
	assert.Equal(t, 1, res.Summary.StoreCount)
}

func TestMetricEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("summary", func(t *testing.T) {
		var res retailapi.SummaryResult
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/summary", &res))
		require.NotNil(t, res.Summary)
		assert.Equal(t, int64(3), res.Summary.TransactionCount)
		require.NotNil(t, res.Summary.TotalRevenue)
		assert.InDelta(t, 54.5, *res.Summary.TotalRevenue, 1e-9)
	})

	t.Run("summary over empty range", func(t *testing.T) {
		var res retailapi.SummaryResult
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/summary?from=2030-01-01", &res))
		require.NotNil(t, res.Summary)
		assert.Equal(t, int64(0), res.Summary.TransactionCount)
		assert.Nil(t, res.Summary.TotalRevenue)
	})

	t.Run("by category", func(t *testing.T) {
		var res retailapi.CategoryBreakdown
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/by_category", &res))
		require.Len(t, res.Metrics, 2)
		assert.Equal(t, "Books", res.Metrics[0].ProductCategory)
	})

	t.Run("by payment", func(t *testing.T) {
		var res retailapi.PaymentBreakdown
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/by_payment", &res))
		assert.Len(t, res.Metrics, 3)
	})

	t.Run("top customers capped", func(t *testing.T) {
		var res retailapi.TopCustomers
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/top_customers?limit=40", &res))
		assert.Equal(t, 15, res.Limit)
		require.NotNil(t, res.LimitRequested)
		assert.Equal(t, 40, *res.LimitRequested)
		require.Len(t, res.Metrics, 2)
		assert.Equal(t, int64(2), res.Metrics[0].CustomerID)
	})

	t.Run("top products default limit", func(t *testing.T) {
		var res retailapi.TopProducts
		require.Equal(t, http.StatusOK, doGet(t, engine, "/api/metrics/top_products?limit=abc", &res))
		assert.Equal(t, 5, res.Limit)
		assert.Nil(t, res.LimitRequested)
		require.Len(t, res.Metrics, 2)
		assert.Equal(t, "A", res.Metrics[0].ProductID)
	})
}

// The router talks to the real aggregation endpoints through the HTTP client.
func TestRouterAgainstServer(t *testing.T) {
	srv := httptest.NewServer(newTestEngine(t))
	defer srv.Close()

	client := retailapi.NewClient(srv.URL+"/", 5*time.Second)
	rt := router.New(client, log.NewNop())

	id := int64(1)
	res, err := rt.Route(context.Background(), model.Intent{Kind: model.IntentCustomer, CustomerID: &id})
	require.NoError(t, err)

	data, ok := res.Data.(router.CustomerData)
	require.True(t, ok, "unexpected payload %T", res.Data)
	require.Len(t, data.Transactions, 2)
	assert.Less(t, data.Transactions[0].TransactionDate, data.Transactions[1].TransactionDate)
	require.NotNil(t, data.Summary)
	assert.Equal(t, int64(2), data.Summary.TransactionCount)
	assert.InDelta(t, 24.5, data.Summary.TotalSpend, 1e-9)
	assert.Equal(t, 2, data.TransactionCount)

	missing := int64(404)
	res, err = rt.Route(context.Background(), model.Intent{Kind: model.IntentCustomer, CustomerID: &missing})
	require.NoError(t, err)
	assert.Equal(t, router.StatusNoData, res.Data.Outcome())
}
