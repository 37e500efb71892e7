package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/analytics"
	"retail-insights/internal/analytics/analyticstest"
	repo "retail-insights/internal/analytics/repository"
	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/internal/model"
	"retail-insights/pkg/log"
)

func newFixtureUseCase(t *testing.T) *implUseCase {
	return New(sqlite.New(analyticstest.NewDB(t), log.NewNop()), log.NewNop())
}

func TestCustomerHistory(t *testing.T) {
	uc := newFixtureUseCase(t)

	out, err := uc.CustomerHistory(context.Background(), analytics.CustomerInput{CustomerID: 1})
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 2)
	require.NotNil(t, out.Summary)
	assert.Equal(t, int64(2), out.Summary.TransactionCount)
	assert.InDelta(t, 24.5, out.Summary.TotalSpend, 1e-9)

	out, err = uc.CustomerHistory(context.Background(), analytics.CustomerInput{CustomerID: 404})
	require.NoError(t, err)
	assert.Empty(t, out.Transactions)
	assert.Nil(t, out.Summary)

	_, err = uc.CustomerHistory(context.Background(), analytics.CustomerInput{CustomerID: -1})
	assert.ErrorIs(t, err, analytics.ErrInvalidCustomerID)
}

func TestProductDetail(t *testing.T) {
	uc := newFixtureUseCase(t)

	out, err := uc.ProductDetail(context.Background(), analytics.ProductInput{ProductID: "  A "})
	require.NoError(t, err)
	assert.Equal(t, "A", out.ProductID)
	require.NotNil(t, out.Summary)
	assert.Equal(t, []string{"Store 1"}, out.Summary.Stores)
	assert.Equal(t, int64(5), out.Summary.TotalQuantity)

	out, err = uc.ProductDetail(context.Background(), analytics.ProductInput{ProductID: "ZZZ"})
	require.NoError(t, err)
	assert.Nil(t, out.Summary)

	_, err = uc.ProductDetail(context.Background(), analytics.ProductInput{ProductID: "   "})
	assert.ErrorIs(t, err, analytics.ErrInvalidProductID)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		requested  int
		wantLimit  int
		wantCapped bool
	}{
		{requested: 5, wantLimit: 5},
		{requested: 0, wantLimit: 1},
		{requested: -4, wantLimit: 1},
		{requested: 15, wantLimit: 15},
		{requested: 16, wantLimit: 15, wantCapped: true},
		{requested: 100, wantLimit: 15, wantCapped: true},
	}
	for _, tt := range tests {
		w := clampLimit(tt.requested)
		assert.Equal(t, tt.wantLimit, w.Limit, "requested %d", tt.requested)
		assert.Equal(t, tt.wantCapped, w.Capped, "requested %d", tt.requested)
		assert.Equal(t, tt.requested, w.Requested)
	}
}

func TestTopCustomers_Capped(t *testing.T) {
	uc := newFixtureUseCase(t)

	out, err := uc.TopCustomers(context.Background(), analytics.TopInput{RequestedLimit: 40})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Limit)
	assert.True(t, out.Capped)
	assert.Len(t, out.Metrics, 2)
}

// failingRepo fails every call.
type failingRepo struct{ err error }

func (f failingRepo) ListTransactions(context.Context, repo.ListTransactionsOptions) ([]model.Transaction, error) {
	return nil, f.err
}
func (f failingRepo) GetCustomerSummary(context.Context, repo.ListTransactionsOptions) (analytics.CustomerSummary, error) {
	return analytics.CustomerSummary{}, f.err
}
func (f failingRepo) GetProductSummary(context.Context, repo.ListTransactionsOptions) (analytics.ProductSummary, error) {
	return analytics.ProductSummary{}, f.err
}
func (f failingRepo) ListStores(context.Context, repo.ListTransactionsOptions) ([]string, error) {
	return nil, f.err
}
func (f failingRepo) GetOverallSummary(context.Context, repo.RangeOptions) (analytics.OverallSummary, error) {
	return analytics.OverallSummary{}, f.err
}
func (f failingRepo) ListGroupMetrics(context.Context, repo.GroupOptions) ([]analytics.GroupMetric, error) {
	return nil, f.err
}
func (f failingRepo) ListTopCustomers(context.Context, repo.TopOptions) ([]analytics.RankedCustomer, error) {
	return nil, f.err
}
func (f failingRepo) ListTopProducts(context.Context, repo.TopOptions) ([]analytics.RankedProduct, error) {
	return nil, f.err
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	uc := New(failingRepo{err: repo.ErrFailedToAggregate}, log.NewNop())
	ctx := context.Background()

	_, err := uc.Summary(ctx, analytics.RangeInput{})
	assert.True(t, errors.Is(err, repo.ErrFailedToAggregate))

	_, err = uc.ByPayment(ctx, analytics.RangeInput{})
	assert.True(t, errors.Is(err, repo.ErrFailedToAggregate))

	_, err = uc.TopProducts(ctx, analytics.TopInput{RequestedLimit: 5})
	assert.True(t, errors.Is(err, repo.ErrFailedToAggregate))
}
