package retailapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"retail-insights/pkg/datemath"
)

// Client is the HTTP client for the retail aggregation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetCustomer fetches a customer's transactions and spend summary.
func (c *Client) GetCustomer(ctx context.Context, customerID int64, r datemath.Range) (*CustomerResult, error) {
	var out CustomerResult
	path := pathCustomers + strconv.FormatInt(customerID, 10)
	if err := c.get(ctx, "get customer", path, rangeParams(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct fetches a product's transactions and aggregate summary.
func (c *Client) GetProduct(ctx context.Context, productID string, r datemath.Range) (*ProductResult, error) {
	var out ProductResult
	path := pathProducts + url.PathEscape(productID)
	if err := c.get(ctx, "get product", path, rangeParams(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummary fetches store-wide KPIs.
func (c *Client) GetSummary(ctx context.Context, r datemath.Range) (*SummaryResult, error) {
	var out SummaryResult
	if err := c.get(ctx, "get summary", pathMetricsSummary, rangeParams(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByCategory fetches revenue grouped by product category.
func (c *Client) GetByCategory(ctx context.Context, r datemath.Range) (*CategoryBreakdown, error) {
	var out CategoryBreakdown
	if err := c.get(ctx, "get by category", pathMetricsCategory, rangeParams(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByPayment fetches revenue grouped by payment method.
func (c *Client) GetByPayment(ctx context.Context, r datemath.Range) (*PaymentBreakdown, error) {
	var out PaymentBreakdown
	if err := c.get(ctx, "get by payment", pathMetricsPayment, rangeParams(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTopCustomers fetches the highest-revenue customers.
func (c *Client) GetTopCustomers(ctx context.Context, limit int, r datemath.Range) (*TopCustomers, error) {
	params := rangeParams(r)
	params.Set("limit", strconv.Itoa(limit))

	var out TopCustomers
	if err := c.get(ctx, "get top customers", pathTopCustomers, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTopProducts fetches the highest-revenue products.
func (c *Client) GetTopProducts(ctx context.Context, limit int, r datemath.Range) (*TopProducts, error) {
	params := rangeParams(r)
	params.Set("limit", strconv.Itoa(limit))

	var out TopProducts
	if err := c.get(ctx, "get top products", pathTopProducts, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the aggregation API is up.
func (c *Client) Ping(ctx context.Context) error {
	var out json.RawMessage
	return c.get(ctx, "ping", pathHealth, nil, &out)
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &DataServiceError{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &DataServiceError{Op: op, Err: fmt.Errorf("failed to call API: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &DataServiceError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DataServiceError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &DataServiceError{Op: op, Err: fmt.Errorf("API response was not valid JSON: %w", err)}
		}
		return &DataServiceError{Op: op, Err: fmt.Errorf("unexpected response shape: %w", err)}
	}
	return nil
}

// rangeParams sends only the bounds that are set and non-empty.
func rangeParams(r datemath.Range) url.Values {
	params := url.Values{}
	if r.From != nil && *r.From != "" {
		params.Set("from", *r.From)
	}
	if r.To != nil && *r.To != "" {
		params.Set("to", *r.To)
	}
	return params
}
