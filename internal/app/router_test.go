package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizdash/internal/customers"
	"github.com/bizdash/bizdash/internal/observability"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func newTestRouter(t *testing.T, params RouterParams) http.Handler {
	t.Helper()
	if params.Config == nil {
		params.Config = &Config{AppEnv: "test", RateLimitPerMinute: 1000}
	}
	if params.CustomersHandler == nil {
		params.CustomersHandler = customers.NewHandler(nil, customers.NewService(customers.NewMemoryRepository(), nil, nil))
	}
	return NewRouter(params)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	rr := do(newTestRouter(t, RouterParams{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = do(newTestRouter(t, RouterParams{Database: fakePinger{}}), http.MethodGet, "/healthz", "")
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rr.Body.String())

	rr = do(newTestRouter(t, RouterParams{Database: fakePinger{err: errors.New("refused")}}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"unreachable"}`, rr.Body.String())
}

func TestCustomerRoutesMountedUnderAPI(t *testing.T) {
	router := newTestRouter(t, RouterParams{})

	rr := do(router, http.MethodPost, "/api/customers", `{"companyName":"Acme","contactName":"John","email":"JOHN@ACME.COM"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"email":"john@acme.com"`)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))

	rr = do(router, http.MethodGet, "/api/customers?page=1&limit=20", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pagination":{"page":1,"limit":20,"total":1,"pages":1}`)
}

func TestUnknownRoutesAnswerJSON(t *testing.T) {
	router := newTestRouter(t, RouterParams{})

	rr := do(router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = do(router, http.MethodPatch, "/api/customers/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	metrics := observability.NewMetrics()
	router := newTestRouter(t, RouterParams{Metrics: metrics})

	do(router, http.MethodGet, "/api/customers", "")
	rr := do(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `bizdash_http_requests_total{code="200",route="/api/customers"} 1`)
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, RouterParams{Config: &Config{RateLimitPerMinute: 2}})

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "").Code)
	rr := do(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, rr.Body.String())
}
