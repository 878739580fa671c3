package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEnqueuer struct {
	reason string
	err    error
}

func (s *stubEnqueuer) EnqueueWarmup(ctx context.Context, reason string) (string, error) {
	s.reason = reason
	return "task-123", s.err
}

func newTestRouter(repo Repository, enqueuer Enqueuer) http.Handler {
	h := NewHandler(nil, NewService(repo, nil, nil), enqueuer)
	r := chi.NewRouter()
	r.Route("/api", h.MountRoutes)
	return r
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestSummaryEndpoint(t *testing.T) {
	router := newTestRouter(&mockRepo{summary: sampleSummary()}, nil)

	rr := serve(router, http.MethodGet, "/api/dashboard/summary")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(250), body.Data.Sales)
	assert.Equal(t, StatusCounts{Pending: 80, Completed: 90, Cancelled: 80}, body.Data.ByStatus)
}

func TestRecentSalesEndpoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockRepo{sales: []Sale{
		{ID: 3, CustomerName: "Acme", ProductName: "Laptop Pro", Amount: "1299.99", Quantity: 1, SaleDate: now, Status: StatusCompleted},
		{ID: 2, CustomerName: "Globex", ProductName: "Mouse", Amount: "29.99", Quantity: 2, SaleDate: now, Status: StatusPending},
	}}
	router := newTestRouter(repo, nil)

	rr := serve(router, http.MethodGet, "/api/dashboard/recent-sales?limit=1")
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data []Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Acme", body.Data[0].CustomerName)

	rr = serve(router, http.MethodGet, "/api/dashboard/recent-sales?limit=500")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProductsEndpoint(t *testing.T) {
	repo := &mockRepo{}
	router := newTestRouter(repo, nil)

	rr := serve(router, http.MethodGet, "/api/products?category=Books&limit=5")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ProductQuery{Category: "Books", Page: 1, Limit: 5}, repo.productsQ)

	repo.productErr = errors.New("boom")
	rr = serve(router, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSalesEndpointRejectsBadWindow(t *testing.T) {
	router := newTestRouter(&mockRepo{}, nil)
	rr := serve(router, http.MethodGet, "/api/sales?from=2025-05-01&to=2025-04-01")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "must not be before from")
}

func TestWarmupEndpoint(t *testing.T) {
	rr := serve(newTestRouter(&mockRepo{}, nil), http.MethodPost, "/api/dashboard/warmup")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	enq := &stubEnqueuer{}
	rr = serve(newTestRouter(&mockRepo{}, enq), http.MethodPost, "/api/dashboard/warmup")
	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"message":"Dashboard warmup queued","taskId":"task-123"}`, rr.Body.String())
	assert.Equal(t, "manual", enq.reason)

	enq.err = errors.New("redis unavailable")
	rr = serve(newTestRouter(&mockRepo{}, enq), http.MethodPost, "/api/dashboard/warmup")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
