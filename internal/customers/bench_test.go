package customers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func seededRouter(b *testing.B, n int) http.Handler {
	b.Helper()
	repo := NewMemoryRepository()
	svc := NewService(repo, nil, nil)
	for i := 0; i < n; i++ {
		if _, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
			CompanyName: fmt.Sprintf("Company %04d", i),
			ContactName: fmt.Sprintf("Contact %04d", i),
			Email:       fmt.Sprintf("c%04d@example.com", i),
		}); err != nil {
			b.Fatalf("seed: %v", err)
		}
	}
	return newTestRouter(b, repo)
}

func BenchmarkListCustomers(b *testing.B) {
	router := seededRouter(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/customers?search=company%2001&sort=createdAt&order=desc&page=2&limit=50", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rr.Code)
		}
	}
}

func BenchmarkCreateCustomer(b *testing.B) {
	router := seededRouter(b, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body := fmt.Sprintf(`{"companyName":"Bench %d","contactName":"Bench","email":"bench%d@example.com"}`, i, i)
		req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d: %s", rr.Code, rr.Body.String())
		}
	}
}
