package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrNotConfigured is returned when the service has no repository.
var ErrNotConfigured = errors.New("dashboard: repository not configured")

// Service serves dashboard read models, caching the aggregate ones.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
	group  singleflight.Group
	clock  func() time.Time
}

// NewService wires the repository and cache. cache may be nil.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

// Summary returns the headline figures, building them at most once per cache
// version no matter how many callers miss concurrently.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := s.cached(ctx, &out, func(ctx context.Context) (interface{}, error) {
		summary, err := s.repo.Summary(ctx)
		if err != nil {
			return nil, err
		}
		summary.GeneratedAt = s.clock()
		return summary, nil
	}, "dashboard", "summary")
	return out, err
}

// TopCustomers ranks customers by sales count.
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]CustomerSales, error) {
	var out []CustomerSales
	err := s.cached(ctx, &out, func(ctx context.Context) (interface{}, error) {
		return s.repo.TopCustomers(ctx, limit)
	}, "dashboard", "top_customers", strconv.Itoa(limit))
	return out, err
}

// TopProducts ranks products by sales count.
func (s *Service) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	var out []ProductSales
	err := s.cached(ctx, &out, func(ctx context.Context) (interface{}, error) {
		return s.repo.TopProducts(ctx, limit)
	}, "dashboard", "top_products", strconv.Itoa(limit))
	return out, err
}

// RecentSales lists the most recently recorded sales. Not cached.
func (s *Service) RecentSales(ctx context.Context, limit int) ([]Sale, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	return s.repo.RecentSales(ctx, limit)
}

// Sales lists sales inside the query window, newest first.
func (s *Service) Sales(ctx context.Context, q SalesQuery) ([]Sale, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}
	return s.repo.SalesBetween(ctx, q, MaxSalesRows)
}

// Products lists the catalogue.
func (s *Service) Products(ctx context.Context, q ProductQuery) (ProductPage, error) {
	if s.repo == nil {
		return ProductPage{}, ErrNotConfigured
	}
	return s.repo.ListProducts(ctx, q)
}

// Warm rebuilds the cached read models for the current version.
func (s *Service) Warm(ctx context.Context) error {
	if _, err := s.Summary(ctx); err != nil {
		return err
	}
	if _, err := s.TopCustomers(ctx, DefaultTopLimit); err != nil {
		return err
	}
	if _, err := s.TopProducts(ctx, DefaultTopLimit); err != nil {
		return err
	}
	return nil
}

func (s *Service) cached(ctx context.Context, dest interface{}, loader func(context.Context) (interface{}, error), parts ...string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}
	key, err := s.cache.BuildKey(ctx, parts...)
	if err != nil {
		s.logger.Warn("dashboard cache unavailable", slog.Any("error", err))
		return loadInto(ctx, dest, loader, nil)
	}
	res, err, _ := s.singleflight(ctx, key, func(ctx context.Context) (interface{}, error) {
		var raw json.RawMessage
		err := s.cache.FetchJSON(ctx, key, &raw, loader)
		var cacheErr *CacheError
		if errors.As(err, &cacheErr) {
			s.logger.Warn("dashboard cache unavailable", slog.String("key", key), slog.Any("error", err))
			err = nil
			if raw == nil {
				err = loadInto(ctx, &raw, loader, nil)
			}
		}
		if err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(res.(json.RawMessage), dest)
}

// singleflight collapses concurrent builds of the same key. The build keeps
// running when ctx is cancelled so other waiters still get a result.
func (s *Service) singleflight(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error, bool) {
	resultChan := s.group.DoChan(key, func() (interface{}, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
