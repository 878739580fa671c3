package customers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ChangeNotifier is told about every successful customer mutation.
type ChangeNotifier interface {
	CustomersChanged(ctx context.Context) error
}

// Service enforces the customer business rules on top of a Repository.
type Service struct {
	repo     Repository
	notifier ChangeNotifier
	logger   *slog.Logger
}

// NewService wires a Service. notifier may be nil.
func NewService(repo Repository, notifier ChangeNotifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

func (s *Service) ListCustomers(ctx context.Context, q ListCustomersQuery) (Page, error) {
	page, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return Page{}, fmt.Errorf("list customers: %w", err)
	}
	return page, nil
}

// GetCustomer returns (nil, nil) when no customer has the given id.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	nc := NewCustomer{
		CompanyName: strings.TrimSpace(req.CompanyName),
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       normalizeEmail(req.Email),
		Phone:       normalizePhone(req.Phone),
	}

	existing, err := s.repo.FindByEmail(ctx, nc.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	created, err := s.repo.Create(ctx, nc)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.changed(ctx, "create", created.ID)
	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, req UpdateCustomerRequest) (*Customer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if existing == nil {
		return nil, ErrCustomerNotFound
	}

	var patch CustomerPatch
	if req.CompanyName != nil {
		v := strings.TrimSpace(*req.CompanyName)
		patch.CompanyName = &v
	}
	if req.ContactName != nil {
		v := strings.TrimSpace(*req.ContactName)
		patch.ContactName = &v
	}
	if req.Email != nil {
		v := normalizeEmail(*req.Email)
		owner, err := s.repo.FindByEmail(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if owner != nil && owner.ID != id {
			return nil, ErrEmailExists
		}
		patch.Email = &v
	}
	// A blank phone normalizes to absent and leaves the stored one alone.
	patch.Phone = normalizePhone(req.Phone)

	updated, err := s.repo.Update(ctx, id, patch)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return nil, ErrCustomerNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return nil, ErrEmailExists
	case err != nil:
		return nil, fmt.Errorf("update customer: %w", err)
	}
	s.changed(ctx, "update", id)
	return updated, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if existing == nil {
		return ErrCustomerNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	s.changed(ctx, "delete", id)
	return nil
}

func (s *Service) changed(ctx context.Context, action string, id int64) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.CustomersChanged(ctx); err != nil {
		s.logger.Warn("customer change notification failed",
			slog.String("action", action),
			slog.Int64("customer_id", id),
			slog.Any("error", err),
		)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	v := strings.TrimSpace(*phone)
	if v == "" {
		return nil
	}
	return &v
}
