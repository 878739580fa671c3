package dashboard

import (
	"time"

	"github.com/bizdash/bizdash/internal/customers"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50

	DefaultProductPage  = 1
	DefaultProductLimit = 20
	MaxProductLimit     = 100

	// MaxSalesRows caps the date-window listing.
	MaxSalesRows = 500
)

// LimitQuery is shared by the ranked dashboard listings.
type LimitQuery struct {
	Limit int `query:"limit" validate:"gte=1,lte=50"`
}

// ProductQuery filters and paginates the product catalogue.
type ProductQuery struct {
	Category string `query:"category" validate:"max=100"`
	Page     int    `query:"page" validate:"gte=1"`
	Limit    int    `query:"limit" validate:"gte=1,lte=100"`
}

// Offset returns the number of rows to skip for the requested page.
func (q ProductQuery) Offset() int {
	return customers.PageOffset(q.Page, q.Limit)
}

// SalesQuery bounds the sale listing by sale date; nil bounds are open.
type SalesQuery struct {
	From *time.Time
	To   *time.Time
}
