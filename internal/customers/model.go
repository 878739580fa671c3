package customers

import (
	"math"
	"time"
)

// Customer is a stored customer record.
type Customer struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCustomer carries normalized values for an insert.
type NewCustomer struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       *string
}

// CustomerPatch lists the columns to change. A nil field is left untouched.
type CustomerPatch struct {
	CompanyName *string
	ContactName *string
	Email       *string
	Phone       *string
}

// Pagination is the metadata returned alongside a page of results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination derives the page count from total and limit.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// PageOffset is the number of rows skipped before page. It saturates at
// math.MaxInt instead of overflowing for very large pages.
func PageOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Page is one page of customers plus its pagination metadata.
type Page struct {
	Data       []Customer `json:"data"`
	Pagination Pagination `json:"pagination"`
}
