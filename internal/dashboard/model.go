package dashboard

import (
	"time"

	"github.com/bizdash/bizdash/internal/customers"
)

// SaleStatus mirrors the sale_status enum.
type SaleStatus string

const (
	StatusPending   SaleStatus = "pending"
	StatusCompleted SaleStatus = "completed"
	StatusCancelled SaleStatus = "cancelled"
)

// Product is a catalogue entry. Price is kept as its decimal text.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPage is one page of products.
type ProductPage struct {
	Data       []Product            `json:"data"`
	Pagination customers.Pagination `json:"pagination"`
}

// Sale is a single recorded sale joined with its customer and product names.
type Sale struct {
	ID           int64      `json:"id"`
	CustomerID   int64      `json:"customerId"`
	CustomerName string     `json:"customerName"`
	ProductID    int64      `json:"productId"`
	ProductName  string     `json:"productName"`
	Amount       string     `json:"amount"`
	Quantity     int        `json:"quantity"`
	SaleDate     time.Time  `json:"saleDate"`
	Status       SaleStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// StatusCounts breaks sales down by status.
type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// Summary holds the headline dashboard figures. Revenue only counts
// completed sales.
type Summary struct {
	Customers   int64        `json:"customers"`
	Products    int64        `json:"products"`
	Sales       int64        `json:"sales"`
	Revenue     string       `json:"revenue"`
	ByStatus    StatusCounts `json:"byStatus"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// CustomerSales ranks a customer by number of sales.
type CustomerSales struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	SalesCount  int64  `json:"salesCount"`
}

// ProductSales ranks a product by number of sales.
type ProductSales struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	SalesCount int64  `json:"salesCount"`
}
