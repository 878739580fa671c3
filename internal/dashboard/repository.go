package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizdash/bizdash/internal/customers"
)

// Repository provides read-only access to the sales model.
type Repository interface {
	Summary(ctx context.Context) (Summary, error)
	RecentSales(ctx context.Context, limit int) ([]Sale, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerSales, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	ListProducts(ctx context.Context, q ProductQuery) (ProductPage, error)
	SalesBetween(ctx context.Context, q SalesQuery, limit int) ([]Sale, error)
}

const saleSelect = `SELECT s.id, s.customer_id, COALESCE(c.company_name, ''), s.product_id, COALESCE(p.name, ''),
	s.amount::text, s.quantity, s.sale_date, s.status::text, s.created_at, s.updated_at
FROM sales s
LEFT JOIN customers c ON c.id = s.customer_id
LEFT JOIN products p ON p.id = s.product_id`

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.pool.QueryRow(ctx, `SELECT
	(SELECT COUNT(*) FROM customers),
	(SELECT COUNT(*) FROM products),
	COUNT(*),
	COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0)::text,
	COUNT(*) FILTER (WHERE status = 'pending'),
	COUNT(*) FILTER (WHERE status = 'completed'),
	COUNT(*) FILTER (WHERE status = 'cancelled')
FROM sales`).Scan(
		&s.Customers, &s.Products, &s.Sales, &s.Revenue,
		&s.ByStatus.Pending, &s.ByStatus.Completed, &s.ByStatus.Cancelled,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return s, nil
}

func (r *pgRepository) RecentSales(ctx context.Context, limit int) ([]Sale, error) {
	rows, err := r.pool.Query(ctx, saleSelect+` ORDER BY s.created_at DESC, s.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	return collectSales(rows)
}

func (r *pgRepository) SalesBetween(ctx context.Context, q SalesQuery, limit int) ([]Sale, error) {
	where := ""
	args := make([]interface{}, 0, 3)
	if q.From != nil {
		args = append(args, *q.From)
		where += " AND s.sale_date >= $" + strconv.Itoa(len(args))
	}
	if q.To != nil {
		args = append(args, *q.To)
		where += " AND s.sale_date <= $" + strconv.Itoa(len(args))
	}
	if where != "" {
		where = " WHERE" + where[len(" AND"):]
	}
	args = append(args, limit)
	query := saleSelect + where + ` ORDER BY s.sale_date DESC, s.id DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales between: %w", err)
	}
	return collectSales(rows)
}

func (r *pgRepository) TopCustomers(ctx context.Context, limit int) ([]CustomerSales, error) {
	rows, err := r.pool.Query(ctx, `SELECT c.id, c.company_name, c.contact_name, c.email, COUNT(s.id)
FROM customers c
LEFT JOIN sales s ON s.customer_id = c.id
GROUP BY c.id
ORDER BY COUNT(s.id) DESC, c.company_name ASC, c.id ASC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	out := make([]CustomerSales, 0, limit)
	for rows.Next() {
		var c CustomerSales
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.SalesCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *pgRepository) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	rows, err := r.pool.Query(ctx, `SELECT p.id, p.name, p.category, p.price::text, COUNT(s.id)
FROM products p
LEFT JOIN sales s ON s.product_id = p.id
GROUP BY p.id
ORDER BY COUNT(s.id) DESC, p.name ASC, p.id ASC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	out := make([]ProductSales, 0, limit)
	for rows.Next() {
		var p ProductSales
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.SalesCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pgRepository) ListProducts(ctx context.Context, q ProductQuery) (ProductPage, error) {
	where := ""
	var args []interface{}
	if q.Category != "" {
		where = " WHERE category = $1"
		args = append(args, q.Category)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return ProductPage{}, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT id, name, description, price::text, category, created_at, updated_at FROM products` + where +
		" ORDER BY name ASC, id ASC LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	data := make([]Product, 0, q.Limit)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return ProductPage{}, err
		}
		data = append(data, p)
	}
	if err := rows.Err(); err != nil {
		return ProductPage{}, err
	}
	return ProductPage{Data: data, Pagination: customers.NewPagination(q.Page, q.Limit, total)}, nil
}

func collectSales(rows pgx.Rows) ([]Sale, error) {
	defer rows.Close()
	out := make([]Sale, 0)
	for rows.Next() {
		var (
			s      Sale
			status string
		)
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.CustomerName, &s.ProductID, &s.ProductName,
			&s.Amount, &s.Quantity, &s.SaleDate, &status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.Status = SaleStatus(status)
		s.SaleDate = s.SaleDate.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
