package customers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the storage contract for customers. Implementations signal
// absence on reads with (nil, nil) and return ErrRecordNotFound when a
// mutation matches no row.
type Repository interface {
	FindAll(ctx context.Context, q ListCustomersQuery) (Page, error)
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	Create(ctx context.Context, c NewCustomer) (*Customer, error)
	Update(ctx context.Context, id int64, patch CustomerPatch) (*Customer, error)
	Delete(ctx context.Context, id int64) error
}

const (
	customerColumns = `id, company_name, contact_name, email, phone, created_at, updated_at`

	uniqueViolation    = "23505"
	emailConstraintKey = "customers_email_key"
)

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type pgRepository struct {
	db  dbtx
	now func() time.Time
}

// NewRepository returns the PostgreSQL-backed Repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return newPgRepository(pool)
}

func newPgRepository(db dbtx) *pgRepository {
	return &pgRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *pgRepository) FindAll(ctx context.Context, q ListCustomersQuery) (Page, error) {
	where, args := searchClause(q.Search)

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers"+where, args...).Scan(&total); err != nil {
		return Page{}, fmt.Errorf("count customers: %w", err)
	}

	query := "SELECT " + customerColumns + " FROM customers" + where +
		" ORDER BY " + orderBy(q.Sort, q.Order) +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return Page{}, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	data := make([]Customer, 0, q.Limit)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return Page{}, err
		}
		data = append(data, *c)
	}
	if err := rows.Err(); err != nil {
		return Page{}, err
	}

	return Page{Data: data, Pagination: NewPagination(q.Page, q.Limit, total)}, nil
}

func (r *pgRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	return optional(scanCustomer(row))
}

func (r *pgRepository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = $1 LIMIT 1", email)
	return optional(scanCustomer(row))
}

func (r *pgRepository) Create(ctx context.Context, c NewCustomer) (*Customer, error) {
	now := r.now()
	row := r.db.QueryRow(ctx, `
		INSERT INTO customers (company_name, contact_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+customerColumns,
		c.CompanyName, c.ContactName, c.Email, c.Phone, now,
	)
	created, err := scanCustomer(row)
	if err != nil {
		return nil, storageError(err)
	}
	return created, nil
}

func (r *pgRepository) Update(ctx context.Context, id int64, patch CustomerPatch) (*Customer, error) {
	query, args := buildUpdate(id, patch, r.now())
	updated, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, storageError(err)
	}
	return updated, nil
}

func (r *pgRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func buildUpdate(id int64, patch CustomerPatch, now time.Time) (string, []interface{}) {
	query := "UPDATE customers SET updated_at = $1"
	args := []interface{}{now}

	set := func(column string, value interface{}) {
		args = append(args, value)
		query += ", " + column + " = $" + strconv.Itoa(len(args))
	}
	if patch.CompanyName != nil {
		set("company_name", *patch.CompanyName)
	}
	if patch.ContactName != nil {
		set("contact_name", *patch.ContactName)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}

	args = append(args, id)
	query += " WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + customerColumns
	return query, args
}

func searchClause(search string) (string, []interface{}) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	pattern := "%" + escapeLike(search) + "%"
	return ` WHERE (company_name ILIKE $1 ESCAPE '\' OR contact_name ILIKE $1 ESCAPE '\')`, []interface{}{pattern}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func orderBy(sort, order string) string {
	dir := "ASC"
	if order == OrderDesc {
		dir = "DESC"
	}
	column := "company_name"
	switch sort {
	case SortContactName:
		column = "contact_name"
	case SortCreatedAt:
		column = "created_at"
	}
	return column + " " + dir + ", id ASC"
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func optional(c *Customer, err error) (*Customer, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func storageError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation &&
		(pgErr.ConstraintName == "" || pgErr.ConstraintName == emailConstraintKey) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, pgErr.Detail)
	}
	return err
}
