package customers

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestOrderByWhitelist(t *testing.T) {
	cases := []struct {
		sort, order, want string
	}{
		{SortCompanyName, OrderAsc, "company_name ASC, id ASC"},
		{SortContactName, OrderDesc, "contact_name DESC, id ASC"},
		{SortCreatedAt, OrderAsc, "created_at ASC, id ASC"},
		{"id; DROP TABLE customers", "sideways", "company_name ASC, id ASC"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, orderBy(tc.sort, tc.order))
	}
}

func TestSearchClauseEscapesWildcards(t *testing.T) {
	where, args := searchClause("  ")
	assert.Empty(t, where)
	assert.Nil(t, args)

	where, args = searchClause(`50%_off\`)
	assert.Contains(t, where, "company_name ILIKE $1")
	assert.Contains(t, where, "contact_name ILIKE $1")
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}

func TestBuildUpdateOnlySuppliedColumns(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	name := "Jane Smith"

	query, args := buildUpdate(7, CustomerPatch{ContactName: &name}, now)
	assert.Equal(t, "UPDATE customers SET updated_at = $1, contact_name = $2 WHERE id = $3 RETURNING "+customerColumns, query)
	assert.Equal(t, []interface{}{now, name, int64(7)}, args)

	query, args = buildUpdate(7, CustomerPatch{}, now)
	assert.Equal(t, "UPDATE customers SET updated_at = $1 WHERE id = $2 RETURNING "+customerColumns, query)
	assert.Len(t, args, 2)
}

func TestBuildUpdatePhone(t *testing.T) {
	email, phone := "a@example.com", "555-0100"
	query, args := buildUpdate(3, CustomerPatch{Email: &email, Phone: &phone}, time.Now())
	assert.Contains(t, query, "email = $2, phone = $3 WHERE id = $4")
	assert.Len(t, args, 4)

	query, _ = buildUpdate(3, CustomerPatch{Email: &email}, time.Now())
	assert.NotContains(t, query, "phone")
}

func TestStorageErrorTranslatesUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key", Detail: "Key (email)=(a@b.co) already exists."}
	assert.ErrorIs(t, storageError(dup), ErrDuplicateEmail)

	other := &pgconn.PgError{Code: "23503", ConstraintName: "sales_customer_id_fkey"}
	assert.NotErrorIs(t, storageError(other), ErrDuplicateEmail)

	plain := errors.New("boom")
	assert.Equal(t, plain, storageError(plain))
}

func TestListCustomersQueryOffset(t *testing.T) {
	assert.Equal(t, 0, ListCustomersQuery{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, ListCustomersQuery{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, math.MaxInt, ListCustomersQuery{Page: math.MaxInt, Limit: 100}.Offset())
	assert.Equal(t, math.MaxInt-1, PageOffset(math.MaxInt, 1))
	assert.Equal(t, 0, PageOffset(-4, 20))
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 20, Total: 0, Pages: 0}, NewPagination(1, 20, 0))
	assert.Equal(t, 2, NewPagination(1, 20, 21).Pages)
	assert.Equal(t, 1, NewPagination(1, 20, 20).Pages)
	assert.Equal(t, 3, NewPagination(1, 1, 3).Pages)
}
