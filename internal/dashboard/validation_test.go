package dashboard

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdash/bizdash/internal/platform/validate"
)

func TestParseLimitQuery(t *testing.T) {
	q, err := ParseLimitQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTopLimit, q.Limit)

	q, err = ParseLimitQuery(url.Values{"limit": {"50"}})
	require.NoError(t, err)
	assert.Equal(t, 50, q.Limit)

	for _, raw := range []string{"0", "51", "ten"} {
		_, err := ParseLimitQuery(url.Values{"limit": {raw}})
		require.ErrorIs(t, err, validate.ErrValidation, raw)
		assert.Equal(t, "limit", validate.Fields(err)[0].Path)
	}
}

func TestParseProductQuery(t *testing.T) {
	q, err := ParseProductQuery(url.Values{"category": {" Electronics "}, "page": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, ProductQuery{Category: "Electronics", Page: 2, Limit: DefaultProductLimit}, q)
	assert.Equal(t, 20, q.Offset())

	q, err = ParseProductQuery(url.Values{"page": {"9223372036854775807"}, "limit": {"100"}})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, q.Offset())

	_, err = ParseProductQuery(url.Values{"page": {"0"}, "limit": {"101"}})
	require.Error(t, err)
	assert.Len(t, validate.Fields(err), 2)
}

func TestParseSalesQuery(t *testing.T) {
	q, err := ParseSalesQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, q.From)
	assert.Nil(t, q.To)

	q, err = ParseSalesQuery(url.Values{"from": {"2025-03-01"}, "to": {"2025-03-31"}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *q.From)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 999999000, time.UTC), *q.To)

	q, err = ParseSalesQuery(url.Values{"to": {"2025-03-31T12:00:00Z"}})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), q.To.UTC())

	_, err = ParseSalesQuery(url.Values{"from": {"yesterday"}})
	require.Error(t, err)
	assert.Equal(t, "from", validate.Fields(err)[0].Path)

	_, err = ParseSalesQuery(url.Values{"from": {"2025-04-01"}, "to": {"2025-03-01"}})
	require.Error(t, err)
	assert.Equal(t, []validate.FieldError{{Path: "to", Message: "must not be before from"}}, validate.Fields(err))
}
