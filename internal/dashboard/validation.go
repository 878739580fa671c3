package dashboard

import (
	"net/url"
	"strings"
	"time"

	"github.com/bizdash/bizdash/internal/platform/validate"
)

const dateOnly = "2006-01-02"

// ParseLimitQuery reads ?limit= for the ranked listings.
func ParseLimitQuery(values url.Values) (LimitQuery, error) {
	q := LimitQuery{Limit: DefaultTopLimit}
	verr := &validate.Error{}
	validate.QueryInt(values, "limit", &q.Limit, verr)
	if err := validate.Struct(q); err != nil {
		verr.Fields = append(verr.Fields, validate.Fields(err)...)
	}
	if err := verr.OrNil(); err != nil {
		return LimitQuery{}, err
	}
	return q, nil
}

// ParseProductQuery reads the product listing parameters.
func ParseProductQuery(values url.Values) (ProductQuery, error) {
	q := ProductQuery{
		Category: strings.TrimSpace(values.Get("category")),
		Page:     DefaultProductPage,
		Limit:    DefaultProductLimit,
	}
	verr := &validate.Error{}
	validate.QueryInt(values, "page", &q.Page, verr)
	validate.QueryInt(values, "limit", &q.Limit, verr)
	if err := validate.Struct(q); err != nil {
		verr.Fields = append(verr.Fields, validate.Fields(err)...)
	}
	if err := verr.OrNil(); err != nil {
		return ProductQuery{}, err
	}
	return q, nil
}

// ParseSalesQuery reads ?from= and ?to=. Both accept RFC3339 timestamps or
// plain dates; a plain "to" date covers that whole day.
func ParseSalesQuery(values url.Values) (SalesQuery, error) {
	var q SalesQuery
	verr := &validate.Error{}

	if raw := strings.TrimSpace(values.Get("from")); raw != "" {
		t, _, err := parseTime(raw)
		if err != nil {
			verr.Add("from", "expected RFC3339 timestamp or YYYY-MM-DD date")
		} else {
			q.From = &t
		}
	}
	if raw := strings.TrimSpace(values.Get("to")); raw != "" {
		t, wholeDay, err := parseTime(raw)
		if err != nil {
			verr.Add("to", "expected RFC3339 timestamp or YYYY-MM-DD date")
		} else {
			if wholeDay {
				t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
			}
			q.To = &t
		}
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		verr.Add("to", "must not be before from")
	}
	if err := verr.OrNil(); err != nil {
		return SalesQuery{}, err
	}
	return q, nil
}

func parseTime(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(dateOnly, raw, time.UTC)
	return t, true, err
}
