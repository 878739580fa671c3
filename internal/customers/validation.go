package customers

import (
	"net/url"

	"github.com/bizdash/bizdash/internal/platform/validate"
)

// ValidateCreate checks the create contract.
func ValidateCreate(req CreateCustomerRequest) error {
	return validate.Struct(req)
}

// ValidateUpdate checks the partial update contract; an empty request is valid.
func ValidateUpdate(req UpdateCustomerRequest) error {
	return validate.Struct(req)
}

// ParseListQuery coerces query parameters, applies defaults and validates the
// result. Absent or empty parameters take their default value; search is
// passed through as given and trimmed by the repositories.
func ParseListQuery(values url.Values) (ListCustomersQuery, error) {
	q := ListCustomersQuery{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		Search: values.Get("search"),
		Sort:   SortCompanyName,
		Order:  OrderAsc,
	}
	verr := &validate.Error{}

	validate.QueryInt(values, "page", &q.Page, verr)
	validate.QueryInt(values, "limit", &q.Limit, verr)
	if raw := values.Get("sort"); raw != "" {
		q.Sort = raw
	}
	if raw := values.Get("order"); raw != "" {
		q.Order = raw
	}

	if err := validate.Struct(q); err != nil {
		verr.Fields = append(verr.Fields, validate.Fields(err)...)
	}
	if err := verr.OrNil(); err != nil {
		return ListCustomersQuery{}, err
	}
	return q, nil
}
