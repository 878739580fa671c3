package customers

// Sort columns accepted by ListCustomersQuery.
const (
	SortCompanyName = "companyName"
	SortContactName = "contactName"
	SortCreatedAt   = "createdAt"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type CreateCustomerRequest struct {
	CompanyName string  `json:"companyName" validate:"required,notblank,max=255"`
	ContactName string  `json:"contactName" validate:"required,notblank,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// UpdateCustomerRequest is a partial update; omitted fields stay unchanged.
type UpdateCustomerRequest struct {
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,notblank,max=255"`
	ContactName *string `json:"contactName,omitempty" validate:"omitempty,notblank,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// Empty reports whether no field was supplied.
func (r UpdateCustomerRequest) Empty() bool {
	return r.CompanyName == nil && r.ContactName == nil && r.Email == nil && r.Phone == nil
}

type ListCustomersQuery struct {
	Page   int    `query:"page" validate:"gte=1"`
	Limit  int    `query:"limit" validate:"gte=1,lte=100"`
	Search string `query:"search"`
	Sort   string `query:"sort" validate:"oneof=companyName contactName createdAt"`
	Order  string `query:"order" validate:"oneof=asc desc"`
}

// Offset is the number of rows skipped before the requested page.
func (q ListCustomersQuery) Offset() int {
	return PageOffset(q.Page, q.Limit)
}
