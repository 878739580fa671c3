package customers

import "errors"

// Domain errors returned by Service.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailExists      = errors.New("email already exists")
)

// Storage-level signals returned by Repository implementations. Service
// translates them; they never reach the HTTP layer.
var (
	ErrRecordNotFound = errors.New("customers: record not found")
	ErrDuplicateEmail = errors.New("customers: duplicate email")
)
