package company

import "errors"

var (
	// ErrCompanyCodeNotFound means the company table has no row; employee IDs
	// cannot be generated until one is seeded.
	ErrCompanyCodeNotFound = errors.New("company code not found")
)
