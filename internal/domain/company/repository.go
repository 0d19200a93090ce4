package company

import "context"

type CompanyRepository interface {
	// Get retrieves the company row. Returns ErrCompanyCodeNotFound when none
	// has been seeded.
	Get(ctx context.Context) (Company, error)
}
