package salary

import "context"

// SalaryRepository defines data access for salary rows.
type SalaryRepository interface {
	// Upsert inserts or replaces the row for an employee. Reports whether a
	// new row was created so the handler can answer 201 vs 200.
	Upsert(ctx context.Context, sal Salary) (created bool, err error)

	// GetByEmployeeID retrieves one row. Returns ErrSalaryNotFound when absent.
	GetByEmployeeID(ctx context.Context, employeeID string) (Salary, error)

	// ListAll retrieves all rows joined to names, ordered by name.
	ListAll(ctx context.Context) ([]Salary, error)
}

// SalaryService defines compensation business logic.
type SalaryService interface {
	// SetSalary recomputes the total and upserts. Reports whether the row was
	// newly created.
	SetSalary(ctx context.Context, req SetSalaryRequest) (created bool, err error)

	GetMySalary(ctx context.Context) (SalaryResponse, error)
	ListSalaries(ctx context.Context) (ListSalariesResponse, error)
}
