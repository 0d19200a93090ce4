package employee

import "context"

// EmployeeService defines business logic for onboarding and account
// administration.
type EmployeeService interface {
	// CreateEmployee allocates an employee ID and temporary credentials.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	// DeactivateEmployee soft-deactivates an account.
	DeactivateEmployee(ctx context.Context, req DeactivateEmployeeRequest) error

	// ListEmployees retrieves all employees for the HR roster view.
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)
}
