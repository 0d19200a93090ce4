package employee

import "context"

// EmployeeRepository defines data access methods for employee accounts.
type EmployeeRepository interface {
	// Create inserts a new employee row.
	Create(ctx context.Context, emp Employee) error

	// GetByEmployeeID retrieves an employee by the generated business key.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// GetByEmail retrieves an employee by email for login.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// MaxJoiningSerial returns the highest joining_serial already allocated for
	// a joining year, or 0 when none exist. Must be called inside the
	// onboarding transaction so the read-then-insert is serialized.
	MaxJoiningSerial(ctx context.Context, joiningYear int) (int, error)

	// UpdatePassword stores a new password hash and clears is_temp_password.
	UpdatePassword(ctx context.Context, employeeID string, passwordHash string) error

	// Deactivate soft-deactivates an employee. Rows are never deleted.
	Deactivate(ctx context.Context, employeeID string) error

	// List retrieves all employees joined to role names, ordered by name.
	List(ctx context.Context) ([]Employee, error)
}

// RoleRepository resolves role reference data.
type RoleRepository interface {
	GetByID(ctx context.Context, id int) (Role, error)
}

// RoleResolver resolves the current role name for an employee with a fresh
// lookup. The authorization guard uses it on every privileged request instead
// of trusting the role claim baked into the token, so a role downgrade takes
// effect immediately.
type RoleResolver interface {
	ResolveRole(ctx context.Context, employeeID string) (string, error)
}
