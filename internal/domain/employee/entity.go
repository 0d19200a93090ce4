package employee

import (
	"strings"
	"time"
)

// Role names are static reference data in the roles table.
const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

type Role struct {
	ID       int
	RoleName string
}

// IsPrivileged reports whether a role name grants HR-level access.
// Comparison is case-insensitive because role rows are operator-seeded.
func IsPrivileged(roleName string) bool {
	name := strings.ToUpper(roleName)
	return name == RoleAdmin || name == RoleHR
}

// Employee is a user account keyed by the generated employee ID. Rows are
// never hard-deleted; deactivation flips IsActive.
type Employee struct {
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	RoleID         int
	DepartmentID   int
	JoiningYear    int
	JoiningSerial  int
	IsTempPassword bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	RoleName *string
}
