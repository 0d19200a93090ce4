package employee

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	RoleID       int    `json:"role_id"`
	DepartmentID int    `json:"department_id"`
	JoiningYear  int    `json:"joining_year"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.RoleID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if r.JoiningYear == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_year",
			Message: "joining_year is required",
		})
	} else if !validator.IsValidJoiningYear(r.JoiningYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_year",
			Message: "joining_year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateEmployeeResponse carries the generated credentials. The temporary
// password appears here once and is never retrievable again.
type CreateEmployeeResponse struct {
	EmployeeID        string `json:"employee_id"`
	TemporaryPassword string `json:"temporary_password"`
}

type DeactivateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *DeactivateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	EmployeeID   string `json:"employee_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	RoleName     string `json:"role"`
	DepartmentID int    `json:"department_id"`
	JoiningYear  int    `json:"joining_year"`
	IsActive     bool   `json:"is_active"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
