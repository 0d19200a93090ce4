package salary

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SetSalaryRequest uses pointers for the components so an omitted field is
// distinguishable from an explicit zero.
type SetSalaryRequest struct {
	EmployeeID string           `json:"employee_id"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	HRA        *decimal.Decimal `json:"hra"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
}

func (r *SetSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary is required",
		})
	}
	if r.HRA == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hra",
			Message: "hra is required",
		})
	}
	if r.Allowances == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances is required",
		})
	}
	if r.Deductions == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalaryResponse struct {
	EmployeeID  string          `json:"employee_id"`
	FirstName   *string         `json:"first_name,omitempty"`
	LastName    *string         `json:"last_name,omitempty"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	HRA         decimal.Decimal `json:"hra"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	TotalSalary decimal.Decimal `json:"total_salary"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListSalariesResponse struct {
	Salaries []SalaryResponse `json:"salaries"`
}
