package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary holds the compensation components for one employee. At most one row
// per employee; writes upsert by employee_id.
type Salary struct {
	EmployeeID  string
	BaseSalary  decimal.Decimal
	HRA         decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	TotalSalary decimal.Decimal
	UpdatedAt   time.Time

	// Join
	FirstName *string
	LastName  *string
}

// ComputeTotal returns base + hra + allowances - deductions. Negative totals
// are allowed (deductions may exceed gross).
func ComputeTotal(base, hra, allowances, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(hra).Add(allowances).Sub(deductions)
}
