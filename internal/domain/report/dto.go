package report

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AttendanceReportFilter carries the optional inclusive date bounds.
type AttendanceReportFilter struct {
	FromDate *string
	ToDate   *string
}

func (f *AttendanceReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.FromDate != nil {
		if _, ok := validator.IsValidDate(*f.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.ToDate != nil {
		if _, ok := validator.IsValidDate(*f.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceReportRow struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
}

type SalaryReportRow struct {
	EmployeeID  string          `json:"employee_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	HRA         decimal.Decimal `json:"hra"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	TotalSalary decimal.Decimal `json:"total_salary"`
	UpdatedAt   string          `json:"updated_at"`
}

type AttendanceReportResponse struct {
	ReportID    string                `json:"report_id"`
	ReportType  string                `json:"report_type"`
	GeneratedAt string                `json:"generated_at"`
	Data        []AttendanceReportRow `json:"data"`
}

type SalaryReportResponse struct {
	ReportID    string            `json:"report_id"`
	ReportType  string            `json:"report_type"`
	GeneratedAt string            `json:"generated_at"`
	Data        []SalaryReportRow `json:"data"`
}
