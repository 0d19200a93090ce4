package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/report"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// AttendanceReport implements report.ReportRepository.
func (r *reportRepository) AttendanceReport(ctx context.Context, filter report.AttendanceReportFilter) ([]report.AttendanceReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.employee_id, e.first_name, e.last_name, a.date,
			   a.check_in, a.check_out, a.status
		FROM attendances a
		JOIN employees e ON e.employee_id = a.employee_id
	`

	var (
		args       []any
		conditions []string
	)
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY a.date DESC, e.first_name, e.last_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceReportRow
	for rows.Next() {
		var (
			date              time.Time
			checkIn, checkOut *time.Time
			rec               report.AttendanceReportRow
		)
		err := rows.Scan(
			&rec.EmployeeID, &rec.FirstName, &rec.LastName, &date,
			&checkIn, &checkOut, &rec.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		rec.Date = date.Format("2006-01-02")
		if checkIn != nil {
			v := checkIn.Format(time.RFC3339)
			rec.CheckIn = &v
		}
		if checkOut != nil {
			v := checkOut.Format(time.RFC3339)
			rec.CheckOut = &v
		}
		result = append(result, rec)
	}

	return result, nil
}

// SalaryReport implements report.ReportRepository.
func (r *reportRepository) SalaryReport(ctx context.Context) ([]report.SalaryReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.employee_id, e.first_name, e.last_name, s.base_salary, s.hra,
			   s.allowances, s.deductions, s.total_salary, s.updated_at
		FROM salaries s
		JOIN employees e ON e.employee_id = s.employee_id
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary report: %w", err)
	}
	defer rows.Close()

	var result []report.SalaryReportRow
	for rows.Next() {
		var (
			updatedAt time.Time
			rec       report.SalaryReportRow
		)
		err := rows.Scan(
			&rec.EmployeeID, &rec.FirstName, &rec.LastName, &rec.BaseSalary,
			&rec.HRA, &rec.Allowances, &rec.Deductions, &rec.TotalSalary, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary report row: %w", err)
		}
		rec.UpdatedAt = updatedAt.Format(time.RFC3339)
		result = append(result, rec)
	}

	return result, nil
}

// Log implements report.ReportRepository.
func (r *reportRepository) Log(ctx context.Context, log report.ReportLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO report_logs (report_id, report_type, generated_for, generated_by)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, log.ReportID, log.ReportType, log.GeneratedFor, log.GeneratedBy)
	if err != nil {
		return fmt.Errorf("failed to log report: %w", err)
	}

	return nil
}
