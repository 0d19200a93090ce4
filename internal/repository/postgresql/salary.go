package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

// Upsert implements salary.SalaryRepository. xmax = 0 distinguishes a fresh
// insert from a conflict update.
func (r *salaryRepository) Upsert(ctx context.Context, sal salary.Salary) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (employee_id, base_salary, hra, allowances, deductions, total_salary, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			hra = EXCLUDED.hra,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			total_salary = EXCLUDED.total_salary,
			updated_at = NOW()
		RETURNING (xmax = 0)
	`

	var created bool
	err := q.QueryRow(ctx, query,
		sal.EmployeeID, sal.BaseSalary, sal.HRA, sal.Allowances, sal.Deductions, sal.TotalSalary,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert salary: %w", err)
	}

	return created, nil
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepository) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, base_salary, hra, allowances, deductions, total_salary, updated_at
		FROM salaries
		WHERE employee_id = $1
	`

	var sal salary.Salary
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&sal.EmployeeID, &sal.BaseSalary, &sal.HRA, &sal.Allowances,
		&sal.Deductions, &sal.TotalSalary, &sal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return sal, nil
}

// ListAll implements salary.SalaryRepository.
func (r *salaryRepository) ListAll(ctx context.Context) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.employee_id, s.base_salary, s.hra, s.allowances, s.deductions,
			   s.total_salary, s.updated_at, e.first_name, e.last_name
		FROM salaries s
		JOIN employees e ON e.employee_id = s.employee_id
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	var salaries []salary.Salary
	for rows.Next() {
		var sal salary.Salary
		err := rows.Scan(
			&sal.EmployeeID, &sal.BaseSalary, &sal.HRA, &sal.Allowances,
			&sal.Deductions, &sal.TotalSalary, &sal.UpdatedAt,
			&sal.FirstName, &sal.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, sal)
	}

	return salaries, nil
}
