package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
)

type SalaryServiceImpl struct {
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

// SetSalary implements salary.SalaryService. The stored total is always
// recomputed server-side from the components.
func (s *SalaryServiceImpl) SetSalary(ctx context.Context, req salary.SetSalaryRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return false, err
	}

	total := salary.ComputeTotal(*req.BaseSalary, *req.HRA, *req.Allowances, *req.Deductions)

	return s.salaryRepo.Upsert(ctx, salary.Salary{
		EmployeeID:  req.EmployeeID,
		BaseSalary:  *req.BaseSalary,
		HRA:         *req.HRA,
		Allowances:  *req.Allowances,
		Deductions:  *req.Deductions,
		TotalSalary: total,
	})
}

// GetMySalary implements salary.SalaryService.
func (s *SalaryServiceImpl) GetMySalary(ctx context.Context) (salary.SalaryResponse, error) {
	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	sal, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return mapSalary(sal), nil
}

// ListSalaries implements salary.SalaryService.
func (s *SalaryServiceImpl) ListSalaries(ctx context.Context) (salary.ListSalariesResponse, error) {
	salaries, err := s.salaryRepo.ListAll(ctx)
	if err != nil {
		return salary.ListSalariesResponse{}, fmt.Errorf("failed to list salaries: %w", err)
	}

	resp := salary.ListSalariesResponse{Salaries: make([]salary.SalaryResponse, 0, len(salaries))}
	for _, sal := range salaries {
		resp.Salaries = append(resp.Salaries, mapSalary(sal))
	}

	return resp, nil
}

func mapSalary(sal salary.Salary) salary.SalaryResponse {
	return salary.SalaryResponse{
		EmployeeID:  sal.EmployeeID,
		FirstName:   sal.FirstName,
		LastName:    sal.LastName,
		BaseSalary:  sal.BaseSalary,
		HRA:         sal.HRA,
		Allowances:  sal.Allowances,
		Deductions:  sal.Deductions,
		TotalSalary: sal.TotalSalary,
		UpdatedAt:   sal.UpdatedAt.Format(time.RFC3339),
	}
}
