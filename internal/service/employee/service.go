package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/password"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	roleRepo     employee.RoleRepository
	companyRepo  company.CompanyRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	roleRepo employee.RoleRepository,
	companyRepo company.CompanyRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		companyRepo:  companyRepo,
	}
}

// BuildEmployeeID assembles the business key:
// company code + first two letters of each name, uppercased + joining year +
// zero-padded serial. Names shorter than two letters contribute what they
// have.
func BuildEmployeeID(companyCode, firstName, lastName string, joiningYear, serial int) string {
	return fmt.Sprintf("%s%s%s%d%03d",
		companyCode,
		initials(firstName),
		initials(lastName),
		joiningYear,
		serial,
	)
}

func initials(name string) string {
	// Slice runes, not bytes, so multibyte names keep two whole letters.
	r := []rune(strings.TrimSpace(name))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// CreateEmployee implements employee.EmployeeService. The serial read and the
// insert run in one transaction so concurrent onboarding for the same year
// cannot allocate the same ID; the UNIQUE(joining_year, joining_serial)
// constraint backstops the race.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	tempPassword, err := password.GenerateTemp()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	passwordHash, err := password.Hash(tempPassword)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var employeeID string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		comp, err := s.companyRepo.Get(txCtx)
		if err != nil {
			return err
		}

		maxSerial, err := s.employeeRepo.MaxJoiningSerial(txCtx, req.JoiningYear)
		if err != nil {
			return err
		}
		serial := maxSerial + 1

		employeeID = BuildEmployeeID(comp.Code, req.FirstName, req.LastName, req.JoiningYear, serial)

		return s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeID:     employeeID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			PasswordHash:   passwordHash,
			RoleID:         req.RoleID,
			DepartmentID:   req.DepartmentID,
			JoiningYear:    req.JoiningYear,
			JoiningSerial:  serial,
			IsTempPassword: true,
			IsActive:       true,
		})
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	return employee.CreateEmployeeResponse{
		EmployeeID:        employeeID,
		TemporaryPassword: tempPassword,
	}, nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, req employee.DeactivateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}

	return s.employeeRepo.Deactivate(ctx, req.EmployeeID)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{Employees: make([]employee.EmployeeResponse, 0, len(employees))}
	for _, emp := range employees {
		roleName := ""
		if emp.RoleName != nil {
			roleName = *emp.RoleName
		}
		resp.Employees = append(resp.Employees, employee.EmployeeResponse{
			EmployeeID:   emp.EmployeeID,
			FirstName:    emp.FirstName,
			LastName:     emp.LastName,
			Email:        emp.Email,
			RoleName:     roleName,
			DepartmentID: emp.DepartmentID,
			JoiningYear:  emp.JoiningYear,
			IsActive:     emp.IsActive,
		})
	}

	return resp, nil
}
