package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// NewRoleResolver exposes the fresh role lookup used by the authorization
// guard.
func NewRoleResolver(db *database.DB) employee.RoleResolver {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	employee_id, first_name, last_name, email, password_hash, role_id,
	department_id, joining_year, joining_serial, is_temp_password, is_active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.PasswordHash,
		&e.RoleID, &e.DepartmentID, &e.JoiningYear, &e.JoiningSerial,
		&e.IsTempPassword, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, email, password_hash, role_id,
			department_id, joining_year, joining_serial, is_temp_password, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash,
		emp.RoleID, emp.DepartmentID, emp.JoiningYear, emp.JoiningSerial,
		emp.IsTempPassword, emp.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.ErrEmailExists
			}
			return employee.ErrEmployeeIDExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// MaxJoiningSerial implements employee.EmployeeRepository.
func (r *employeeRepository) MaxJoiningSerial(ctx context.Context, joiningYear int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(MAX(joining_serial), 0) FROM employees WHERE joining_year = $1`

	var maxSerial int
	if err := q.QueryRow(ctx, query, joiningYear).Scan(&maxSerial); err != nil {
		return 0, fmt.Errorf("failed to get max joining serial: %w", err)
	}

	return maxSerial, nil
}

// UpdatePassword implements employee.EmployeeRepository.
func (r *employeeRepository) UpdatePassword(ctx context.Context, employeeID string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET password_hash = $1, is_temp_password = FALSE, updated_at = $2
		WHERE employee_id = $3
	`

	tag, err := q.Exec(ctx, query, passwordHash, time.Now(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = $1
		WHERE employee_id = $2
	`

	tag, err := q.Exec(ctx, query, time.Now(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.email, e.password_hash,
			   e.role_id, e.department_id, e.joining_year, e.joining_serial,
			   e.is_temp_password, e.is_active, e.created_at, e.updated_at,
			   r.role_name
		FROM employees e
		LEFT JOIN roles r ON r.id = e.role_id
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.PasswordHash,
			&e.RoleID, &e.DepartmentID, &e.JoiningYear, &e.JoiningSerial,
			&e.IsTempPassword, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
			&e.RoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) employee.RoleRepository {
	return &roleRepository{db: db}
}

// GetByID implements employee.RoleRepository.
func (r *roleRepository) GetByID(ctx context.Context, id int) (employee.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, role_name FROM roles WHERE id = $1`

	var role employee.Role
	err := q.QueryRow(ctx, query, id).Scan(&role.ID, &role.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Role{}, employee.ErrRoleNotFound
		}
		return employee.Role{}, fmt.Errorf("failed to get role by ID: %w", err)
	}

	return role, nil
}

// ResolveRole implements employee.RoleResolver. The role name is read fresh so
// privileged requests see role changes without re-login.
func (r *employeeRepository) ResolveRole(ctx context.Context, employeeID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.role_name
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.employee_id = $1
	`

	var roleName string
	err := q.QueryRow(ctx, query, employeeID).Scan(&roleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", employee.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}

	return roleName, nil
}
