package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/password"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	roleRepo     employee.RoleRepository
	jwtService   jwt.Service
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	roleRepo employee.RoleRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Unknown email and wrong password both
// return ErrInvalidCredentials so responses do not reveal which emails exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDeactivated
	}

	if !password.Compare(emp.PasswordHash, req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(emp.EmployeeID, emp.RoleID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	roleName := employee.RoleEmployee
	if role, err := s.roleRepo.GetByID(ctx, emp.RoleID); err == nil {
		roleName = role.RoleName
	} else {
		slog.Warn("failed to resolve role name at login", "employee_id", emp.EmployeeID, "error", err)
	}

	return auth.LoginResponse{
		Token:               token,
		ExpiresAt:           expiresAt,
		ForcePasswordChange: emp.IsTempPassword,
		Role:                roleName,
	}, nil
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	employeeID, err := jwt.EmployeeIDFromContext(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.ErrUserNotFound
		}
		return err
	}

	if !password.Compare(emp.PasswordHash, req.OldPassword) {
		return auth.ErrOldPasswordIncorrect
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.employeeRepo.UpdatePassword(ctx, employeeID, newHash)
}
