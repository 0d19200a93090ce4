package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrEmployeeIDExists        = errors.New("employee ID already exists")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrRoleNotFound            = errors.New("role not found")
)
