package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"account deactivated", auth.ErrAccountDeactivated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"old password incorrect", auth.ErrOldPasswordIncorrect, http.StatusBadRequest, "BAD_REQUEST"},
		{"user not found", auth.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email exists", employee.ErrEmailExists, http.StatusConflict, "CONFLICT"},
		{"employee already inactive", employee.ErrEmployeeAlreadyInactive, http.StatusConflict, "CONFLICT"},
		{"role not found", employee.ErrRoleNotFound, http.StatusBadRequest, "BAD_REQUEST"},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"leave request not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"leave already processed", leave.ErrAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"salary not found", salary.ErrSalaryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unknown error stays generic", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorDoesNotLeakInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}
