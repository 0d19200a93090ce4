package employee

import (
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := CreateEmployeeRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@example.com",
		RoleID:       3,
		DepartmentID: 2,
		JoiningYear:  time.Now().Year(),
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "email")
	})

	t.Run("joining year too far out", func(t *testing.T) {
		req := valid
		req.JoiningYear = time.Now().Year() + 5
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "joining_year")
	})

	t.Run("empty request reports every field", func(t *testing.T) {
		req := CreateEmployeeRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs.ToMap(), 6)
	})
}
