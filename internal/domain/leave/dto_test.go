package leave

import (
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLeaveRequestValidate(t *testing.T) {
	valid := ApplyLeaveRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "family trip",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("leave type is normalized to uppercase", func(t *testing.T) {
		req := valid
		req.LeaveType = " sick "
		require.NoError(t, req.Validate())
		assert.Equal(t, "SICK", req.LeaveType)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		req := valid
		req.LeaveType = "VACATION"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "leave_type")
	})

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.StartDate = "2026-03-12"
		req.EndDate = "2026-03-10"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "end_date")
	})

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.StartDate = "10-03-2026"
		assert.Error(t, req.Validate())
	})

	t.Run("missing reason", func(t *testing.T) {
		req := valid
		req.Reason = "  "
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "reason")
	})

	t.Run("all fields missing", func(t *testing.T) {
		req := ApplyLeaveRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs.ToMap(), 4)
	})
}

func TestDecisionRequestValidate(t *testing.T) {
	req := DecisionRequest{LeaveRequestID: 12}
	assert.NoError(t, req.Validate())

	req = DecisionRequest{}
	assert.Error(t, req.Validate())

	req = DecisionRequest{LeaveRequestID: -1}
	assert.Error(t, req.Validate())
}
