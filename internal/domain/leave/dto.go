package leave

import (
	"strings"

	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate checks the request and normalizes LeaveType to uppercase.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.LeaveType = strings.ToUpper(strings.TrimSpace(r.LeaveType))

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be PAID, SICK, or UNPAID",
		})
	}

	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK {
		start, _ := validator.IsValidDate(r.StartDate)
		end, _ := validator.IsValidDate(r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplyLeaveResponse struct {
	LeaveRequestID int64  `json:"leave_request_id"`
	Status         string `json:"status"`
}

// DecisionRequest carries an approve or reject action on a pending request.
type DecisionRequest struct {
	LeaveRequestID int64  `json:"leave_request_id"`
	Comments       string `json:"comments"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveRequestID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRecord struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	AppliedAt  string  `json:"applied_at"`
}

type ListLeavesResponse struct {
	Leaves []LeaveRecord `json:"leaves"`
}
