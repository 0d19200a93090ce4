package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

func ValidLeaveTypes() []string {
	return []string{string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeUnpaid)}
}

type LeaveStatus string

// Status transitions are one-way from PENDING; APPROVED and REJECTED are
// terminal.
const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

type LeaveRequest struct {
	ID         int64
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	AppliedAt  time.Time

	// Join
	FirstName *string
	LastName  *string
}

// Approval is the append-only audit trail, one row per decision.
type Approval struct {
	ID             int64
	LeaveRequestID int64
	ApprovedBy     string
	Action         LeaveStatus
	Comments       string
	ApprovedAt     time.Time
}
