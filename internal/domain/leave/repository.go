package leave

import "context"

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a PENDING request and returns it with its ID.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request. Returns ErrLeaveRequestNotFound when absent.
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)

	// UpdateStatus moves a request out of PENDING. The WHERE clause re-checks
	// the PENDING status so a concurrent decision loses cleanly; returns
	// ErrAlreadyProcessed when no row matched.
	UpdateStatus(ctx context.Context, id int64, status LeaveStatus) error

	// ListByEmployee retrieves an employee's requests, applied_at descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListAll retrieves all requests joined to employee names.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}

// ApprovalRepository is the append-only decision audit trail.
type ApprovalRepository interface {
	Create(ctx context.Context, approval Approval) error
}

// LeaveService defines leave workflow business logic.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	Approve(ctx context.Context, req DecisionRequest) error
	Reject(ctx context.Context, req DecisionRequest) error
	GetMyLeaves(ctx context.Context) (ListLeavesResponse, error)
	ListLeaves(ctx context.Context) (ListLeavesResponse, error)
}
