package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. Dates are
// passed as "2006-01-02" strings so a calendar day compares exactly against
// the date column regardless of session timezone.
type AttendanceRepository interface {
	// Create inserts a check-in row.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// ExistsForDate reports whether a row exists for (employee, date). Used to
	// reject double check-ins.
	ExistsForDate(ctx context.Context, employeeID string, date string) (bool, error)

	// CloseOpenSession sets check_out on today's open row (check_out IS NULL).
	// Returns ErrNotCheckedIn when there is no open row.
	CloseOpenSession(ctx context.Context, employeeID string, date string, checkOut time.Time) error

	// SetLeaveStatus upserts the row for (employee, date) to status LEAVE.
	// Called once per day during approval backfill, inside the approval
	// transaction.
	SetLeaveStatus(ctx context.Context, employeeID string, date string) error

	// ListByEmployee retrieves an employee's rows, date descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListAll retrieves all rows joined to employee names, date descending.
	ListAll(ctx context.Context) ([]Attendance, error)
}

// AttendanceService defines check-in/out business logic.
type AttendanceService interface {
	CheckIn(ctx context.Context) (CheckInResponse, error)
	CheckOut(ctx context.Context) (CheckOutResponse, error)
	GetMyAttendance(ctx context.Context) (ListAttendanceResponse, error)
	ListAttendance(ctx context.Context) (ListAttendanceResponse, error)
}
