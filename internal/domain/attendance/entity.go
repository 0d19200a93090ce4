package attendance

import "time"

// Attendance status values. Absence has no row at all.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusLeave   = "LEAVE"
)

// Attendance is one row per employee per calendar day. Rows are created on
// check-in or by leave approval, mutated on check-out or by leave approval,
// never deleted.
type Attendance struct {
	ID         int64
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string

	// Join
	FirstName *string
	LastName  *string
}
