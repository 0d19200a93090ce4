package report

import "time"

type ReportType string

const (
	ReportTypeAttendance ReportType = "ATTENDANCE"
	ReportTypeSalary     ReportType = "SALARY"
)

// ReportLog is the append-only audit row written every time a report is
// generated.
type ReportLog struct {
	ID           int64
	ReportID     string
	ReportType   ReportType
	GeneratedFor string
	GeneratedBy  string
	CreatedAt    time.Time
}
