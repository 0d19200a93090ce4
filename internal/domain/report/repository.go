package report

import "context"

// ReportRepository defines the read-only report joins and the audit log
// writer.
type ReportRepository interface {
	// AttendanceReport joins attendance to names with optional inclusive date
	// bounds, ordered date descending then name.
	AttendanceReport(ctx context.Context, filter AttendanceReportFilter) ([]AttendanceReportRow, error)

	// SalaryReport joins all salary rows to names, ordered by name.
	SalaryReport(ctx context.Context) ([]SalaryReportRow, error)

	// Log appends one audit row. Every report invocation writes one.
	Log(ctx context.Context, log ReportLog) error
}

// ReportService defines report generation.
type ReportService interface {
	AttendanceReport(ctx context.Context, filter AttendanceReportFilter) (AttendanceReportResponse, error)
	SalaryReport(ctx context.Context) (SalaryReportResponse, error)
}
