package report

import (
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestDescribeRange(t *testing.T) {
	from := "2026-01-01"
	to := "2026-01-31"

	tests := []struct {
		name   string
		filter report.AttendanceReportFilter
		want   string
	}{
		{"no bounds", report.AttendanceReportFilter{}, "ALL"},
		{"both bounds", report.AttendanceReportFilter{FromDate: &from, ToDate: &to}, "2026-01-01 to 2026-01-31"},
		{"from only", report.AttendanceReportFilter{FromDate: &from}, "2026-01-01 to ALL"},
		{"to only", report.AttendanceReportFilter{ToDate: &to}, "ALL to 2026-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeRange(tt.filter))
		})
	}
}
