package attendance

import (
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestStatusForTime(t *testing.T) {
	cutoff := 9*time.Hour + 30*time.Minute
	day := func(hour, min, sec int) time.Time {
		return time.Date(2026, 8, 30, hour, min, sec, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"early morning", day(7, 0, 0), attendance.StatusPresent},
		{"one second before cutoff", day(9, 29, 59), attendance.StatusPresent},
		{"exactly at cutoff", day(9, 30, 0), attendance.StatusPresent},
		{"one second after cutoff", day(9, 30, 1), attendance.StatusLate},
		{"late morning", day(10, 0, 0), attendance.StatusLate},
		{"midnight", day(0, 0, 0), attendance.StatusPresent},
		{"end of day", day(23, 59, 59), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForTime(tt.at, cutoff))
		})
	}
}

func TestStatusForTimeRespectsLocation(t *testing.T) {
	cutoff := 9*time.Hour + 30*time.Minute
	loc := time.FixedZone("UTC+7", 7*3600)

	// 02:35 UTC is 09:35 in UTC+7: late there, on time in UTC.
	utc := time.Date(2026, 8, 30, 2, 35, 0, 0, time.UTC)
	assert.Equal(t, attendance.StatusPresent, StatusForTime(utc, cutoff))
	assert.Equal(t, attendance.StatusLate, StatusForTime(utc.In(loc), cutoff))
}
