package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatesInRange(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "single day",
			start: "2026-03-10",
			end:   "2026-03-10",
			want:  []string{"2026-03-10"},
		},
		{
			name:  "three days",
			start: "2026-03-10",
			end:   "2026-03-12",
			want:  []string{"2026-03-10", "2026-03-11", "2026-03-12"},
		},
		{
			name:  "crosses month boundary",
			start: "2026-01-30",
			end:   "2026-02-02",
			want:  []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"},
		},
		{
			name:  "crosses leap day",
			start: "2028-02-28",
			end:   "2028-03-01",
			want:  []string{"2028-02-28", "2028-02-29", "2028-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datesInRange(day(tt.start), day(tt.end)))
		})
	}
}
