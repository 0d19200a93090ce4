package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmployeeID(t *testing.T) {
	tests := []struct {
		name        string
		companyCode string
		firstName   string
		lastName    string
		joiningYear int
		serial      int
		want        string
	}{
		{
			name:        "basic",
			companyCode: "AC",
			firstName:   "Jane",
			lastName:    "Doe",
			joiningYear: 2024,
			serial:      1,
			want:        "ACJADO2024001",
		},
		{
			name:        "serial is zero padded",
			companyCode: "AC",
			firstName:   "Jane",
			lastName:    "Doe",
			joiningYear: 2024,
			serial:      42,
			want:        "ACJADO2024042",
		},
		{
			name:        "serial past three digits keeps growing",
			companyCode: "AC",
			firstName:   "Jane",
			lastName:    "Doe",
			joiningYear: 2024,
			serial:      1000,
			want:        "ACJADO20241000",
		},
		{
			name:        "lowercase names are uppercased",
			companyCode: "XY",
			firstName:   "alice",
			lastName:    "smith",
			joiningYear: 2025,
			serial:      7,
			want:        "XYALSM2025007",
		},
		{
			name:        "multibyte names keep two whole letters",
			companyCode: "AC",
			firstName:   "张伟",
			lastName:    "Doe",
			joiningYear: 2024,
			serial:      5,
			want:        "AC张伟DO2024005",
		},
		{
			name:        "accented name uppercases both letters",
			companyCode: "AC",
			firstName:   "Émile",
			lastName:    "Zola",
			joiningYear: 2024,
			serial:      9,
			want:        "ACÉMZO2024009",
		},
		{
			name:        "single letter name contributes one letter",
			companyCode: "AC",
			firstName:   "J",
			lastName:    "Doe",
			joiningYear: 2024,
			serial:      3,
			want:        "ACJDO2024003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEmployeeID(tt.companyCode, tt.firstName, tt.lastName, tt.joiningYear, tt.serial)
			assert.Equal(t, tt.want, got)
		})
	}
}
