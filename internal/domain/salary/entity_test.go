package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	d := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	tests := []struct {
		name       string
		base       string
		hra        string
		allowances string
		deductions string
		want       string
	}{
		{"typical", "50000", "10000", "5000", "2000", "63000"},
		{"all zero", "0", "0", "0", "0", "0"},
		{"deductions exceed gross", "1000", "0", "0", "5000", "-4000"},
		{"decimal cents survive", "1000.50", "200.25", "0.25", "0.50", "1200.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(d(tt.base), d(tt.hra), d(tt.allowances), d(tt.deductions))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
