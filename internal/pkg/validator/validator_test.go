package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane.doe@example.com", true},
		{"a+b@sub.domain.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@example", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("15-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"PAID", "SICK", "UNPAID"}
	assert.True(t, IsInSlice("SICK", slice))
	assert.False(t, IsInSlice("sick", slice))
	assert.False(t, IsInSlice("", slice))
}

func TestIsValidJoiningYear(t *testing.T) {
	now := time.Now().Year()
	assert.True(t, IsValidJoiningYear(now))
	assert.True(t, IsValidJoiningYear(now+1))
	assert.True(t, IsValidJoiningYear(1900))
	assert.False(t, IsValidJoiningYear(now+2))
	assert.False(t, IsValidJoiningYear(1899))
	assert.False(t, IsValidJoiningYear(0))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "role_id", Message: "role_id is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.Contains(t, errs.Error(), "email: email is required")
}
