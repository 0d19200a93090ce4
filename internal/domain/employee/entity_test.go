package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrivileged(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"ADMIN", true},
		{"HR", true},
		{"admin", true},
		{"hr", true},
		{"Hr", true},
		{"EMPLOYEE", false},
		{"MANAGER", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrivileged(tt.role), "role %q", tt.role)
	}
}
