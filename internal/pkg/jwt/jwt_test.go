package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "24h")

	token, expiresAt, err := svc.GenerateToken("ACJADO2024001", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	employeeID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, "ACJADO2024001", employeeID)

	roleID, ok := decoded.Get("role_id")
	require.True(t, ok)
	assert.EqualValues(t, 3, roleID)
}

func TestGenerateTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateToken("ACJADO2024001", 3)
	assert.Error(t, err)
}
