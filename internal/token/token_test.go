package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate("user-1", "a@b.test")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.test", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Generate("user-1", "a@b.test")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signed, err := NewManager("secret", -time.Minute).Generate("user-1", "a@b.test")
	require.NoError(t, err)

	_, err = NewManager("secret", -time.Minute).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Verify("not-a-token")
	assert.Error(t, err)
}
