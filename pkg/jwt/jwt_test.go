package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "owner@example.com", RoleCreator)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, RoleCreator, claims.Role)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).GenerateAccessToken(uuid.New(), "", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	m.ttl = -time.Minute

	token, err := m.GenerateAccessToken(uuid.New(), "", RoleCreator)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}
