package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia_room_backend/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		Name:  "alice",
		Email: "alice@example.com",
		Role:  model.RoleUser,
	}
	u.ID = 42
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testUser(), "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseJWT("not.a.token", "test-secret")
	assert.Error(t, err)
}
