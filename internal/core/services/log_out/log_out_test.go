package logout

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	USER_ID       = 42
	SESSION_TOKEN = "test-session-token"
)

func setup() (services.Service[Input, Result], *user.FakeSessionRepository) {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.Email("test@test.test"),
		PasswordHash: user.PasswordHash("test-hash"),
	}}
	sessionRepo := user.NewFakeSessionRepository(userRepo)
	sessionRepo.UserIDByToken[user.SessionToken(SESSION_TOKEN)] = user.ID(USER_ID)
	return New(logging.NewFakeLogger(), sessionRepo), sessionRepo
}

func TestSessionDeleted(t *testing.T) {
	// Setup ---
	service, sessionRepo := setup()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: user.SessionToken(SESSION_TOKEN)})

	// Verify ---
	require.NoError(t, err)
	assert.Equal(t, 0, len(sessionRepo.UserIDByToken))
}

func TestUnknownToken(t *testing.T) {
	// Setup ---
	service, sessionRepo := setup()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: user.SessionToken("unknown-token")})

	// Verify ---
	require.ErrorIs(t, err, user.ErrSessionDoesNotExist)
	assert.Equal(t, 1, len(sessionRepo.UserIDByToken))
}
