package auth

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	USER_ID       = 123
	SESSION_TOKEN = "test-session-token"
)

type input struct {
	User user.User
}

func (i input) WithAuthenticatedUser(u user.User) Input {
	i.User = u
	return i
}

type result struct {
	User user.User
}

type stubService struct{}

func (s *stubService) Run(ctx context.Context, input input) (result, error) {
	return result{User: input.User}, nil
}

func setup() (services.Service[input, result], *user.FakeSessionRepository) {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.Email("test@test.test"),
		PasswordHash: user.PasswordHash("test-hash"),
	}}
	sessionRepo := user.NewFakeSessionRepository(userRepo)
	sessionRepo.UserIDByToken[user.SessionToken(SESSION_TOKEN)] = user.ID(USER_ID)
	return WithAuthentication[input, result](sessionRepo, &stubService{}), sessionRepo
}

func TestAuthenticatedUserPassedToInner(t *testing.T) {
	// Setup ---
	service, _ := setup()
	ctx := context.WithValue(
		context.Background(),
		CONTEXT_AUTH_TOKEN_KEY,
		user.SessionToken(SESSION_TOKEN),
	)

	// Exercise ---
	result, err := service.Run(ctx, input{})

	// Verify ---
	require.NoError(t, err)
	assert.Equal(t, user.ID(USER_ID), result.User.ID)
}

func TestNoTokenInContext(t *testing.T) {
	// Setup ---
	service, _ := setup()

	// Exercise ---
	_, err := service.Run(context.Background(), input{})

	// Verify ---
	require.ErrorIs(t, err, user.ErrSessionDoesNotExist)
}

func TestUnknownToken(t *testing.T) {
	// Setup ---
	service, _ := setup()
	ctx := context.WithValue(
		context.Background(),
		CONTEXT_AUTH_TOKEN_KEY,
		user.SessionToken("unknown-token"),
	)

	// Exercise ---
	_, err := service.Run(ctx, input{})

	// Verify ---
	require.ErrorIs(t, err, user.ErrSessionDoesNotExist)
}
