package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cityfashion/internal/config"
	"cityfashion/internal/domain"
	"cityfashion/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "citypos-test",
	}
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "cashier@citypos.test",
		PasswordHash: string(hash),
		FullName:     "Test Cashier",
		Role:         domain.RoleCashier,
		IsActive:     true,
	}
}

func TestAuthServiceLogin(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := NewAuthService(userRepo, testJWTConfig())

	user := testUser(t, "supersecret99")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "supersecret99"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleCashier, claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := NewAuthService(userRepo, testJWTConfig())

	user := testUser(t, "supersecret99")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "wrongpassword"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@citypos.test").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@citypos.test", Password: "whatever123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLoginInactive(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := NewAuthService(userRepo, testJWTConfig())

	user := testUser(t, "supersecret99")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "supersecret99"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthServiceRefresh(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := NewAuthService(userRepo, testJWTConfig())

	user := testUser(t, "supersecret99")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "supersecret99"})
	require.NoError(t, err)

	// An access token is not accepted in place of a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	next, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)
}

func TestAuthServiceValidateGarbage(t *testing.T) {
	svc := NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
