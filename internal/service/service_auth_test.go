package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/mock"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "co-script-test"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	svc := NewAuthService(users, sessions, &sequentialIDs{}, config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())
	return svc, users, sessions
}

func TestAuthService_Signup(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		})

	user, token, err := svc.Signup(context.Background(), models.Credentials{
		Email:    "  Jane.Doe@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "jane.doe", user.DisplayName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

	assert.Equal(t, "id-1", token.UserID)
	assert.Equal(t, "jane.doe@example.com", token.Email)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Signup_KeepsDisplayName(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		})

	user, _, err := svc.Signup(context.Background(), models.Credentials{
		Email: "a@b.io", Password: "secret123", DisplayName: " Ann ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.DisplayName)
}

func TestAuthService_Signup_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"missing email", models.Credentials{Password: "secret123"}, validators.ErrCredentialsRequired},
		{"missing password", models.Credentials{Email: "a@b.io"}, validators.ErrCredentialsRequired},
		{"short password", models.Credentials{Email: "a@b.io", Password: "12345"}, validators.ErrPasswordTooShort},
		{"bad email", models.Credentials{Email: "not-an-email", Password: "secret123"}, validators.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService(t)
			_, _, err := svc.Signup(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Signup(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{ID: "u1", Email: "a@b.io", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.io").Return(stored, nil)

		user, token, err := svc.Login(context.Background(), models.Credentials{Email: "A@B.io", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "u1", token.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.io").Return(stored, nil)

		_, _, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "nope-nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "x@b.io").Return(models.User{}, store.ErrUserNotFound)

		_, _, err := svc.Login(context.Background(), models.Credentials{Email: "x@b.io", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrScanningRow)

		_, _, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret123"})
		assert.ErrorIs(t, err, store.ErrScanningRow)
		assert.False(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, _, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.io"})
		assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	token, err := utils.GenerateJWTToken(testIssuer, "u1", "a@b.io", time.Hour, testSignKey)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		svc, _, sessions := newTestAuthService(t)
		sessions.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(false, nil)

		parsed, err := svc.ParseToken(context.Background(), token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, models.Identity{ID: "u1", Email: "a@b.io"}, parsed.Identity())
	})

	t.Run("revoked", func(t *testing.T) {
		svc, _, sessions := newTestAuthService(t)
		sessions.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(true, nil)

		_, err := svc.ParseToken(context.Background(), token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("denylist unavailable", func(t *testing.T) {
		svc, _, sessions := newTestAuthService(t)
		sessions.EXPECT().IsRevoked(gomock.Any(), token.ID).Return(false, errors.New("connection refused"))

		_, err := svc.ParseToken(context.Background(), token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("forged", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		other, err := utils.GenerateJWTToken(testIssuer, "u1", "a@b.io", time.Hour, "another-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), other.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

func TestAuthService_Logout(t *testing.T) {
	token, err := utils.GenerateJWTToken(testIssuer, "u1", "a@b.io", time.Hour, testSignKey)
	require.NoError(t, err)

	t.Run("revokes for the remaining lifetime", func(t *testing.T) {
		svc, _, sessions := newTestAuthService(t)
		sessions.EXPECT().
			Revoke(gomock.Any(), token.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.Greater(t, ttl, 59*time.Minute)
				assert.LessOrEqual(t, ttl, time.Hour)
				return nil
			})

		require.NoError(t, svc.Logout(context.Background(), token.SignedString))
	})

	t.Run("garbage token is ignored", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		assert.NoError(t, svc.Logout(context.Background(), "not.a.jwt"))
		assert.NoError(t, svc.Logout(context.Background(), ""))
	})
}

func TestAuthService_Session(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Email: "a@b.io"}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrUserNotFound)

	info, err := svc.Session(context.Background(), models.Identity{ID: "u1", Email: "a@b.io"})
	require.NoError(t, err)
	assert.Equal(t, models.SessionInfo{Authenticated: true, ID: "u1", Email: "a@b.io"}, info)

	_, err = svc.Session(context.Background(), models.Identity{ID: "gone"})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
