package accounts

import (
	"testing"
	"time"

	"freelance-market/internal/marketerrors"
	model "freelance-market/internal/models"
	"freelance-market/internal/repository"

	"github.com/stretchr/testify/require"
)

func newTestService() *AccountService {
	return NewAccountService(repository.NewMemoryRepo(), []byte("test-secret"), time.Hour)
}

func TestAccountService_Signup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		role          model.Role
		expectedError error
	}{
		{name: "valid_client", username: "klaus", email: "klaus@example.com", password: "secret-pass", role: model.RoleClient},
		{name: "valid_seller", username: "mira", email: "mira@example.com", password: "secret-pass", role: model.RoleSeller},
		{name: "missing_username", email: "x@example.com", password: "secret-pass", role: model.RoleClient, expectedError: marketerrors.ErrInvalidInput},
		{name: "missing_password", username: "klaus", email: "x@example.com", role: model.RoleClient, expectedError: marketerrors.ErrInvalidInput},
		{name: "unknown_role", username: "klaus", email: "x@example.com", password: "secret-pass", role: model.Role("admin"), expectedError: marketerrors.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := newTestService()
			user, token, err := service.Signup(tc.username, tc.email, tc.password, tc.role)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, user.UserID)
			require.Equal(t, tc.role, user.Role)
			require.NotEqual(t, tc.password, user.PasswordHash, "password must not be stored in clear")

			// the issued token verifies back to the same identity
			identity, err := service.VerifyToken(token)
			require.NoError(t, err)
			require.Equal(t, model.Identity{UserID: user.UserID, Role: tc.role}, identity)
		})
	}

	t.Run("duplicate_email", func(t *testing.T) {
		t.Parallel()

		service := newTestService()
		_, _, err := service.Signup("klaus", "dup@example.com", "secret-pass", model.RoleClient)
		require.NoError(t, err)

		_, _, err = service.Signup("other", "dup@example.com", "secret-pass", model.RoleClient)
		require.ErrorIs(t, err, marketerrors.ErrUserExists)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	service := newTestService()
	created, _, err := service.Signup("klaus", "klaus@example.com", "secret-pass", model.RoleClient)
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		user, token, err := service.Login("klaus@example.com", "secret-pass")
		require.NoError(t, err)
		require.Equal(t, created.UserID, user.UserID)

		identity, err := service.VerifyToken(token)
		require.NoError(t, err)
		require.Equal(t, created.UserID, identity.UserID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Login("klaus@example.com", "wrong-pass")
		require.ErrorIs(t, err, marketerrors.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, _, err := service.Login("nobody@example.com", "secret-pass")
		require.ErrorIs(t, err, marketerrors.ErrUserNotFound)
	})
}

func TestAccountService_VerifyToken(t *testing.T) {
	t.Parallel()

	service := newTestService()

	t.Run("garbage_token", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-token")
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("token_signed_with_other_secret", func(t *testing.T) {
		other := NewAccountService(repository.NewMemoryRepo(), []byte("other-secret"), time.Hour)
		_, token, err := other.Signup("klaus", "klaus@example.com", "secret-pass", model.RoleClient)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("expired_token", func(t *testing.T) {
		expired := NewAccountService(repository.NewMemoryRepo(), []byte("test-secret"), -time.Minute)
		_, token, err := expired.Signup("klaus", "old@example.com", "secret-pass", model.RoleClient)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})
}
