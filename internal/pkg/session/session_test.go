package session_test

import (
	"testing"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lifecycle(t *testing.T) {
	store := session.NewStore()

	t.Run("empty_store_has_no_token", func(t *testing.T) {
		_, err := store.Token()
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("login_sets_token_and_role", func(t *testing.T) {
		store.Login("token-123", "manager")

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, "token-123", token)
		assert.Equal(t, "manager", store.Role())
	})

	t.Run("logout_clears_credentials", func(t *testing.T) {
		store.Logout()

		_, err := store.Token()
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, store.Role())
	})
}
