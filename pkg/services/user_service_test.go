package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entuser "github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/pkg/models"
	testdb "github.com/factforge/factforge/test/database"
)

func TestUserService_Ensure(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates on first sight", func(t *testing.T) {
		u, err := service.Ensure(ctx, "rev-1", "asha", models.RoleReviewer)
		require.NoError(t, err)
		assert.Equal(t, "rev-1", u.ID)
		assert.Equal(t, "asha", u.Username)
		assert.Equal(t, entuser.RoleReviewer, u.Role)
	})

	t.Run("same identity is a no-op", func(t *testing.T) {
		u, err := service.Ensure(ctx, "rev-1", "asha", models.RoleReviewer)
		require.NoError(t, err)
		assert.Equal(t, "rev-1", u.ID)

		count, err := client.Client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("gateway role change is mirrored", func(t *testing.T) {
		u, err := service.Ensure(ctx, "rev-1", "asha", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, entuser.RoleAdmin, u.Role)
	})

	t.Run("empty username defaults to the id", func(t *testing.T) {
		u, err := service.Ensure(ctx, "rev-2", "", models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, "rev-2", u.Username)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := service.Ensure(ctx, "", "x", models.RoleUser)
		assert.True(t, IsValidationError(err))

		_, err = service.Ensure(ctx, "u", "x", models.Role("wizard"))
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created := createTestUser(t, client.Client, entuser.RoleAdmin)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)

	_, err = service.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
