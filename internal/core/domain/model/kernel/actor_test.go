package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates_authenticated_actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleSeller)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleSeller, actor.Role())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("admin_is_recognized", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleSeller)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("superuser"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_anonymous_role_with_identity", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAnonymous)
		require.Error(t, err)
	})
}

func TestNewAnonymousActor(t *testing.T) {
	actor := kernel.NewAnonymousActor()

	require.NoError(t, actor.Validate())
	assert.Equal(t, kernel.RoleAnonymous, actor.Role())
	require.Error(t, actor.ID().Validate())
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
