package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func TestNewTrackByCodeQuery(t *testing.T) {
	t.Run("accepts_a_well_formed_code", func(t *testing.T) {
		query, err := queries.NewTrackByCodeQuery("MKT7F3K9Q2Z")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "MKT7F3K9Q2Z", query.Code().String())
	})

	t.Run("rejects_malformed_codes_before_storage_access", func(t *testing.T) {
		for _, code := range []string{"", "short", "mkt7f3k9q2z", "MKT7F3K9Q2ZX"} {
			_, err := queries.NewTrackByCodeQuery(code)
			require.Error(t, err, code)
		}
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.TrackByCodeQuery
		require.ErrorIs(t, query.Validate(), queries.ErrTrackByCodeQueryIsNotConstructed)
	})
}

func TestNewGetBuyerFulfillmentsQuery(t *testing.T) {
	buyerID := kernel.NewUUID()

	t.Run("buyer_may_list_own_units", func(t *testing.T) {
		query, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, mustActor(t, buyerID, kernel.RoleBuyer))
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.BuyerID().IsEqual(buyerID))
	})

	t.Run("admin_may_list_any_buyer", func(t *testing.T) {
		_, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, mustActor(t, kernel.NewUUID(), kernel.RoleAdmin))
		require.NoError(t, err)
	})

	t.Run("foreign_buyer_is_unauthorized", func(t *testing.T) {
		_, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, mustActor(t, kernel.NewUUID(), kernel.RoleBuyer))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("seller_is_unauthorized", func(t *testing.T) {
		_, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, mustActor(t, buyerID, kernel.RoleSeller))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("anonymous_is_unauthorized", func(t *testing.T) {
		_, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, kernel.NewAnonymousActor())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestNewGetSellerFulfillmentsQuery(t *testing.T) {
	sellerID := kernel.NewUUID()

	t.Run("seller_may_list_own_units", func(t *testing.T) {
		query, err := queries.NewGetSellerFulfillmentsQuery(
			sellerID, fulfillment.Unknown, mustActor(t, sellerID, kernel.RoleSeller),
		)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.False(t, query.HasStatusFilter())
	})

	t.Run("status_filter_is_kept", func(t *testing.T) {
		query, err := queries.NewGetSellerFulfillmentsQuery(
			sellerID, fulfillment.Shipped, mustActor(t, sellerID, kernel.RoleSeller),
		)
		require.NoError(t, err)
		assert.True(t, query.HasStatusFilter())
		assert.Equal(t, fulfillment.Shipped, query.Status())
	})

	t.Run("admin_may_list_any_seller", func(t *testing.T) {
		_, err := queries.NewGetSellerFulfillmentsQuery(
			sellerID, fulfillment.Unknown, mustActor(t, kernel.NewUUID(), kernel.RoleAdmin),
		)
		require.NoError(t, err)
	})

	t.Run("foreign_seller_is_unauthorized", func(t *testing.T) {
		_, err := queries.NewGetSellerFulfillmentsQuery(
			sellerID, fulfillment.Unknown, mustActor(t, kernel.NewUUID(), kernel.RoleSeller),
		)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("buyer_is_unauthorized", func(t *testing.T) {
		_, err := queries.NewGetSellerFulfillmentsQuery(
			sellerID, fulfillment.Unknown, mustActor(t, sellerID, kernel.RoleBuyer),
		)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
