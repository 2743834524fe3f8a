package fulfillment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingCode(t *testing.T) {
	t.Run("accepts_well_formed_codes", func(t *testing.T) {
		for _, raw := range []string{"MKT7F3K9Q2Z", "ABC00000000", "XYZABCDEFGH", "SHP1A2B3C4D"} {
			code, err := fulfillment.NewTrackingCode(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, code.String())
			require.NoError(t, code.Validate())
		}
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := fulfillment.NewTrackingCode("")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_codes", func(t *testing.T) {
		testCases := []struct {
			name string
			raw  string
		}{
			{"too_short", "MKT7F3K9Q2"},
			{"too_long", "MKT7F3K9Q2ZZ"},
			{"digit_in_prefix", "MK77F3K9Q2Z"},
			{"lowercase_prefix", "mkt7F3K9Q2Z"},
			{"lowercase_body", "MKT7f3K9Q2Z"},
			{"symbol_in_body", "MKT7F3K-Q2Z"},
			{"whitespace", "MKT 7F3K9Q2"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := fulfillment.NewTrackingCode(tc.raw)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestTrackingCode_IsEqual(t *testing.T) {
	a, err := fulfillment.NewTrackingCode("MKT7F3K9Q2Z")
	require.NoError(t, err)
	b, err := fulfillment.NewTrackingCode("MKT7F3K9Q2Z")
	require.NoError(t, err)
	c, err := fulfillment.NewTrackingCode("MKT7F3K9Q2X")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestTrackingCode_Validate_ZeroValue(t *testing.T) {
	var code fulfillment.TrackingCode
	require.Error(t, code.Validate())
}
