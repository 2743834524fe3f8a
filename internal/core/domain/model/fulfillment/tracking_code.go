package fulfillment

import (
	"fmt"
	"regexp"

	"fulfillment/internal/pkg/errs"
)

// TrackingCodeLength is the total length of a public tracking code:
// a 3-letter brand prefix followed by 8 uppercase alphanumerics.
const TrackingCodeLength = 11

// trackingCodePattern matches the public tracking code format, e.g.
// "AND7K2P9QXM".
var trackingCodePattern = regexp.MustCompile(`^[A-Z]{3}[A-Z0-9]{8}$`)

// TrackingCode is the public, human-shareable identifier of a fulfillment
// unit, used for unauthenticated tracking lookups. Once assigned to a unit it
// never changes.
type TrackingCode struct {
	value string
}

// NewTrackingCode validates and wraps a tracking code string.
func NewTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("%q does not match the 3-letter prefix + 8 alphanumerics format", value),
		)
	}
	return TrackingCode{value: value}, nil
}

// String returns the code text.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two codes.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns an error for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("tracking code must be created via NewTrackingCode")
	}
	return nil
}
