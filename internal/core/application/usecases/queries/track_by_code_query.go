// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var ErrTrackByCodeQueryIsNotConstructed = errors.New(
	"TrackByCodeQuery must be created via NewTrackByCodeQuery constructor",
)

// TrackByCodeQuery retrieves the public tracking view of a fulfillment unit
// by its tracking code. The query is anonymous: anyone holding the code may
// look it up, so the response carries no buyer or seller identities.
type TrackByCodeQuery struct {
	code fulfillment.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackByCodeQuery creates a tracking lookup for the given code text.
// Malformed codes are rejected here, before any storage access.
func NewTrackByCodeQuery(code string) (TrackByCodeQuery, error) {
	trackingCode, err := fulfillment.NewTrackingCode(code)
	if err != nil {
		return TrackByCodeQuery{}, err
	}

	return TrackByCodeQuery{
		code:  trackingCode,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackByCodeQuery) Validate() error {
	return q.guard.Validate(ErrTrackByCodeQueryIsNotConstructed)
}

// Code returns the tracking code being looked up.
func (q TrackByCodeQuery) Code() fulfillment.TrackingCode {
	return q.code
}

// TrackingHistoryEntryResponse is one public history row.
type TrackingHistoryEntryResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// TrackByCodeQueryResponse is the public tracking view: lifecycle state and
// history, no marketplace identities.
type TrackByCodeQueryResponse struct {
	TrackingCode        string                         `json:"trackingCode"`
	Status              string                         `json:"status"`
	CarrierName         string                         `json:"carrierName,omitempty"`
	CurrentLocation     string                         `json:"currentLocation,omitempty"`
	DestinationLocality string                         `json:"destinationLocality"`
	EstimatedDelivery   time.Time                      `json:"estimatedDelivery"`
	History             []TrackingHistoryEntryResponse `json:"history"`
}
