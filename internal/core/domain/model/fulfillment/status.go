package fulfillment

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal status edges. Concrete
// failures are reported as *InvalidTransitionError, which unwraps to this.
var ErrInvalidTransition = errors.New("illegal status transition")

// InvalidTransitionError reports a rejected status change, carrying both the
// unit's current status and the attempted target.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a fulfillment unit.
// It implements a state machine with a fixed directed edge set:
//
//	pending ──> processing ──> shipped ──> in_transit ──> out_for_delivery ──> delivered
//	   │                         ▲  │           │                │
//	   └─────────────────────────┘  └──┬────────┴───────┬────────┘
//	      (carrier assignment)         ▼                ▼
//	                                 failed          returned
//
// pending is the only initial state; carrier assignment may move a pending
// unit directly to shipped. delivered, failed, and returned are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every fulfillment unit.
	Pending

	// Processing indicates the seller has started preparing the shipment.
	Processing

	// Shipped indicates the package was handed to a carrier.
	Shipped

	// InTransit indicates the package is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the package is on the final delivery leg.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Failed indicates the delivery failed. Terminal.
	Failed

	// Returned indicates the package was returned to the seller. Terminal.
	Returned
)

// statusStrings maps every Status to its canonical wire name. The names are
// lower_snake_case and case-sensitive; they are the public vocabulary used in
// history rows, API payloads, and notifications.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Processing:     "processing",
		Shipped:        "shipped",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Returned:       "returned",
	}
}

// transitions is the legal edge set. A status missing from the map is
// terminal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Processing, Shipped},
		Processing:     {Shipped},
		Shipped:        {InTransit, Failed, Returned},
		InTransit:      {OutForDelivery, Failed, Returned},
		OutForDelivery: {Delivered, Failed, Returned},
	}
}

// StatusFromString parses a canonical status name. Legacy values that older
// storefront views used are mapped explicitly; anything else is rejected
// rather than guessed.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}

	// Legacy vocabulary from the pre-consolidation views.
	switch s {
	case "confirmed", "preparing":
		return Processing, nil
	case "cancelled":
		return Failed, nil
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the Status is one of the eight canonical values.
// Unknown and out-of-range values are invalid. Used when reconstructing
// statuses from the database or API input.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the canonical wire name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is legal from this status.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	_, hasEdges := transitions()[s]
	return !hasEdges
}

// CanTransitionTo reports whether the edge (s, target) is in the legal set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge (s, target) and returns the new status.
// An edge outside the legal set fails with *InvalidTransitionError; the
// receiver is never mutated.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
