package order

import (
	"fmt"

	"pancakelab/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──┬──> Completed ──> Prepared ──> Delivered
//	      │
//	      └──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status. Items can be added and removed only here.
	New

	// Completed means the customer finished composing the order and it waits for the kitchen.
	Completed

	// Prepared means the kitchen is done and the order waits for delivery.
	Prepared

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Completed: "Completed",
		Prepared:  "Prepared",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Completed: "Completed",
		Prepared:  "Prepared",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that s is one of the defined statuses other than Unknown.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Undefined values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanModifyItems returns an error unless items may be changed in s.
// action ("add", "remove") only shapes the error message.
func (s Status) ValidateCanModifyItems(action string) error {
	if s != New {
		return errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot %s pancakes in an order with %s status", action, s.String()),
		)
	}
	return nil
}

// Complete transitions New -> Completed.
func (s Status) Complete() (Status, error) {
	if s != New {
		return 0, transitionError(s, "complete")
	}
	return Completed, nil
}

// Prepare transitions Completed -> Prepared.
func (s Status) Prepare() (Status, error) {
	if s != Completed {
		return 0, transitionError(s, "prepare")
	}
	return Prepared, nil
}

// Deliver transitions Prepared -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Prepared {
		return 0, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions New -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != New {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(from Status, action string) error {
	return errs.NewStateIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to %s", from.String(), action),
	)
}
