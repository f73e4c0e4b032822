package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is the unwrap target for every InvalidTransitionError,
// allowing callers to classify transition failures with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment state of an OrderGroup or of one of its
// service line items. Both share the same state machine:
//
//	Pending ──accept──> Accepted ──start──> InProgress ──complete──> Completed
//	Pending ──reject──> Rejected
//
// Rejected and Completed are terminal; no transition leaves them. Any
// out-of-order transition fails with InvalidTransitionError and must not
// mutate state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when a group or line item is created.
	// The fulfilling agency has not yet responded.
	StatusPending

	// StatusAccepted indicates the fulfilling agency accepted the work.
	StatusAccepted

	// StatusRejected indicates the fulfilling agency declined the work.
	// Terminal.
	StatusRejected

	// StatusInProgress indicates fulfillment has started.
	StatusInProgress

	// StatusCompleted indicates fulfillment finished. Terminal.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusAccepted:   "accepted",
		StatusRejected:   "rejected",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusAccepted:   "accepted",
		StatusRejected:   "rejected",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and values outside the declared set are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid status", s)
	}
	return nil
}

// String returns the snake_case name of the status.
// Returns "unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its persisted string form.
func StatusFromString(v string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == v {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid status", v)
}

// AllowedTransitions returns the statuses legally reachable from s.
// Terminal statuses return an empty slice.
func (s Status) AllowedTransitions() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusAccepted, StatusRejected}
	case StatusAccepted:
		return []Status{StatusInProgress}
	case StatusInProgress:
		return []Status{StatusCompleted}
	default:
		return []Status{}
	}
}

// CanTransitionTo reports whether target is legally reachable from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range s.AllowedTransitions() {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition to target.
//
// Returns:
//   - (target, nil) when the transition is legal from the current status
//   - (0, *InvalidTransitionError) otherwise; the error carries the current
//     status, the requested status, and the allowed next statuses
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, &InvalidTransitionError{
			Current:   s,
			Requested: target,
			Allowed:   s.AllowedTransitions(),
		}
	}
	return target, nil
}

// Accept transitions the status to Accepted. Legal only from Pending.
func (s Status) Accept() (Status, error) {
	return s.TransitionTo(StatusAccepted)
}

// Reject transitions the status to Rejected. Legal only from Pending.
func (s Status) Reject() (Status, error) {
	return s.TransitionTo(StatusRejected)
}

// Start transitions the status to InProgress. Legal only from Accepted.
func (s Status) Start() (Status, error) {
	return s.TransitionTo(StatusInProgress)
}

// Complete transitions the status to Completed. Legal only from InProgress.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(StatusCompleted)
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// InvalidTransitionError describes a rejected status transition. It identifies
// the current status, the requested status, and the legal next statuses so the
// caller can surface an actionable validation error. A failed transition never
// partially applies.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

// Error formats the rejected transition with the allowed next statuses.
func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = s.String()
	}
	return fmt.Sprintf("invalid status transition: %s -> %s (allowed: [%s])",
		e.Current, e.Requested, strings.Join(allowed, ", "))
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is classification.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
