// Package membership defines the lifecycle of a user's participation in a trip.
//
// A membership is created by a join request and then decided by the trip
// owner. Statuses form a closed set and only the transitions listed in the
// table below are accepted; a decided membership can only go back to
// Pending through an explicit re-request.
package membership

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus     = errors.New("unknown membership status")
	ErrNotRequestStatus  = errors.New("join requests may only be Pending or Cancelled")
	ErrInvalidTransition = errors.New("invalid membership status transition")
)

// Status is the state of a membership.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// Roles a member may hold on a trip.
const (
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
)

// aliases maps accepted spellings (lowercased) to their canonical status.
var aliases = map[string]Status{
	"pending":   StatusPending,
	"requested": StatusPending,
	"approved":  StatusApproved,
	"accepted":  StatusApproved,
	"rejected":  StatusRejected,
	"declined":  StatusRejected,
	"cancelled": StatusCancelled,
	"canceled":  StatusCancelled,
}

// transitions lists the statuses reachable from each status via a decision.
// Re-requests are not decisions and bypass this table.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {StatusCancelled},
	StatusRejected:  {},
	StatusCancelled: {},
}

// ParseStatus resolves s (case-insensitive, aliases allowed) to a Status.
func ParseStatus(s string) (Status, error) {
	st, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// ParseRequestStatus resolves the initial status of a join request.
// An empty value defaults to Pending.
func ParseRequestStatus(s string) (Status, error) {
	if strings.TrimSpace(s) == "" {
		return StatusPending, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	if st != StatusPending && st != StatusCancelled {
		return "", fmt.Errorf("%w: got %s", ErrNotRequestStatus, st)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Decided reports whether the owner has acted on the membership.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string { return string(s) }

// CanTransition reports whether a decision may move a membership from one
// status to another. Staying in the same status is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return from.Valid()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition when CanTransition is false.
func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
