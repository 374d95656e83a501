package models

import "github.com/mmynk/travelbuddy/internal/membership"

// Membership records a user's association with a trip.
// At most one exists for each (UserID, TripID) pair.
type Membership struct {
	ID        int64             `db:"id"`
	UserID    int64             `db:"user_id"`
	TripID    int64             `db:"trip_id"`
	Role      string            `db:"role"`
	Status    membership.Status `db:"status"`
	CreatedAt int64             `db:"created_at"`
	UpdatedAt int64             `db:"updated_at"`
}

// TripRequest summarizes a membership from the trip owner's point of view.
type TripRequest struct {
	MembershipID int64
	Username     string
	Status       string
	UserID       int64
}
