// Package models defines the core domain models for the travel backend.
//
// # Entities
//
//   - User: an account; Email and Username are unique. Federated sign-ins
//     have an empty PasswordHash.
//   - Trip: a planned trip owned by its creator (CreatedBy never changes).
//   - Interest: a tag attached to trips.
//   - Membership: a user's participation in a trip (at most one per pair).
//   - Post: content shared by a member, tied to their Membership.
//   - Review: a rating left by a user on a post.
//   - Notification: a message delivered to a user when a membership changes.
//
// # Conventions
//
// IDs are int64 assigned by the store. Timestamps are Unix seconds. Trip
// dates are calendar dates in "2006-01-02" form. Relationships are stored
// as IDs rather than pointers.
package models
