// Package storage provides abstractions for persistent data storage.
//
// Lookups never fail for absence: a missing record is returned as a nil
// pointer with a nil error. Errors are reserved for storage failures and
// for unique-constraint violations, which wrap ErrDuplicate.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
)

var (
	// ErrDuplicate is wrapped by inserts that violate a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrUnsupportedBlob is wrapped by blob writes of a disallowed file type.
	ErrUnsupportedBlob = errors.New("unsupported file type")
)

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts a user and sets user.ID.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUser overwrites profile fields and the review score.
	UpdateUser(ctx context.Context, user *models.User) error
}

// TripStore persists trips and their interest tags.
type TripStore interface {
	// CreateTrip inserts the trip and its interest associations and sets trip.ID.
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
	// UpdateTrip overwrites the mutable fields and replaces the interest set.
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	// DeleteTrip removes the trip; memberships, posts and reviews cascade.
	DeleteTrip(ctx context.Context, id int64) error
	ListInterests(ctx context.Context) ([]*models.Interest, error)
}

// TripImageStore persists pictures attached to trips. Images are removed
// with their trip.
type TripImageStore interface {
	CreateTripImage(ctx context.Context, img *models.TripImage) error
	// ListTripImagesByTrip returns the trip's images, oldest first.
	ListTripImagesByTrip(ctx context.Context, tripID int64) ([]*models.TripImage, error)
}

// MembershipStore persists user/trip memberships.
type MembershipStore interface {
	// CreateMembership inserts m and sets m.ID. A second membership for the
	// same user and trip fails with ErrDuplicate.
	CreateMembership(ctx context.Context, m *models.Membership) error
	GetMembership(ctx context.Context, id int64) (*models.Membership, error)
	GetMembershipByUserAndTrip(ctx context.Context, userID, tripID int64) (*models.Membership, error)
	ListMembershipsByTrip(ctx context.Context, tripID int64) ([]*models.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID int64) ([]*models.Membership, error)
	// UpdateMembershipStatus overwrites the status of a single row.
	UpdateMembershipStatus(ctx context.Context, id int64, status membership.Status, updatedAt int64) error
}

// PostStore persists trip posts.
type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ListPostsByTrip(ctx context.Context, tripID int64) ([]*models.Post, error)
}

// ReviewStore persists reviews. A reviewer may review a post only once.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviewsByReviewee(ctx context.Context, userID int64) ([]*models.Review, error)
}

// NotificationStore persists user notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	GetNotification(ctx context.Context, id int64) (*models.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	UpdateNotificationStatus(ctx context.Context, id int64, status string, updatedAt int64) error
}

// Store is the full entity store used by the travel core.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	TripStore
	TripImageStore
	MembershipStore
	PostStore
	ReviewStore
	NotificationStore

	// Close releases any resources held by the store.
	Close() error
}

// BlobStore holds uploaded files.
type BlobStore interface {
	// Put writes data under a name derived from suggestedName and returns its path.
	Put(ctx context.Context, data []byte, suggestedName string) (string, error)
}
