// Package travel implements the trip coordination core: the membership
// request/approval workflow, trip ownership checks, review aggregation and
// membership notifications.
//
// All operations return *apperr.Error values. Lookups that find nothing
// produce KindNotFound; storage failures produce KindUnexpected with the
// cause attached for logging only.
package travel

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage"
)

// TransitionObserver is told about every applied membership status change.
// from is empty when the membership was just created.
type TransitionObserver interface {
	ObserveTransition(from, to membership.Status)
}

// Service is the travel core.
type Service struct {
	store    storage.Store
	blobs    storage.BlobStore
	clock    func() time.Time
	observer TransitionObserver
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithBlobStore sets where post images are written.
func WithBlobStore(blobs storage.BlobStore) Option {
	return func(s *Service) { s.blobs = blobs }
}

// WithTransitionObserver registers an observer for status changes.
func WithTransitionObserver(o TransitionObserver) Option {
	return func(s *Service) { s.observer = o }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a travel core backed by store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		clock:  time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() int64 {
	return s.clock().Unix()
}

func (s *Service) observe(from, to membership.Status) {
	if s.observer != nil {
		s.observer.ObserveTransition(from, to)
	}
}

// userByEmail resolves a user by the unique email index.
func (s *Service) userByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Unexpected("load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", email)
	}
	return user, nil
}

func (s *Service) userByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperr.Unexpected("load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", id)
	}
	return user, nil
}

func (s *Service) tripByID(ctx context.Context, id int64) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, id)
	if err != nil {
		return nil, apperr.Unexpected("load trip", err)
	}
	if trip == nil {
		return nil, apperr.NotFound("trip", id)
	}
	return trip, nil
}

// GetUser returns a user by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userByID(ctx, id)
}

// GetUserByEmail returns a user by email.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userByEmail(ctx, email)
}

// ProfileUpdate holds the editable profile fields of a user.
type ProfileUpdate struct {
	Name           string
	Phone          string
	Nationality    string
	Languages      string
	Age            int
	Sex            string
	Bio            string
	Interests      string
	ProfilePicture string
}

// UpdateProfile overwrites the acting user's own profile.
func (s *Service) UpdateProfile(ctx context.Context, actorEmail string, p ProfileUpdate) (*models.User, error) {
	user, err := s.userByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if p.Age < 0 {
		return nil, apperr.InvalidInput("age must not be negative")
	}

	user.Name = p.Name
	user.Phone = p.Phone
	user.Nationality = p.Nationality
	user.Languages = p.Languages
	user.Age = p.Age
	user.Sex = p.Sex
	user.Bio = p.Bio
	user.Interests = p.Interests
	user.ProfilePicture = p.ProfilePicture
	user.UpdatedAt = s.now()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Unexpected("update profile", err)
	}
	return user, nil
}
