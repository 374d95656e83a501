package travel

import (
	"context"
	"strings"
	"time"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
)

// TripInput holds the caller-editable fields of a trip.
type TripInput struct {
	Location    string
	StartDate   string
	EndDate     string
	Description string
	InterestIDs []int64
}

// validate checks required fields and that the trip does not end before it starts.
func (in TripInput) validate() error {
	if strings.TrimSpace(in.Location) == "" {
		return apperr.InvalidInput("location is required")
	}
	start, err := time.Parse(models.DateLayout, in.StartDate)
	if err != nil {
		return apperr.InvalidInput("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(models.DateLayout, in.EndDate)
	if err != nil {
		return apperr.InvalidInput("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return apperr.InvalidInput("end_date %s precedes start_date %s", in.EndDate, in.StartDate)
	}
	return nil
}

// checkInterests fails with NotFound when any ID is not a known interest.
func (s *Service) checkInterests(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	interests, err := s.store.ListInterests(ctx)
	if err != nil {
		return apperr.Unexpected("list interests", err)
	}
	known := make(map[int64]bool, len(interests))
	for _, i := range interests {
		known[i.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return apperr.NotFound("interest", id)
		}
	}
	return nil
}

// CreateTrip creates a trip owned by the acting user. The owner is enrolled
// as an approved organizer.
func (s *Service) CreateTrip(ctx context.Context, actorEmail string, in TripInput) (*models.Trip, error) {
	owner, err := s.userByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.checkInterests(ctx, in.InterestIDs); err != nil {
		return nil, err
	}

	ts := s.now()
	trip := &models.Trip{
		Location:    strings.TrimSpace(in.Location),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedBy:   owner.ID,
		InterestIDs: in.InterestIDs,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, apperr.Unexpected("create trip", err)
	}

	organizer := &models.Membership{
		UserID:    owner.ID,
		TripID:    trip.ID,
		Role:      membership.RoleOrganizer,
		Status:    membership.StatusApproved,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.store.CreateMembership(ctx, organizer); err != nil {
		return nil, apperr.Unexpected("enroll organizer", err)
	}
	s.observe("", organizer.Status)

	s.logger.Info("Trip created", "trip_id", trip.ID, "owner_id", owner.ID, "location", trip.Location)
	return trip, nil
}

// GetTrip returns a trip by ID.
func (s *Service) GetTrip(ctx context.Context, tripID int64) (*models.Trip, error) {
	return s.tripByID(ctx, tripID)
}

// ListInterests returns every interest tag.
func (s *Service) ListInterests(ctx context.Context) ([]*models.Interest, error) {
	interests, err := s.store.ListInterests(ctx)
	if err != nil {
		return nil, apperr.Unexpected("list interests", err)
	}
	return interests, nil
}

// AuthorizeMutation resolves the trip and the acting user and fails with
// Forbidden unless the actor owns the trip.
func (s *Service) AuthorizeMutation(ctx context.Context, tripID int64, actorEmail string) (*models.Trip, *models.User, error) {
	trip, err := s.tripByID(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	actor, err := s.userByEmail(ctx, actorEmail)
	if err != nil {
		return nil, nil, err
	}
	if trip.CreatedBy != actor.ID {
		return nil, nil, apperr.Forbidden("only the trip owner may modify trip %d", trip.ID)
	}
	return trip, actor, nil
}

// UpdateTrip overwrites a trip's editable fields. Only the owner may do so.
func (s *Service) UpdateTrip(ctx context.Context, tripID int64, actorEmail string, in TripInput) (*models.Trip, error) {
	trip, _, err := s.AuthorizeMutation(ctx, tripID, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.checkInterests(ctx, in.InterestIDs); err != nil {
		return nil, err
	}

	trip.Location = strings.TrimSpace(in.Location)
	trip.StartDate = in.StartDate
	trip.EndDate = in.EndDate
	trip.Description = in.Description
	trip.InterestIDs = in.InterestIDs
	trip.UpdatedAt = s.now()

	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		return nil, apperr.Unexpected("update trip", err)
	}

	s.logger.Info("Trip updated", "trip_id", trip.ID)
	return trip, nil
}

// DeleteTrip removes a trip owned by the actor. Memberships, posts and
// reviews of the trip are removed with it.
func (s *Service) DeleteTrip(ctx context.Context, tripID int64, actorEmail string) error {
	trip, actor, err := s.AuthorizeMutation(ctx, tripID, actorEmail)
	if err != nil {
		return err
	}

	if err := s.store.DeleteTrip(ctx, trip.ID); err != nil {
		return apperr.Unexpected("delete trip", err)
	}

	s.logger.Info("Trip deleted", "trip_id", trip.ID, "actor_id", actor.ID)
	return nil
}

// AddTripImage attaches a picture to a trip. Only the owner may do so.
func (s *Service) AddTripImage(ctx context.Context, tripID int64, actorEmail string, data []byte, filename string) (*models.TripImage, error) {
	trip, _, err := s.AuthorizeMutation(ctx, tripID, actorEmail)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperr.InvalidInput("image is empty")
	}

	path, err := s.storeImage(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	img := &models.TripImage{
		TripID:    trip.ID,
		ImagePath: path,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateTripImage(ctx, img); err != nil {
		return nil, apperr.Unexpected("create trip image", err)
	}

	s.logger.Info("Trip image added", "trip_id", trip.ID, "image_id", img.ID)
	return img, nil
}

// ListTripImages returns the pictures of a trip, oldest first.
func (s *Service) ListTripImages(ctx context.Context, tripID int64) ([]*models.TripImage, error) {
	if _, err := s.tripByID(ctx, tripID); err != nil {
		return nil, err
	}
	images, err := s.store.ListTripImagesByTrip(ctx, tripID)
	if err != nil {
		return nil, apperr.Unexpected("list trip images", err)
	}
	return images, nil
}
