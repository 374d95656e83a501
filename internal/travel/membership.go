package travel

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage"
)

// RequestJoin records userEmail's request to join a trip.
//
// A repeated request for the same user and trip overwrites the status of the
// existing membership instead of creating a second one. That includes the
// case where a concurrent request inserted the row between our lookup and
// our insert.
func (s *Service) RequestJoin(ctx context.Context, userEmail string, tripID int64, status string) (*models.Membership, error) {
	user, err := s.userByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	trip, err := s.tripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	requested, err := membership.ParseRequestStatus(status)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, err)
	}
	if trip.CreatedBy == user.ID {
		return nil, apperr.Conflict("trip owner cannot request to join their own trip")
	}

	existing, err := s.store.GetMembershipByUserAndTrip(ctx, user.ID, trip.ID)
	if err != nil {
		return nil, apperr.Unexpected("load membership", err)
	}
	if existing != nil {
		return s.rerequest(ctx, existing, trip, user, requested)
	}

	m := &models.Membership{
		UserID:    user.ID,
		TripID:    trip.ID,
		Role:      membership.RoleParticipant,
		Status:    requested,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	err = s.store.CreateMembership(ctx, m)
	if errors.Is(err, storage.ErrDuplicate) {
		// Lost the insert race; apply this request to the winning row.
		existing, lookupErr := s.store.GetMembershipByUserAndTrip(ctx, user.ID, trip.ID)
		if lookupErr != nil {
			return nil, apperr.Unexpected("load membership", lookupErr)
		}
		if existing == nil {
			return nil, apperr.Unexpected("create membership", err)
		}
		return s.rerequest(ctx, existing, trip, user, requested)
	}
	if err != nil {
		return nil, apperr.Unexpected("create membership", err)
	}

	s.logger.Info("Membership requested",
		"membership_id", m.ID,
		"user_id", user.ID,
		"trip_id", trip.ID,
		"status", m.Status,
	)
	s.observe("", m.Status)
	if m.Status == membership.StatusPending {
		s.emit(ctx, trip.CreatedBy, fmt.Sprintf("%s asked to join your trip to %s", user.Username, trip.Location))
	}

	return m, nil
}

// rerequest overwrites an existing membership with a requester-side status.
func (s *Service) rerequest(ctx context.Context, m *models.Membership, trip *models.Trip, user *models.User, status membership.Status) (*models.Membership, error) {
	prev := m.Status
	if prev == status {
		return m, nil
	}

	m.Status = status
	m.UpdatedAt = s.now()
	if err := s.store.UpdateMembershipStatus(ctx, m.ID, m.Status, m.UpdatedAt); err != nil {
		return nil, apperr.Unexpected("update membership", err)
	}

	s.logger.Info("Membership re-requested",
		"membership_id", m.ID,
		"from", prev,
		"to", status,
	)
	s.observe(prev, status)
	switch status {
	case membership.StatusPending:
		s.emit(ctx, trip.CreatedBy, fmt.Sprintf("%s asked to join your trip to %s", user.Username, trip.Location))
	case membership.StatusCancelled:
		s.emit(ctx, trip.CreatedBy, fmt.Sprintf("%s withdrew from your trip to %s", user.Username, trip.Location))
	}

	return m, nil
}

// UpdateStatus applies a decision to the membership with the given ID.
func (s *Service) UpdateStatus(ctx context.Context, actorEmail string, membershipID int64, newStatus string) (*models.Membership, error) {
	m, err := s.store.GetMembership(ctx, membershipID)
	if err != nil {
		return nil, apperr.Unexpected("load membership", err)
	}
	if m == nil {
		return nil, apperr.NotFound("membership", membershipID)
	}
	return s.decide(ctx, actorEmail, m, newStatus)
}

// UpdateStatusByUserAndTrip applies a decision to the membership of userID on tripID.
func (s *Service) UpdateStatusByUserAndTrip(ctx context.Context, actorEmail string, userID, tripID int64, newStatus string) (*models.Membership, error) {
	m, err := s.store.GetMembershipByUserAndTrip(ctx, userID, tripID)
	if err != nil {
		return nil, apperr.Unexpected("load membership", err)
	}
	if m == nil {
		return nil, apperr.NotFound("membership", fmt.Sprintf("user %d on trip %d", userID, tripID))
	}
	return s.decide(ctx, actorEmail, m, newStatus)
}

// decide moves m to newStatus on behalf of the actor.
//
// The trip owner may approve, reject or cancel a membership. The member may
// only cancel their own. The owner's organizer membership is fixed for the
// life of the trip. Transitions outside the membership table fail.
func (s *Service) decide(ctx context.Context, actorEmail string, m *models.Membership, newStatus string) (*models.Membership, error) {
	to, err := membership.ParseStatus(newStatus)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, err)
	}

	actor, err := s.userByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	trip, err := s.tripByID(ctx, m.TripID)
	if err != nil {
		return nil, err
	}

	isOwner := trip.CreatedBy == actor.ID
	isMember := m.UserID == actor.ID
	if !isOwner && !(isMember && to == membership.StatusCancelled) {
		return nil, apperr.Forbidden("user %d may not set membership %d to %s", actor.ID, m.ID, to)
	}
	if m.UserID == trip.CreatedBy {
		return nil, apperr.Forbidden("the organizer membership of trip %d cannot be changed", trip.ID)
	}

	if err := membership.ValidateTransition(m.Status, to); err != nil {
		return nil, apperr.Wrap(apperr.KindConflict, err)
	}
	if m.Status == to {
		return m, nil
	}

	prev := m.Status
	m.Status = to
	m.UpdatedAt = s.now()
	if err := s.store.UpdateMembershipStatus(ctx, m.ID, m.Status, m.UpdatedAt); err != nil {
		return nil, apperr.Unexpected("update membership", err)
	}

	s.logger.Info("Membership status changed",
		"membership_id", m.ID,
		"actor_id", actor.ID,
		"from", prev,
		"to", to,
	)
	s.observe(prev, to)

	if isMember {
		s.emit(ctx, trip.CreatedBy, fmt.Sprintf("%s left your trip to %s", actor.Username, trip.Location))
	} else {
		s.emit(ctx, m.UserID, fmt.Sprintf("Your membership of the trip to %s is now %s", trip.Location, to))
	}

	return m, nil
}

// ListRequestsForTrip summarizes every membership on a trip.
// Memberships whose user cannot be resolved are skipped.
func (s *Service) ListRequestsForTrip(ctx context.Context, tripID int64) ([]models.TripRequest, error) {
	if _, err := s.tripByID(ctx, tripID); err != nil {
		return nil, err
	}

	memberships, err := s.store.ListMembershipsByTrip(ctx, tripID)
	if err != nil {
		return nil, apperr.Unexpected("list memberships", err)
	}

	requests := make([]models.TripRequest, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.store.GetUserByID(ctx, m.UserID)
		if err != nil {
			return nil, apperr.Unexpected("load user", err)
		}
		if user == nil {
			s.logger.Warn("Skipping membership with missing user", "membership_id", m.ID, "user_id", m.UserID)
			continue
		}
		requests = append(requests, models.TripRequest{
			MembershipID: m.ID,
			Username:     user.Username,
			Status:       string(m.Status),
			UserID:       user.ID,
		})
	}

	return requests, nil
}

// ListTripsForUser lists the trips a user holds a membership on.
// Memberships whose trip cannot be resolved are dropped.
func (s *Service) ListTripsForUser(ctx context.Context, email string) ([]models.UserTrip, error) {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	memberships, err := s.store.ListMembershipsByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Unexpected("list memberships", err)
	}

	trips := make([]models.UserTrip, 0, len(memberships))
	for _, m := range memberships {
		trip, err := s.store.GetTrip(ctx, m.TripID)
		if err != nil {
			return nil, apperr.Unexpected("load trip", err)
		}
		if trip == nil {
			continue
		}
		trips = append(trips, models.UserTrip{
			TripID:       trip.ID,
			Location:     trip.Location,
			StartDate:    trip.StartDate,
			EndDate:      trip.EndDate,
			Description:  trip.Description,
			MembershipID: m.ID,
			Status:       string(m.Status),
			Role:         m.Role,
		})
	}

	return trips, nil
}
