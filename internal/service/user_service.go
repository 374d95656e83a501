package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// UserService implements the UserService RPC interface.
type UserService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewUserService(core *travel.Service, logger *slog.Logger) *UserService {
	return &UserService{core: core, logger: logger}
}

// GetUser returns any user's public profile.
func (s *UserService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	s.logger.Info("GetUser request received", "user_id", req.Msg.UserID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.core.GetUser(ctx, req.Msg.UserID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetUser", err)
	}
	return connect.NewResponse(&api.GetUserResponse{User: toAPIUser(user)}), nil
}

// UpdateProfile overwrites the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateProfile request received", "email", email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	m := req.Msg
	user, err := s.core.UpdateProfile(ctx, email, travel.ProfileUpdate{
		Name:           m.Name,
		Phone:          m.Phone,
		Nationality:    m.Nationality,
		Languages:      m.Languages,
		Age:            m.Age,
		Sex:            m.Sex,
		Bio:            m.Bio,
		Interests:      m.Interests,
		ProfilePicture: m.ProfilePicture,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateProfile", err)
	}

	s.logger.Info("Profile updated", "user_id", user.ID)
	return connect.NewResponse(&api.UpdateProfileResponse{User: toAPIUser(user)}), nil
}

// ListUserTrips lists the trips of the user with the given email, or of the
// caller when none is given.
func (s *UserService) ListUserTrips(ctx context.Context, req *connect.Request[api.ListUserTripsRequest]) (*connect.Response[api.ListUserTripsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	email := req.Msg.Email
	if email == "" {
		var err error
		if email, err = caller(ctx); err != nil {
			return nil, err
		}
	}
	s.logger.Info("ListUserTrips request received", "email", email)

	trips, err := s.core.ListTripsForUser(ctx, email)
	if err != nil {
		return nil, toConnectError(s.logger, "ListUserTrips", err)
	}

	out := make([]*api.UserTrip, len(trips))
	for i, t := range trips {
		out[i] = &api.UserTrip{
			TripID:       t.TripID,
			Location:     t.Location,
			StartDate:    t.StartDate,
			EndDate:      t.EndDate,
			Description:  t.Description,
			MembershipID: t.MembershipID,
			Status:       t.Status,
			Role:         t.Role,
		}
	}

	s.logger.Info("ListUserTrips successful", "count", len(out))
	return connect.NewResponse(&api.ListUserTripsResponse{Trips: out}), nil
}
