package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

var errMembershipTarget = errors.New("membership_id or both user_id and trip_id are required")

// MembershipService implements the MembershipService RPC interface.
type MembershipService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewMembershipService(core *travel.Service, logger *slog.Logger) *MembershipService {
	return &MembershipService{core: core, logger: logger}
}

// RequestJoin asks to join a trip as the caller.
func (s *MembershipService) RequestJoin(ctx context.Context, req *connect.Request[api.RequestJoinRequest]) (*connect.Response[api.RequestJoinResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("RequestJoin request received", "trip_id", req.Msg.TripID, "email", email, "status", req.Msg.Status)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	m, err := s.core.RequestJoin(ctx, email, req.Msg.TripID, req.Msg.Status)
	if err != nil {
		return nil, toConnectError(s.logger, "RequestJoin", err)
	}
	return connect.NewResponse(&api.RequestJoinResponse{Membership: toAPIMembership(m)}), nil
}

// UpdateMembershipStatus decides a membership on behalf of the caller.
func (s *MembershipService) UpdateMembershipStatus(ctx context.Context, req *connect.Request[api.UpdateMembershipStatusRequest]) (*connect.Response[api.UpdateMembershipStatusResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	s.logger.Info("UpdateMembershipStatus request received",
		"membership_id", msg.MembershipID,
		"user_id", msg.UserID,
		"trip_id", msg.TripID,
		"status", msg.Status,
	)

	if err := validateRequest(msg); err != nil {
		return nil, err
	}

	var m *models.Membership
	switch {
	case msg.MembershipID > 0:
		m, err = s.core.UpdateStatus(ctx, email, msg.MembershipID, msg.Status)
	case msg.UserID > 0 && msg.TripID > 0:
		m, err = s.core.UpdateStatusByUserAndTrip(ctx, email, msg.UserID, msg.TripID, msg.Status)
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, errMembershipTarget)
	}
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateMembershipStatus", err)
	}
	return connect.NewResponse(&api.UpdateMembershipStatusResponse{Membership: toAPIMembership(m)}), nil
}

// ListTripRequests lists every membership on a trip with the requester's username.
func (s *MembershipService) ListTripRequests(ctx context.Context, req *connect.Request[api.ListTripRequestsRequest]) (*connect.Response[api.ListTripRequestsResponse], error) {
	s.logger.Info("ListTripRequests request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	requests, err := s.core.ListRequestsForTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListTripRequests", err)
	}

	out := make([]*api.TripRequest, len(requests))
	for i, r := range requests {
		out[i] = &api.TripRequest{
			MembershipID: r.MembershipID,
			UserID:       r.UserID,
			Username:     r.Username,
			Status:       r.Status,
		}
	}

	s.logger.Info("ListTripRequests successful", "trip_id", req.Msg.TripID, "count", len(out))
	return connect.NewResponse(&api.ListTripRequestsResponse{Requests: out}), nil
}
