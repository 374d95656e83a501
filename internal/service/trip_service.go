package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// TripService implements the TripService RPC interface.
type TripService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewTripService(core *travel.Service, logger *slog.Logger) *TripService {
	return &TripService{core: core, logger: logger}
}

// CreateTrip creates a trip owned by the caller.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateTrip request received",
		"location", req.Msg.Location,
		"start_date", req.Msg.StartDate,
		"end_date", req.Msg.EndDate,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.core.CreateTrip(ctx, email, travel.TripInput{
		Location:    req.Msg.Location,
		StartDate:   req.Msg.StartDate,
		EndDate:     req.Msg.EndDate,
		Description: req.Msg.Description,
		InterestIDs: req.Msg.InterestIDs,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "CreateTrip", err)
	}

	return connect.NewResponse(&api.CreateTripResponse{Trip: toAPITrip(trip)}), nil
}

// GetTrip returns a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	s.logger.Info("GetTrip request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.core.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetTrip", err)
	}
	return connect.NewResponse(&api.GetTripResponse{Trip: toAPITrip(trip)}), nil
}

// UpdateTrip overwrites the fields of a trip the caller owns.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateTrip request received", "trip_id", req.Msg.TripID, "email", email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.core.UpdateTrip(ctx, req.Msg.TripID, email, travel.TripInput{
		Location:    req.Msg.Location,
		StartDate:   req.Msg.StartDate,
		EndDate:     req.Msg.EndDate,
		Description: req.Msg.Description,
		InterestIDs: req.Msg.InterestIDs,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "UpdateTrip", err)
	}
	return connect.NewResponse(&api.UpdateTripResponse{Trip: toAPITrip(trip)}), nil
}

// DeleteTrip removes a trip the caller owns.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteTrip request received", "trip_id", req.Msg.TripID, "email", email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.core.DeleteTrip(ctx, req.Msg.TripID, email); err != nil {
		return nil, toConnectError(s.logger, "DeleteTrip", err)
	}
	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// ListInterests returns every interest tag trips can carry.
func (s *TripService) ListInterests(ctx context.Context, req *connect.Request[api.ListInterestsRequest]) (*connect.Response[api.ListInterestsResponse], error) {
	interests, err := s.core.ListInterests(ctx)
	if err != nil {
		return nil, toConnectError(s.logger, "ListInterests", err)
	}

	out := make([]*api.Interest, len(interests))
	for i, in := range interests {
		out[i] = &api.Interest{ID: in.ID, Name: in.Name}
	}
	return connect.NewResponse(&api.ListInterestsResponse{Interests: out}), nil
}

// AddTripImage attaches a picture to a trip the caller owns.
func (s *TripService) AddTripImage(ctx context.Context, req *connect.Request[api.AddTripImageRequest]) (*connect.Response[api.AddTripImageResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("AddTripImage request received",
		"trip_id", req.Msg.TripID,
		"filename", req.Msg.Filename,
		"image_bytes", len(req.Msg.Image),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	img, err := s.core.AddTripImage(ctx, req.Msg.TripID, email, req.Msg.Image, req.Msg.Filename)
	if err != nil {
		return nil, toConnectError(s.logger, "AddTripImage", err)
	}
	return connect.NewResponse(&api.AddTripImageResponse{Image: toAPITripImage(img)}), nil
}

// ListTripImages returns a trip's pictures, oldest first.
func (s *TripService) ListTripImages(ctx context.Context, req *connect.Request[api.ListTripImagesRequest]) (*connect.Response[api.ListTripImagesResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	images, err := s.core.ListTripImages(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListTripImages", err)
	}

	out := make([]*api.TripImage, len(images))
	for i, img := range images {
		out[i] = toAPITripImage(img)
	}
	return connect.NewResponse(&api.ListTripImagesResponse{Images: out}), nil
}
