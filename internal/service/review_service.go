package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// ReviewService implements the ReviewService RPC interface.
type ReviewService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewReviewService(core *travel.Service, logger *slog.Logger) *ReviewService {
	return &ReviewService{core: core, logger: logger}
}

// CreateReview reviews a post as the caller.
func (s *ReviewService) CreateReview(ctx context.Context, req *connect.Request[api.CreateReviewRequest]) (*connect.Response[api.CreateReviewResponse], error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	reviewerID := middleware.GetUserID(ctx)
	s.logger.Info("CreateReview request received",
		"post_id", req.Msg.PostID,
		"reviewer_id", reviewerID,
		"rating", req.Msg.Rating,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	review, err := s.core.CreateReview(ctx, travel.ReviewInput{
		ReviewerID: reviewerID,
		PostID:     req.Msg.PostID,
		RevieweeID: req.Msg.RevieweeID,
		Rating:     req.Msg.Rating,
		Comment:    req.Msg.Comment,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "CreateReview", err)
	}
	return connect.NewResponse(&api.CreateReviewResponse{Review: toAPIReview(review)}), nil
}

// SetTripUserRating overwrites the review score of a member of a trip.
func (s *ReviewService) SetTripUserRating(ctx context.Context, req *connect.Request[api.SetTripUserRatingRequest]) (*connect.Response[api.SetTripUserRatingResponse], error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("SetTripUserRating request received",
		"trip_id", req.Msg.TripID,
		"user_id", req.Msg.UserID,
		"rating", req.Msg.Rating,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.core.SetTripUserRating(ctx, req.Msg.TripID, req.Msg.UserID, req.Msg.Rating)
	if err != nil {
		return nil, toConnectError(s.logger, "SetTripUserRating", err)
	}
	return connect.NewResponse(&api.SetTripUserRatingResponse{User: toAPIUser(user)}), nil
}
