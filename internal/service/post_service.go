package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// PostService implements the PostService RPC interface.
type PostService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewPostService(core *travel.Service, logger *slog.Logger) *PostService {
	return &PostService{core: core, logger: logger}
}

// CreatePost shares a post on a trip the caller is an approved member of.
func (s *PostService) CreatePost(ctx context.Context, req *connect.Request[api.CreatePostRequest]) (*connect.Response[api.CreatePostResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreatePost request received",
		"trip_id", req.Msg.TripID,
		"image_bytes", len(req.Msg.Image),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	post, err := s.core.CreatePost(ctx, email, req.Msg.TripID, travel.PostInput{
		Caption:       req.Msg.Caption,
		Image:         req.Msg.Image,
		ImageFilename: req.Msg.ImageFilename,
	})
	if err != nil {
		return nil, toConnectError(s.logger, "CreatePost", err)
	}
	return connect.NewResponse(&api.CreatePostResponse{Post: toAPIPost(post)}), nil
}

// ListTripPosts returns a trip's posts, newest first.
func (s *PostService) ListTripPosts(ctx context.Context, req *connect.Request[api.ListTripPostsRequest]) (*connect.Response[api.ListTripPostsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	posts, err := s.core.ListTripPosts(ctx, req.Msg.TripID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListTripPosts", err)
	}

	out := make([]*api.Post, len(posts))
	for i, p := range posts {
		out[i] = toAPIPost(p)
	}
	return connect.NewResponse(&api.ListTripPostsResponse{Posts: out}), nil
}
