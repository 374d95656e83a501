package travel

import (
	"context"
	"errors"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage"
)

// PostInput describes a new post. Image is optional.
type PostInput struct {
	Caption       string
	Image         []byte
	ImageFilename string
}

// CreatePost shares content on a trip. The author must be an approved member.
func (s *Service) CreatePost(ctx context.Context, actorEmail string, tripID int64, in PostInput) (*models.Post, error) {
	author, err := s.userByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	trip, err := s.tripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	m, err := s.store.GetMembershipByUserAndTrip(ctx, author.ID, trip.ID)
	if err != nil {
		return nil, apperr.Unexpected("load membership", err)
	}
	if m == nil || m.Status != membership.StatusApproved {
		return nil, apperr.Forbidden("only approved members may post on trip %d", trip.ID)
	}
	if in.Caption == "" && len(in.Image) == 0 {
		return nil, apperr.InvalidInput("a post needs a caption or an image")
	}

	ts := s.now()
	post := &models.Post{
		MembershipID: m.ID,
		Caption:      in.Caption,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if len(in.Image) > 0 {
		if post.ImagePath, err = s.storeImage(ctx, in.Image, in.ImageFilename); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, apperr.Unexpected("create post", err)
	}

	s.logger.Info("Post created", "post_id", post.ID, "trip_id", trip.ID, "author_id", author.ID)
	return post, nil
}

// storeImage writes an uploaded image to the blob store and returns its path.
func (s *Service) storeImage(ctx context.Context, data []byte, filename string) (string, error) {
	if s.blobs == nil {
		return "", apperr.InvalidInput("image uploads are disabled")
	}
	path, err := s.blobs.Put(ctx, data, filename)
	if errors.Is(err, storage.ErrUnsupportedBlob) {
		return "", apperr.Wrap(apperr.KindInvalidInput, err)
	}
	if err != nil {
		return "", apperr.Unexpected("store image", err)
	}
	return path, nil
}

// ListTripPosts returns the posts of a trip, newest first.
func (s *Service) ListTripPosts(ctx context.Context, tripID int64) ([]*models.Post, error) {
	if _, err := s.tripByID(ctx, tripID); err != nil {
		return nil, err
	}
	posts, err := s.store.ListPostsByTrip(ctx, tripID)
	if err != nil {
		return nil, apperr.Unexpected("list posts", err)
	}
	return posts, nil
}
