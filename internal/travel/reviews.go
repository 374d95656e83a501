package travel

import (
	"context"
	"errors"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage"
)

// ReviewInput describes a new review.
type ReviewInput struct {
	ReviewerID int64
	PostID     int64
	// RevieweeID optionally names the user being rated. Their review score
	// is recomputed from all reviews naming them.
	RevieweeID *int64
	Rating     int
	Comment    string
}

func validateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return apperr.InvalidInput("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	return nil
}

// CreateReview records a review of a post. Each reviewer may review a post
// once, and only approved members of the post's trip may review it. A named
// reviewee must be an approved member of that trip as well.
//
// The review is kept even when the reviewee's score cannot be refreshed; the
// score is recomputed from every review on the next successful review.
func (s *Service) CreateReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	if _, err := s.userByID(ctx, in.ReviewerID); err != nil {
		return nil, err
	}
	post, err := s.store.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, apperr.Unexpected("load post", err)
	}
	if post == nil {
		return nil, apperr.NotFound("post", in.PostID)
	}
	if in.RevieweeID != nil {
		if *in.RevieweeID == in.ReviewerID {
			return nil, apperr.InvalidInput("users cannot review themselves")
		}
		if _, err := s.userByID(ctx, *in.RevieweeID); err != nil {
			return nil, err
		}
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	m, err := s.store.GetMembership(ctx, post.MembershipID)
	if err != nil {
		return nil, apperr.Unexpected("load membership", err)
	}
	if m == nil {
		return nil, apperr.NotFound("trip of post", post.ID)
	}
	if err := s.requireApprovedMember(ctx, in.ReviewerID, m.TripID); err != nil {
		return nil, err
	}
	if in.RevieweeID != nil {
		if err := s.requireApprovedMember(ctx, *in.RevieweeID, m.TripID); err != nil {
			return nil, err
		}
	}

	tripID := m.TripID
	review := &models.Review{
		ReviewerID: in.ReviewerID,
		RevieweeID: in.RevieweeID,
		TripID:     &tripID,
		PostID:     post.ID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  s.now(),
	}

	err = s.store.CreateReview(ctx, review)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, apperr.Conflict("user %d already reviewed post %d", in.ReviewerID, in.PostID)
	}
	if err != nil {
		return nil, apperr.Unexpected("create review", err)
	}

	s.logger.Info("Review created", "review_id", review.ID, "post_id", post.ID, "rating", review.Rating)

	if in.RevieweeID != nil {
		if _, err := s.recomputeScore(ctx, *in.RevieweeID); err != nil {
			s.logger.Warn("Failed to refresh review score",
				"review_id", review.ID,
				"user_id", *in.RevieweeID,
				"error", err,
				"cause", errorCause(err),
			)
		}
	}
	return review, nil
}

// requireApprovedMember fails with Forbidden unless userID holds an approved
// membership on tripID.
func (s *Service) requireApprovedMember(ctx context.Context, userID, tripID int64) error {
	m, err := s.store.GetMembershipByUserAndTrip(ctx, userID, tripID)
	if err != nil {
		return apperr.Unexpected("load membership", err)
	}
	if m == nil || m.Status != membership.StatusApproved {
		return apperr.Forbidden("user %d is not an approved member of trip %d", userID, tripID)
	}
	return nil
}

// recomputeScore sets a user's review score to the mean rating of the
// reviews naming them.
func (s *Service) recomputeScore(ctx context.Context, userID int64) (*models.User, error) {
	reviews, err := s.store.ListReviewsByReviewee(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected("list reviews", err)
	}
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ReviewScore = averageRating(reviews)
	user.UpdatedAt = s.now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Unexpected("update review score", err)
	}
	return user, nil
}

func averageRating(reviews []*models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// SetTripUserRating overwrites the review score of userID, who must be a
// member of the trip.
func (s *Service) SetTripUserRating(ctx context.Context, tripID, userID int64, rating int) (*models.User, error) {
	memberships, err := s.store.ListMembershipsByTrip(ctx, tripID)
	if err != nil {
		return nil, apperr.Unexpected("list memberships", err)
	}
	if len(memberships) == 0 {
		return nil, apperr.NotFound("memberships for trip", tripID)
	}

	isMember := false
	for _, m := range memberships {
		if m.UserID == userID {
			isMember = true
			break
		}
	}
	if !isMember {
		return nil, apperr.NotFound("member of trip", userID)
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.ReviewScore = float64(rating)
	user.UpdatedAt = s.now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Unexpected("update review score", err)
	}

	s.logger.Info("Review score set", "trip_id", tripID, "user_id", userID, "score", user.ReviewScore)
	return user, nil
}
