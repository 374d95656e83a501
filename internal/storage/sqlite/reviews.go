package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/models"
)

// CreateReview persists a new review. A reviewer reviewing the same post
// twice violates UNIQUE(reviewer_id, post_id).
func (s *SQLiteStore) CreateReview(ctx context.Context, review *models.Review) error {
	review.CreatedAt = now(review.CreatedAt)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (reviewer_id, reviewee_id, trip_id, post_id, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ReviewerID, nullableID(review.RevieweeID), nullableID(review.TripID),
		review.PostID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		return insertError("review", err)
	}
	if review.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read review id: %w", err)
	}
	return nil
}

// ListReviewsByReviewee returns all reviews naming userID as the reviewee.
func (s *SQLiteStore) ListReviewsByReviewee(ctx context.Context, userID int64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := s.db.SelectContext(ctx, &reviews,
		`SELECT id, reviewer_id, reviewee_id, trip_id, post_id, rating, comment, created_at
		 FROM reviews WHERE reviewee_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by reviewee: %w", err)
	}
	return reviews, nil
}
