package models

// Review is a rating left by a user on a post.
type Review struct {
	ID         int64  `db:"id"`
	ReviewerID int64  `db:"reviewer_id"`
	RevieweeID *int64 `db:"reviewee_id"`
	TripID     *int64 `db:"trip_id"`
	PostID     int64  `db:"post_id"`

	// Rating is between MinRating and MaxRating inclusive.
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`

	CreatedAt int64 `db:"created_at"`
}

// Bounds for Review.Rating and User.ReviewScore updates.
const (
	MinRating = 1
	MaxRating = 5
)
