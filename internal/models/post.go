package models

// Post is content shared by a member of a trip.
type Post struct {
	ID int64 `db:"id"`

	// MembershipID ties the post to the author's participation in a trip.
	MembershipID int64 `db:"membership_id"`

	Caption string `db:"caption"`

	// ImagePath is the blob store path, empty when the post has no image.
	ImagePath string `db:"image_path"`

	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}
