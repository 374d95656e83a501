package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/models"
)

// CreatePost persists a new post.
func (s *SQLiteStore) CreatePost(ctx context.Context, post *models.Post) error {
	post.CreatedAt = now(post.CreatedAt)
	post.UpdatedAt = now(post.UpdatedAt)

	res, err := s.db.NamedExecContext(ctx,
		`INSERT INTO posts (membership_id, caption, image_path, created_at, updated_at)
		 VALUES (:membership_id, :caption, :image_path, :created_at, :updated_at)`,
		post,
	)
	if err != nil {
		return insertError("post", err)
	}
	if post.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read post id: %w", err)
	}
	return nil
}

// GetPost retrieves a post by ID.
func (s *SQLiteStore) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := s.db.GetContext(ctx, post,
		"SELECT id, membership_id, caption, image_path, created_at, updated_at FROM posts WHERE id = ?",
		id,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListPostsByTrip returns every post made through a membership of the trip, newest first.
func (s *SQLiteStore) ListPostsByTrip(ctx context.Context, tripID int64) ([]*models.Post, error) {
	var posts []*models.Post
	err := s.db.SelectContext(ctx, &posts,
		`SELECT p.id, p.membership_id, p.caption, p.image_path, p.created_at, p.updated_at
		 FROM posts p JOIN memberships m ON p.membership_id = m.id
		 WHERE m.trip_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by trip: %w", err)
	}
	return posts, nil
}
