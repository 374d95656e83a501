package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/models"
)

// CreateTripImage records an image attached to a trip.
func (s *SQLiteStore) CreateTripImage(ctx context.Context, img *models.TripImage) error {
	img.CreatedAt = now(img.CreatedAt)

	res, err := s.db.NamedExecContext(ctx,
		`INSERT INTO trip_images (trip_id, image_path, created_at)
		 VALUES (:trip_id, :image_path, :created_at)`,
		img,
	)
	if err != nil {
		return insertError("trip image", err)
	}
	if img.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read trip image id: %w", err)
	}
	return nil
}

// ListTripImagesByTrip returns the images of a trip, oldest first.
func (s *SQLiteStore) ListTripImagesByTrip(ctx context.Context, tripID int64) ([]*models.TripImage, error) {
	var images []*models.TripImage
	err := s.db.SelectContext(ctx, &images,
		"SELECT id, trip_id, image_path, created_at FROM trip_images WHERE trip_id = ? ORDER BY id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip images: %w", err)
	}
	return images, nil
}
