package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mmynk/travelbuddy/internal/models"
)

// CreateTrip persists a new trip and its interest associations.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	trip.CreatedAt = now(trip.CreatedAt)
	trip.UpdatedAt = now(trip.UpdatedAt)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx,
		`INSERT INTO trips (location, start_date, end_date, description, created_by, created_at, updated_at)
		 VALUES (:location, :start_date, :end_date, :description, :created_by, :created_at, :updated_at)`,
		trip,
	)
	if err != nil {
		return insertError("trip", err)
	}
	if trip.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}

	if err := insertTripInterests(ctx, tx, trip.ID, trip.InterestIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID, including its interest IDs.
func (s *SQLiteStore) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.GetContext(ctx, trip,
		`SELECT id, location, start_date, end_date, description, created_by, created_at, updated_at
		 FROM trips WHERE id = ?`,
		id,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if err := s.db.SelectContext(ctx, &trip.InterestIDs,
		"SELECT interest_id FROM trip_interests WHERE trip_id = ? ORDER BY interest_id",
		id,
	); err != nil {
		return nil, fmt.Errorf("failed to get trip interests: %w", err)
	}

	return trip, nil
}

// UpdateTrip overwrites the mutable fields of a trip and replaces its interests.
// CreatedBy is never written.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = now(trip.UpdatedAt)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx,
		`UPDATE trips SET location = :location, start_date = :start_date, end_date = :end_date,
			description = :description, updated_at = :updated_at
		 WHERE id = :id`,
		trip,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trip not found: %d", trip.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM trip_interests WHERE trip_id = ?", trip.ID); err != nil {
		return fmt.Errorf("failed to clear trip interests: %w", err)
	}
	if err := insertTripInterests(ctx, tx, trip.ID, trip.InterestIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteTrip removes a trip. Memberships, posts, reviews and interest
// associations are removed by ON DELETE CASCADE.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trip not found: %d", id)
	}
	return nil
}

// ListInterests returns every interest tag ordered by name.
func (s *SQLiteStore) ListInterests(ctx context.Context) ([]*models.Interest, error) {
	var interests []*models.Interest
	if err := s.db.SelectContext(ctx, &interests, "SELECT id, name FROM interests ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return interests, nil
}

func insertTripInterests(ctx context.Context, tx *sqlx.Tx, tripID int64, interestIDs []int64) error {
	for _, interestID := range interestIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO trip_interests (trip_id, interest_id) VALUES (?, ?)",
			tripID, interestID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip interest: %w", err)
		}
	}
	return nil
}
