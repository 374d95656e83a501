package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
)

const membershipColumns = "id, user_id, trip_id, role, status, created_at, updated_at"

// CreateMembership inserts a membership. A second row for the same user and
// trip violates UNIQUE(user_id, trip_id) and wraps storage.ErrDuplicate.
func (s *SQLiteStore) CreateMembership(ctx context.Context, m *models.Membership) error {
	m.CreatedAt = now(m.CreatedAt)
	m.UpdatedAt = now(m.UpdatedAt)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO memberships (user_id, trip_id, role, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.UserID, m.TripID, m.Role, string(m.Status), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return insertError("membership", err)
	}

	if m.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read membership id: %w", err)
	}
	return nil
}

// GetMembership retrieves a membership by ID.
func (s *SQLiteStore) GetMembership(ctx context.Context, id int64) (*models.Membership, error) {
	m := &models.Membership{}
	err := s.db.GetContext(ctx, m,
		"SELECT "+membershipColumns+" FROM memberships WHERE id = ?", id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// GetMembershipByUserAndTrip retrieves the membership of a user on a trip.
func (s *SQLiteStore) GetMembershipByUserAndTrip(ctx context.Context, userID, tripID int64) (*models.Membership, error) {
	m := &models.Membership{}
	err := s.db.GetContext(ctx, m,
		"SELECT "+membershipColumns+" FROM memberships WHERE user_id = ? AND trip_id = ?",
		userID, tripID,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership by user and trip: %w", err)
	}
	return m, nil
}

// ListMembershipsByTrip returns the memberships of a trip in creation order.
func (s *SQLiteStore) ListMembershipsByTrip(ctx context.Context, tripID int64) ([]*models.Membership, error) {
	var memberships []*models.Membership
	err := s.db.SelectContext(ctx, &memberships,
		"SELECT "+membershipColumns+" FROM memberships WHERE trip_id = ? ORDER BY id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships by trip: %w", err)
	}
	return memberships, nil
}

// ListMembershipsByUser returns the memberships of a user in creation order.
func (s *SQLiteStore) ListMembershipsByUser(ctx context.Context, userID int64) ([]*models.Membership, error) {
	var memberships []*models.Membership
	err := s.db.SelectContext(ctx, &memberships,
		"SELECT "+membershipColumns+" FROM memberships WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships by user: %w", err)
	}
	return memberships, nil
}

// UpdateMembershipStatus overwrites the status of one membership.
func (s *SQLiteStore) UpdateMembershipStatus(ctx context.Context, id int64, status membership.Status, updatedAt int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE memberships SET status = ?, updated_at = ? WHERE id = ?",
		string(status), now(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("membership not found: %d", id)
	}
	return nil
}
