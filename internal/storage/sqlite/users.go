package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/models"
)

const userColumns = `id, username, email, password_hash, name, phone, nationality, languages,
	age, sex, bio, interests, profile_picture, review_score, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = now(user.CreatedAt)
	user.UpdatedAt = now(user.UpdatedAt)

	query := `
		INSERT INTO users (username, email, password_hash, name, phone, nationality, languages,
			age, sex, bio, interests, profile_picture, review_score, created_at, updated_at)
		VALUES (:username, :email, :password_hash, :name, :phone, :nationality, :languages,
			:age, :sex, :bio, :interests, :profile_picture, :review_score, :created_at, :updated_at)
	`

	res, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return insertError("user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByUsername retrieves a user by their username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, "username", username)
}

// getUser looks a user up by one of its indexed columns.
func (s *SQLiteStore) getUser(ctx context.Context, column string, value any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ?`

	user := &models.User{}
	err := s.db.GetContext(ctx, user, query, value)
	if noRows(err) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return user, nil
}

// UpdateUser overwrites the profile fields and review score of an existing user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = now(user.UpdatedAt)

	query := `
		UPDATE users SET name = :name, phone = :phone, nationality = :nationality,
			languages = :languages, age = :age, sex = :sex, bio = :bio, interests = :interests,
			profile_picture = :profile_picture, review_score = :review_score, updated_at = :updated_at
		WHERE id = :id
	`

	res, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user not found: %d", user.ID)
	}

	return nil
}
