package models

import "time"

// User represents a registered account.
type User struct {
	// ID is assigned by the store.
	ID int64 `db:"id"`

	// Username is unique across all users.
	Username string `db:"username"`

	// Email is unique across all users and is the login identity.
	Email string `db:"email"`

	// PasswordHash is the bcrypt hash, or empty for federated sign-ins.
	PasswordHash string `db:"password_hash"`

	// Profile fields.
	Name           string `db:"name"`
	Phone          string `db:"phone"`
	Nationality    string `db:"nationality"`
	Languages      string `db:"languages"`
	Age            int    `db:"age"`
	Sex            string `db:"sex"`
	Bio            string `db:"bio"`
	Interests      string `db:"interests"`
	ProfilePicture string `db:"profile_picture"`

	// ReviewScore is the aggregate rating maintained by the review aggregator.
	ReviewScore float64 `db:"review_score"`

	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}

// NewUser creates a user with creation timestamps set to now.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Federated reports whether the account was created by an external identity provider.
func (u *User) Federated() bool {
	return u.PasswordHash == ""
}
