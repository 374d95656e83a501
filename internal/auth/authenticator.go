package auth

import (
	"context"

	"github.com/mmynk/travelbuddy/internal/models"
)

// Authenticator defines the interface for credential-based sign-in.
// Implementations decide what a credential is (a password today).
type Authenticator interface {
	// Register creates a new account. Username and email must both be unused.
	Register(ctx context.Context, username, email, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks that a credential is acceptable before it is stored.
	ValidateCredential(credential string) error
}

// UserStorage is the slice of the entity store the authenticators need.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
