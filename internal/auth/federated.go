package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage"
)

// maxUsernameAttempts bounds the suffix search for a free username.
const maxUsernameAttempts = 50

// FederatedAuthenticator signs in users vouched for by an external identity
// provider. The provider's token is verified before SignIn is called.
type FederatedAuthenticator struct {
	storage UserStorage
}

// NewFederatedAuthenticator creates a federated authenticator.
func NewFederatedAuthenticator(storage UserStorage) *FederatedAuthenticator {
	return &FederatedAuthenticator{storage: storage}
}

// SignIn returns the account for email, creating a password-less one on first
// sign-in. The username is the email's local part, suffixed with a number
// when already taken. created reports whether a new account was made.
func (a *FederatedAuthenticator) SignIn(ctx context.Context, email, name string) (user *models.User, created bool, err error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, false, ErrInvalidCredentials
	}

	user, err = a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}
	if user != nil {
		return user, false, nil
	}

	base := usernameFromEmail(email)
	for i := 0; i < maxUsernameAttempts; i++ {
		username := base
		if i > 0 {
			username = fmt.Sprintf("%s%d", base, i)
		}

		taken, err := a.storage.GetUserByUsername(ctx, username)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check username: %w", err)
		}
		if taken != nil {
			continue
		}

		user = models.NewUser(username, email, "")
		user.Name = name
		err = a.storage.CreateUser(ctx, user)
		if errors.Is(err, storage.ErrDuplicate) {
			// Either the username or the email was claimed concurrently.
			if existing, lookupErr := a.storage.GetUserByEmail(ctx, email); lookupErr == nil && existing != nil {
				return existing, false, nil
			}
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return user, true, nil
	}

	return nil, false, ErrUsernameExists
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return -1
	}, local)
	if local == "" {
		return "traveler"
	}
	return local
}
