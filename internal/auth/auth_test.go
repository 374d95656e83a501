package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newPasswordAuth(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	a := NewPasswordAuthenticator(newTestStore(t))
	a.cost = bcrypt.MinCost
	return a
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newPasswordAuth(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "alice", "Alice@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 || user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "correct-horse" || user.Federated() {
		t.Error("password should be stored as a bcrypt hash")
	}

	got, err := a.Authenticate(ctx, "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user %d, want %d", got.ID, user.ID)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "wrong-horse"},
		{"unknown email", "bob@example.com", "correct-horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Authenticate(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterRejects(t *testing.T) {
	a := newPasswordAuth(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "alice", "alice@example.com", "long-enough"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
		password string
		want     error
	}{
		{"short password", "bob", "bob@example.com", "short", ErrWeakPassword},
		{"email taken", "bob", "alice@example.com", "long-enough", ErrEmailExists},
		{"email taken with other case", "bob", " ALICE@example.com", "long-enough", ErrEmailExists},
		{"username taken", "alice", "other@example.com", "long-enough", ErrUsernameExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFederatedSignIn(t *testing.T) {
	store := newTestStore(t)
	pw := NewPasswordAuthenticator(store)
	pw.cost = bcrypt.MinCost
	fed := NewFederatedAuthenticator(store)
	ctx := context.Background()

	// Occupy the natural username of the federated user.
	if _, err := pw.Register(ctx, "sam", "sam@work.test", "long-enough"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, created, err := fed.SignIn(ctx, "sam@gmail.test", "Sam G")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if !created {
		t.Error("expected first sign-in to create the account")
	}
	if user.Username != "sam1" {
		t.Errorf("username: expected sam1, got %q", user.Username)
	}
	if !user.Federated() || user.Name != "Sam G" {
		t.Errorf("unexpected federated user: %+v", user)
	}

	again, created, err := fed.SignIn(ctx, "SAM@gmail.test", "ignored")
	if err != nil {
		t.Fatalf("second SignIn failed: %v", err)
	}
	if created || again.ID != user.ID {
		t.Errorf("second sign-in should return existing user %d, got %d (created=%v)", user.ID, again.ID, created)
	}

	if _, err := pw.Authenticate(ctx, "sam@gmail.test", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("federated accounts must not accept password login, got %v", err)
	}

	if _, _, err := fed.SignIn(ctx, "not-an-email", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for malformed email, got %v", err)
	}
}

func TestUsernameFromEmail(t *testing.T) {
	tests := map[string]string{
		"jane.doe@x.test":  "jane.doe",
		"j+tag@x.test":     "jtag",
		"+++@x.test":       "traveler",
		"under_score@x.io": "under_score",
	}
	for email, want := range tests {
		if got := usernameFromEmail(email); got != want {
			t.Errorf("usernameFromEmail(%q) = %q, want %q", email, got, want)
		}
	}
}

func TestJWT(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: 42, Email: "a@x.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@x.com" || claims.Subject != "42" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := manager.Validate(strings.Repeat("x", 20)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
