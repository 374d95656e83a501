package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/auth"
	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// FederationKeyHeader carries the identity gateway's shared key on
// FederatedSignIn calls.
const FederationKeyHeader = "X-Federation-Key"

var errFederationDisabled = errors.New("federated sign-in is not enabled")

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	federated     *auth.FederatedAuthenticator
	federationKey string
	jwtManager    *auth.JWTManager
	core          *travel.Service
	logger        *slog.Logger
}

// NewAuthService creates the authentication service. An empty federationKey
// disables FederatedSignIn.
func NewAuthService(authenticator auth.Authenticator, federated *auth.FederatedAuthenticator, federationKey string, jwtManager *auth.JWTManager, core *travel.Service, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		federated:     federated,
		federationKey: federationKey,
		jwtManager:    jwtManager,
		core:          core,
		logger:        logger,
	}
}

// Register creates a new password account and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.Info("Register request", "username", req.Msg.Username, "email", req.Msg.Email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Username, req.Msg.Email, req.Msg.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists), errors.Is(err, auth.ErrUsernameExists):
			s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	if req.Msg.Name != "" {
		if user, err = s.core.UpdateProfile(ctx, user.Email, travel.ProfileUpdate{Name: req.Msg.Name}); err != nil {
			return nil, toConnectError(s.logger, "Register", err)
		}
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&api.RegisterResponse{User: toAPIUser(user), Token: token}), nil
}

// Login authenticates with email and password and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Error("Login failed", "email", req.Msg.Email, "error", err)
			return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
		}
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&api.LoginResponse{User: toAPIUser(user), Token: token}), nil
}

// FederatedSignIn signs in an identity verified by the gateway, creating a
// password-less account on first use.
func (s *AuthService) FederatedSignIn(ctx context.Context, req *connect.Request[api.FederatedSignInRequest]) (*connect.Response[api.FederatedSignInResponse], error) {
	s.logger.Info("FederatedSignIn request", "email", req.Msg.Email)

	if s.federationKey == "" {
		return nil, connect.NewError(connect.CodeUnimplemented, errFederationDisabled)
	}
	key := req.Header().Get(FederationKeyHeader)
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.federationKey)) != 1 {
		s.logger.Warn("FederatedSignIn rejected", "email", req.Msg.Email)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, created, err := s.federated.SignIn(ctx, req.Msg.Email, req.Msg.Name)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		if errors.Is(err, auth.ErrUsernameExists) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		s.logger.Error("FederatedSignIn failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	s.logger.Info("Federated sign-in successful", "user_id", user.ID, "created", created)
	return connect.NewResponse(&api.FederatedSignInResponse{User: toAPIUser(user), Token: token, Created: created}), nil
}

// GetCurrentUser returns the account behind the session token.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	email, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("GetCurrentUser request", "user_id", middleware.GetUserID(ctx))

	user, err := s.core.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, toConnectError(s.logger, "GetCurrentUser", err)
	}
	return connect.NewResponse(&api.GetCurrentUserResponse{User: toAPIUser(user)}), nil
}
