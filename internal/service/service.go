// Package service implements the travelbuddy Connect handlers. Handlers
// validate requests, resolve the caller from the context and translate
// travel core results and errors to wire messages and Connect codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/auth"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/pkg/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks a request message's validate tags.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(problems, "; ")))
}

// caller returns the authenticated email, failing when the request carries none.
func caller(ctx context.Context) (string, error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return email, nil
}

// toConnectError maps a travel core error to a Connect error. Unexpected
// failures are logged with their cause and reported as a generic message.
func toConnectError(logger *slog.Logger, op string, err error) error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	kind := apperr.KindOf(err)
	switch kind {
	case apperr.KindNotFound:
		return connect.NewError(connect.CodeNotFound, errors.New(err.Error()))
	case apperr.KindConflict:
		if errors.Is(err, membership.ErrInvalidTransition) {
			return connect.NewError(connect.CodeFailedPrecondition, errors.New(err.Error()))
		}
		return connect.NewError(connect.CodeAlreadyExists, errors.New(err.Error()))
	case apperr.KindForbidden:
		return connect.NewError(connect.CodePermissionDenied, errors.New(err.Error()))
	case apperr.KindInvalidInput:
		return connect.NewError(connect.CodeInvalidArgument, errors.New(err.Error()))
	}

	logger.Error(op+" failed", "error", err, "cause", errors.Unwrap(err))
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		Nationality:    u.Nationality,
		Languages:      u.Languages,
		Age:            u.Age,
		Sex:            u.Sex,
		Bio:            u.Bio,
		Interests:      u.Interests,
		ProfilePicture: u.ProfilePicture,
		ReviewScore:    u.ReviewScore,
		Federated:      u.Federated(),
		CreatedAt:      u.CreatedAt,
	}
}

func toAPITrip(t *models.Trip) *api.Trip {
	ids := t.InterestIDs
	if ids == nil {
		ids = []int64{}
	}
	return &api.Trip{
		ID:          t.ID,
		Location:    t.Location,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Description: t.Description,
		CreatedBy:   t.CreatedBy,
		InterestIDs: ids,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toAPIMembership(m *models.Membership) *api.Membership {
	return &api.Membership{
		ID:        m.ID,
		UserID:    m.UserID,
		TripID:    m.TripID,
		Role:      m.Role,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAPITripImage(img *models.TripImage) *api.TripImage {
	return &api.TripImage{
		ID:        img.ID,
		TripID:    img.TripID,
		ImagePath: img.ImagePath,
		CreatedAt: img.CreatedAt,
	}
}

func toAPIPost(p *models.Post) *api.Post {
	return &api.Post{
		ID:           p.ID,
		MembershipID: p.MembershipID,
		Caption:      p.Caption,
		ImagePath:    p.ImagePath,
		CreatedAt:    p.CreatedAt,
	}
}

func toAPIReview(r *models.Review) *api.Review {
	return &api.Review{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		TripID:     r.TripID,
		PostID:     r.PostID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func toAPINotification(n *models.Notification) *api.Notification {
	return &api.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Status:    n.Status,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}
