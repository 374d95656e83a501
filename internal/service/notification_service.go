package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
)

// NotificationService implements the NotificationService RPC interface.
type NotificationService struct {
	core   *travel.Service
	logger *slog.Logger
}

func NewNotificationService(core *travel.Service, logger *slog.Logger) *NotificationService {
	return &NotificationService{core: core, logger: logger}
}

// ListNotifications returns the caller's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	userID := middleware.GetUserID(ctx)

	list, err := s.core.ListNotifications(ctx, userID)
	if err != nil {
		return nil, toConnectError(s.logger, "ListNotifications", err)
	}

	out := make([]*api.Notification, len(list))
	for i, n := range list {
		out[i] = toAPINotification(n)
	}
	return connect.NewResponse(&api.ListNotificationsResponse{Notifications: out}), nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("MarkNotificationRead request received", "notification_id", req.Msg.NotificationID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	n, err := s.core.MarkReadAs(ctx, middleware.GetUserID(ctx), req.Msg.NotificationID)
	if err != nil {
		return nil, toConnectError(s.logger, "MarkNotificationRead", err)
	}
	return connect.NewResponse(&api.MarkNotificationReadResponse{Notification: toAPINotification(n)}), nil
}
