package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// NotificationService maps the notification feed resource.
type NotificationService struct {
	t *Transport
}

func NewNotificationService(t *Transport) *NotificationService {
	return &NotificationService{t: t}
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return DoList[domain.Notification](ctx, s.t, "/notifications/", nil)
}

// UnreadCount returns the badge counter.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	out, err := Do[struct {
		Count int `json:"count"`
	}](ctx, s.t, http.MethodGet, "/notifications/unread-count/", nil)
	return out.Count, err
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return Do[*domain.Notification](ctx, s.t, http.MethodPatch, fmt.Sprintf("/notifications/%s/", id), map[string]bool{"read": true})
}

// MarkAllRead marks every notification as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return DoNoContent(ctx, s.t, http.MethodPost, "/notifications/mark-all-read/", nil)
}
