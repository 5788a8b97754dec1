package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Notifications wraps /api/notifications.
type Notifications struct{ r Requester }

func (n *Notifications) List(ctx context.Context) ([]models.Notification, error) {
	return list[models.Notification](ctx, n.r, "/api/notifications")
}

func (n *Notifications) UnreadCount(ctx context.Context) (int, error) {
	var out models.UnreadCount
	if err := get(ctx, n.r, "/api/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (n *Notifications) MarkRead(ctx context.Context, id int64) error {
	return put(ctx, n.r, idPath("/api/notifications/%d/read", id), nil, nil)
}

func (n *Notifications) ReadAll(ctx context.Context) error {
	return put(ctx, n.r, "/api/notifications/read-all", nil, nil)
}

func (n *Notifications) Delete(ctx context.Context, id int64) error {
	return del(ctx, n.r, idPath("/api/notifications/%d", id))
}

// DeleteRead removes every notification already marked read.
func (n *Notifications) DeleteRead(ctx context.Context) error {
	return del(ctx, n.r, "/api/notifications/read")
}
