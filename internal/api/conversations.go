package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Conversations wraps /api/conversations.
type Conversations struct{ r Requester }

func (c *Conversations) List(ctx context.Context) ([]models.Conversation, error) {
	return list[models.Conversation](ctx, c.r, "/api/conversations")
}

func (c *Conversations) Get(ctx context.Context, id int64) (*models.Conversation, error) {
	var out models.Conversation
	if err := get(ctx, c.r, idPath("/api/conversations/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForProperty returns (or opens) the caller's conversation about a property.
func (c *Conversations) ForProperty(ctx context.Context, propertyID int64) (*models.Conversation, error) {
	var out models.Conversation
	if err := get(ctx, c.r, idPath("/api/conversations/property/%d", propertyID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Conversations) Messages(ctx context.Context, id int64) ([]models.Message, error) {
	return list[models.Message](ctx, c.r, idPath("/api/conversations/%d/messages", id))
}

func (c *Conversations) Send(ctx context.Context, id int64, content string) (*models.Message, error) {
	var out models.Message
	req := models.SendMessageRequest{Content: content}
	if err := post(ctx, c.r, idPath("/api/conversations/%d/messages", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Conversations) MarkRead(ctx context.Context, id int64) error {
	return put(ctx, c.r, idPath("/api/conversations/%d/read", id), nil, nil)
}

func (c *Conversations) UnreadCount(ctx context.Context) (int, error) {
	var out models.UnreadCount
	if err := get(ctx, c.r, "/api/conversations/unread-count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
