package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Documents wraps the user document endpoints.
type Documents struct{ r Requester }

func (d *Documents) ForUser(ctx context.Context, userID int64) ([]models.Document, error) {
	return list[models.Document](ctx, d.r, idPath("/api/users/%d/documents", userID))
}

func (d *Documents) SignedURL(ctx context.Context, id int64) (*models.SignedURL, error) {
	var out models.SignedURL
	if err := get(ctx, d.r, idPath("/api/documents/%d/signed-url", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Documents) Share(ctx context.Context, id int64, userIDs []int64) error {
	return post(ctx, d.r, idPath("/api/documents/%d/share", id), models.ShareDocumentRequest{UserIDs: userIDs}, nil)
}

func (d *Documents) Delete(ctx context.Context, id int64) error {
	return del(ctx, d.r, idPath("/api/files/%d", id))
}
