package api

import (
	"context"
	"fmt"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Maintenance wraps /api/maintenance.
type Maintenance struct{ r Requester }

// Mine lists requests submitted by the caller.
func (m *Maintenance) Mine(ctx context.Context) ([]models.MaintenanceRequest, error) {
	return list[models.MaintenanceRequest](ctx, m.r, "/api/maintenance/my")
}

func (m *Maintenance) ForLandlord(ctx context.Context) ([]models.MaintenanceRequest, error) {
	return list[models.MaintenanceRequest](ctx, m.r, "/api/maintenance/for-landlord")
}

func (m *Maintenance) Get(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := get(ctx, m.r, idPath("/api/maintenance/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Maintenance) Create(ctx context.Context, req models.MaintenanceCreateRequest) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := post(ctx, m.r, "/api/maintenance", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Maintenance) Delete(ctx context.Context, id int64) error {
	return del(ctx, m.r, idPath("/api/maintenance/%d", id))
}

func (m *Maintenance) Cancel(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := post(ctx, m.r, idPath("/api/maintenance/%d/cancel", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transition moves a request through the landlord workflow (accept, start, resolve, ...).
func (m *Maintenance) Transition(ctx context.Context, id int64, action models.MaintenanceAction) (*models.MaintenanceRequest, error) {
	switch action {
	case models.MaintenanceAccept, models.MaintenanceReject, models.MaintenanceStart,
		models.MaintenanceResolve, models.MaintenanceReopen:
	default:
		return nil, fmt.Errorf("unknown maintenance action %q", action)
	}
	var out models.MaintenanceRequest
	if err := post(ctx, m.r, fmt.Sprintf("/api/maintenance/%d/%s", id, action), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Maintenance) Comments(ctx context.Context, id int64) ([]models.MaintenanceComment, error) {
	return list[models.MaintenanceComment](ctx, m.r, idPath("/api/maintenance/%d/comments", id))
}

func (m *Maintenance) Comment(ctx context.Context, id int64, content string) (*models.MaintenanceComment, error) {
	var out models.MaintenanceComment
	body := map[string]string{"content": content}
	if err := post(ctx, m.r, idPath("/api/maintenance/%d/comments", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Maintenance) Summary(ctx context.Context) (*models.MaintenanceSummary, error) {
	var out models.MaintenanceSummary
	if err := get(ctx, m.r, "/api/maintenance/summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
