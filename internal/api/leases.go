package api

import (
	"context"
	"errors"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/models"
)

// ErrNoLeaseScope is returned when the caller's role has no lease list.
var ErrNoLeaseScope = errors.New("role has no lease scope")

// Leases wraps /api/lease-agreements.
type Leases struct{ r Requester }

func (l *Leases) ForLandlord(ctx context.Context) ([]models.Lease, error) {
	return list[models.Lease](ctx, l.r, "/api/lease-agreements/for-landlord")
}

// Managed lists leases on properties the caller manages.
func (l *Leases) Managed(ctx context.Context) ([]models.Lease, error) {
	return list[models.Lease](ctx, l.r, "/api/manager/leases")
}

// Mine lists the caller's own tenancies.
func (l *Leases) Mine(ctx context.Context) ([]models.Lease, error) {
	return list[models.Lease](ctx, l.r, "/api/lease-agreements/my")
}

func (l *Leases) ForProperty(ctx context.Context, propertyID int64) ([]models.Lease, error) {
	return list[models.Lease](ctx, l.r, idPath("/api/lease-agreements/for-property/%d", propertyID))
}

func (l *Leases) Get(ctx context.Context, id int64) (*models.Lease, error) {
	var out models.Lease
	if err := get(ctx, l.r, idPath("/api/lease-agreements/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Leases) Activate(ctx context.Context, id int64) (*models.Lease, error) {
	return l.transition(ctx, "/api/lease-agreements/%d/activate", id)
}

func (l *Leases) Terminate(ctx context.Context, id int64) (*models.Lease, error) {
	return l.transition(ctx, "/api/lease-agreements/%d/terminate", id)
}

func (l *Leases) transition(ctx context.Context, format string, id int64) (*models.Lease, error) {
	var out models.Lease
	if err := post(ctx, l.r, idPath(format, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the lease list that belongs to the caller's role.
func (l *Leases) List(ctx context.Context) ([]models.Lease, error) {
	s, ok := auth.FromContext(ctx)
	if !ok {
		s = auth.Guest()
	}
	list, ok := l.scopes()[s.Role]
	if !ok {
		return nil, ErrNoLeaseScope
	}
	return list(ctx)
}

func (l *Leases) scopes() map[auth.Role]func(context.Context) ([]models.Lease, error) {
	return map[auth.Role]func(context.Context) ([]models.Lease, error){
		auth.RoleLandlord:        l.ForLandlord,
		auth.RolePropertyManager: l.Managed,
		auth.RoleTenant:          l.Mine,
	}
}
