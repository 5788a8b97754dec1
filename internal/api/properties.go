package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Properties wraps /api/properties.
type Properties struct{ r Requester }

func (p *Properties) List(ctx context.Context, f models.PropertyFilter) ([]models.Property, error) {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.MinPrice != "" {
		q.Set("minPrice", f.MinPrice)
	}
	if f.MaxPrice != "" {
		q.Set("maxPrice", f.MaxPrice)
	}
	if f.Rooms > 0 {
		q.Set("rooms", strconv.Itoa(f.Rooms))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		q.Set("size", strconv.Itoa(f.Size))
	}
	return list[models.Property](ctx, p.r, withQuery("/api/properties", q))
}

func (p *Properties) Get(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	if err := get(ctx, p.r, idPath("/api/properties/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Properties) Featured(ctx context.Context) ([]models.Property, error) {
	return list[models.Property](ctx, p.r, "/api/properties/featured")
}

func (p *Properties) ByLandlord(ctx context.Context, landlordID int64) ([]models.Property, error) {
	return list[models.Property](ctx, p.r, idPath("/api/properties/landlord/%d", landlordID))
}

// Mine lists the properties the caller owns or manages.
func (p *Properties) Mine(ctx context.Context) ([]models.Property, error) {
	return list[models.Property](ctx, p.r, "/api/users/my-properties")
}

func (p *Properties) Create(ctx context.Context, req models.PropertyRequest) (*models.Property, error) {
	var out models.Property
	if err := post(ctx, p.r, "/api/properties", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Properties) Update(ctx context.Context, id int64, req models.PropertyRequest) (*models.Property, error) {
	var out models.Property
	if err := put(ctx, p.r, idPath("/api/properties/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Properties) Delete(ctx context.Context, id int64) error {
	return del(ctx, p.r, idPath("/api/properties/%d", id))
}

// AssignManager sets the property manager of a property.
func (p *Properties) AssignManager(ctx context.Context, id int64, managerID int64) (*models.Property, error) {
	var out models.Property
	if err := put(ctx, p.r, idPath("/api/properties/%d/manager", id), models.PropertyManagerRequest{ManagerID: managerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
