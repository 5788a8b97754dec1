package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Employees wraps /api/employees.
type Employees struct{ r Requester }

func (e *Employees) List(ctx context.Context) ([]models.Employee, error) {
	return list[models.Employee](ctx, e.r, "/api/employees")
}

func (e *Employees) Create(ctx context.Context, emp models.Employee) (*models.Employee, error) {
	var out models.Employee
	if err := post(ctx, e.r, "/api/employees", emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Update(ctx context.Context, id int64, emp models.Employee) (*models.Employee, error) {
	var out models.Employee
	if err := put(ctx, e.r, idPath("/api/employees/%d", id), emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Delete(ctx context.Context, id int64) error {
	return del(ctx, e.r, idPath("/api/employees/%d", id))
}
