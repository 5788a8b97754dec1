package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Auth covers the backend session endpoints.
type Auth struct{ r Requester }

func (a *Auth) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := post(ctx, a.r, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the caller's token on the backend.
func (a *Auth) Logout(ctx context.Context) error {
	return post(ctx, a.r, "/api/auth/logout", nil, nil)
}
