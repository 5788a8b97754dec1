// Package api holds one typed façade per backend resource. The façades only build
// paths and decode payloads; errors from the transport are returned unchanged.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Requester is the transport used by every façade (satisfied by *backend.Client).
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Backend groups all resource façades over one transport.
type Backend struct {
	Auth          *Auth
	Properties    *Properties
	Leases        *Leases
	Payments      *Payments
	RentSchedules *RentSchedules
	Maintenance   *Maintenance
	Conversations *Conversations
	Notifications *Notifications
	Employees     *Employees
	Documents     *Documents
}

// New wires every façade to r.
func New(r Requester) *Backend {
	return &Backend{
		Auth:          &Auth{r: r},
		Properties:    &Properties{r: r},
		Leases:        &Leases{r: r},
		Payments:      &Payments{r: r},
		RentSchedules: &RentSchedules{r: r},
		Maintenance:   &Maintenance{r: r},
		Conversations: &Conversations{r: r},
		Notifications: &Notifications{r: r},
		Employees:     &Employees{r: r},
		Documents:     &Documents{r: r},
	}
}

func get(ctx context.Context, r Requester, path string, out any) error {
	return r.Do(ctx, http.MethodGet, path, nil, out)
}

func post(ctx context.Context, r Requester, path string, body, out any) error {
	return r.Do(ctx, http.MethodPost, path, body, out)
}

func put(ctx context.Context, r Requester, path string, body, out any) error {
	return r.Do(ctx, http.MethodPut, path, body, out)
}

func del(ctx context.Context, r Requester, path string) error {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func idPath(format string, ids ...int64) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return fmt.Sprintf(format, args...)
}

func list[T any](ctx context.Context, r Requester, path string) ([]T, error) {
	var out []T
	if err := get(ctx, r, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
