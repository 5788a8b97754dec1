package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	body   any
}

// fakeRequester records calls and answers with canned JSON keyed by "METHOD path".
type fakeRequester struct {
	calls     []call
	responses map[string]string
	err       error
}

func (f *fakeRequester) Do(_ context.Context, method, path string, body, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if raw, ok := f.responses[method+" "+path]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

func (f *fakeRequester) last() call {
	return f.calls[len(f.calls)-1]
}

func TestPaths(t *testing.T) {
	f := &fakeRequester{}
	b := New(f)
	ctx := context.Background()

	cases := []struct {
		run    func() error
		method string
		path   string
	}{
		{func() error { _, err := b.Properties.Featured(ctx); return err }, http.MethodGet, "/api/properties/featured"},
		{func() error { _, err := b.Properties.ByLandlord(ctx, 4); return err }, http.MethodGet, "/api/properties/landlord/4"},
		{func() error { _, err := b.Properties.Mine(ctx); return err }, http.MethodGet, "/api/users/my-properties"},
		{func() error { return b.Properties.Delete(ctx, 9) }, http.MethodDelete, "/api/properties/9"},
		{func() error { _, err := b.Properties.AssignManager(ctx, 9, 2); return err }, http.MethodPut, "/api/properties/9/manager"},
		{func() error { _, err := b.Leases.ForProperty(ctx, 3); return err }, http.MethodGet, "/api/lease-agreements/for-property/3"},
		{func() error { _, err := b.Leases.Activate(ctx, 3); return err }, http.MethodPost, "/api/lease-agreements/3/activate"},
		{func() error { _, err := b.Leases.Terminate(ctx, 3); return err }, http.MethodPost, "/api/lease-agreements/3/terminate"},
		{func() error { _, err := b.Payments.Summary(ctx, 5); return err }, http.MethodGet, "/api/payments/lease/5/summary"},
		{func() error { _, err := b.Payments.Pay(ctx, 5, models.PaymentRequest{}); return err }, http.MethodPost, "/api/payments/lease/5/pay"},
		{func() error { return b.Payments.Delete(ctx, 8) }, http.MethodDelete, "/api/payments/8"},
		{func() error { _, err := b.RentSchedules.ForLease(ctx, 5); return err }, http.MethodGet, "/api/leases/5/rent-schedule"},
		{func() error { _, err := b.RentSchedules.Current(ctx, 5); return err }, http.MethodGet, "/api/leases/5/rent-schedule/current"},
		{func() error {
			_, err := b.RentSchedules.Waive(ctx, 5, 11, models.WaiveScheduleRequest{Reason: "goodwill"})
			return err
		}, http.MethodPost, "/api/leases/5/rent-schedule/11/waive"},
		{func() error { _, err := b.Maintenance.ForLandlord(ctx); return err }, http.MethodGet, "/api/maintenance/for-landlord"},
		{func() error {
			_, err := b.Maintenance.Transition(ctx, 2, models.MaintenanceResolve)
			return err
		}, http.MethodPost, "/api/maintenance/2/resolve"},
		{func() error { _, err := b.Conversations.ForProperty(ctx, 6); return err }, http.MethodGet, "/api/conversations/property/6"},
		{func() error { return b.Conversations.MarkRead(ctx, 6) }, http.MethodPut, "/api/conversations/6/read"},
		{func() error { return b.Notifications.DeleteRead(ctx) }, http.MethodDelete, "/api/notifications/read"},
		{func() error { return b.Notifications.ReadAll(ctx) }, http.MethodPut, "/api/notifications/read-all"},
		{func() error { _, err := b.Employees.Update(ctx, 1, models.Employee{Name: "A"}); return err }, http.MethodPut, "/api/employees/1"},
		{func() error { _, err := b.Documents.SignedURL(ctx, 12); return err }, http.MethodGet, "/api/documents/12/signed-url"},
		{func() error { return b.Documents.Delete(ctx, 12) }, http.MethodDelete, "/api/files/12"},
		{func() error { return b.Auth.Logout(ctx) }, http.MethodPost, "/api/auth/logout"},
	}
	for _, tc := range cases {
		require.NoError(t, tc.run(), tc.path)
		assert.Equal(t, tc.method, f.last().method, tc.path)
		assert.Equal(t, tc.path, f.last().path)
	}
}

func TestPropertyFilterQuery(t *testing.T) {
	f := &fakeRequester{}
	b := New(f)

	_, err := b.Properties.List(context.Background(), models.PropertyFilter{City: "Da Nang", Rooms: 2, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "/api/properties?city=Da+Nang&page=1&rooms=2", f.last().path)

	_, err = b.Properties.List(context.Background(), models.PropertyFilter{})
	require.NoError(t, err)
	assert.Equal(t, "/api/properties", f.last().path)
}

func TestDecoding(t *testing.T) {
	f := &fakeRequester{responses: map[string]string{
		"GET /api/leases/5/rent-schedule":     `[{"id":1,"leaseId":5,"dueDate":"2024-01-01","amountDue":1000,"amountPaid":1000,"status":"PAID"}]`,
		"GET /api/notifications/unread-count": `{"count":4}`,
		"POST /api/auth/login":                `{"accessToken":"a","user":{"id":1,"role":"LANDLORD"}}`,
	}}
	b := New(f)
	ctx := context.Background()

	items, err := b.RentSchedules.ForLease(ctx, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ScheduleStatusPaid, items[0].Status)

	n, err := b.Notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	resp, err := b.Auth.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, models.LoginRequest{Email: "a@b.c", Password: "secret1"}, f.last().body)
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	b := New(&fakeRequester{err: boom})

	_, err := b.Leases.Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	_, err = b.RentSchedules.ForLease(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	_, err = b.Conversations.UnreadCount(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestUnknownMaintenanceAction(t *testing.T) {
	f := &fakeRequester{}
	_, err := New(f).Maintenance.Transition(context.Background(), 1, "explode")
	assert.Error(t, err)
	assert.Empty(t, f.calls)
}

func TestLeaseListByRole(t *testing.T) {
	cases := map[auth.Role]string{
		auth.RoleLandlord:        "/api/lease-agreements/for-landlord",
		auth.RolePropertyManager: "/api/manager/leases",
		auth.RoleTenant:          "/api/lease-agreements/my",
	}
	for role, path := range cases {
		f := &fakeRequester{}
		ctx := auth.NewContext(context.Background(), auth.Session{Role: role, Token: "t"})
		_, err := New(f).Leases.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, path, f.last().path, role)
	}

	f := &fakeRequester{}
	_, err := New(f).Leases.List(context.Background())
	assert.ErrorIs(t, err, ErrNoLeaseScope)
	assert.Empty(t, f.calls)
}
