package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/integrations/backend"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/Dan9191/rent-portal/internal/report"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

type fakeAuth struct {
	loginErr  error
	logoutErr error
	logins    []models.LoginRequest
	logouts   int
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.logins = append(f.logins, req)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.LoginResponse{AccessToken: "issued", User: &models.User{ID: 5, Email: req.Email}}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return f.logoutErr
}

type fakeCounter struct {
	n   int
	err error
}

func (f fakeCounter) UnreadCount(context.Context) (int, error) { return f.n, f.err }

type fakeMaintenance struct{ calls int }

func (f *fakeMaintenance) Summary(context.Context) (*models.MaintenanceSummary, error) {
	f.calls++
	return &models.MaintenanceSummary{Open: 2, Urgent: 1}, nil
}

type fakeReports struct {
	start, end models.Date
	interval   report.Interval
	days       int
	roll       report.Result[[]models.RentRollItem]
}

func (f *fakeReports) RentRoll(context.Context) report.Result[[]models.RentRollItem] {
	return f.roll
}

func (f *fakeReports) FinancialSummary(_ context.Context, start, end models.Date) report.Result[models.FinancialSummary] {
	f.start, f.end = start, end
	return report.Result[models.FinancialSummary]{
		Data:           models.FinancialSummary{Currency: "USD", StartDate: start, EndDate: end, Summary: models.FinancialTotals{TotalRevenue: decimal.NewFromInt(1000)}},
		FailedLeaseIDs: []int64{},
	}
}

func (f *fakeReports) FinancialTrends(_ context.Context, start, end models.Date, interval report.Interval) report.Result[[]models.FinancialTrendPoint] {
	f.start, f.end, f.interval = start, end, interval
	return report.Result[[]models.FinancialTrendPoint]{Data: []models.FinancialTrendPoint{}, FailedLeaseIDs: []int64{}}
}

func (f *fakeReports) OverduePayments(context.Context) report.Result[[]models.OverduePayment] {
	return report.Result[[]models.OverduePayment]{
		Data:           []models.OverduePayment{{LeaseID: 2, TenantEmail: "b@example.com", DaysOverdue: 14}},
		FailedLeaseIDs: []int64{3},
	}
}

func (f *fakeReports) ExpiringLeases(_ context.Context, days int) report.Result[[]models.ExpiringLease] {
	f.days = days
	return report.Result[[]models.ExpiringLease]{Data: []models.ExpiringLease{}, FailedLeaseIDs: []int64{}}
}

type fixture struct {
	router      http.Handler
	auth        *fakeAuth
	maintenance *fakeMaintenance
	reports     *fakeReports
	verifier    *auth.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		auth:        &fakeAuth{},
		maintenance: &fakeMaintenance{},
		reports: &fakeReports{roll: report.Result[[]models.RentRollItem]{
			Data: []models.RentRollItem{{
				LeaseID:       1,
				PropertyTitle: "Harbor Loft",
				RentAmount:    decimal.NewFromInt(1000),
				Financials: models.RentRollFinancials{
					TotalPaid: decimal.Zero, TotalDue: decimal.Zero,
					LastPaymentAmount: decimal.Zero, NextDueAmount: decimal.Zero,
				},
				Status: models.RentRollOnTime,
			}},
			FailedLeaseIDs: []int64{4, 7},
		}},
		verifier: auth.NewVerifier(testSecret, auth.NewMemoryRevocations()),
	}
	h := NewHandler(Deps{
		Auth:          f.auth,
		Notifications: fakeCounter{n: 3},
		Conversations: fakeCounter{n: 1},
		Maintenance:   f.maintenance,
		Reports:       f.reports,
		Verifier:      f.verifier,
		Log:           log,
		Now:           func() time.Time { return time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC) },
	})
	f.router = NewRouter(h)
	return f
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "5", "role": role, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func (f *fixture) do(method, target, authz string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"ana@example.com","password":"hunter22"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "issued", decode(t, rec)["accessToken"])
		require.Len(t, f.auth.logins, 1)
		assert.Equal(t, "ana@example.com", f.auth.logins[0].Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/auth/login", "", strings.NewReader(`{`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_payload", decode(t, rec)["code"])
		assert.Empty(t, f.auth.logins)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"nope","password":"x"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "validation_error", body["code"])
		assert.Equal(t, map[string]any{"email": "email", "password": "min=6"}, body["details"])
		assert.Empty(t, f.auth.logins)
	})

	t.Run("backend rejects", func(t *testing.T) {
		f := newFixture(t)
		f.auth.loginErr = &backend.StatusError{StatusCode: http.StatusUnauthorized, Status: "Unauthorized"}
		rec := f.do(http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"ana@example.com","password":"wrong-pass"}`))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decode(t, rec)["code"])
	})

	t.Run("backend down", func(t *testing.T) {
		f := newFixture(t)
		f.auth.loginErr = &backend.StatusError{StatusCode: http.StatusServiceUnavailable, Status: "Service Unavailable"}
		rec := f.do(http.MethodPost, "/api/auth/login", "", strings.NewReader(`{"email":"ana@example.com","password":"hunter22"}`))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "backend_unavailable", decode(t, rec)["code"])
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	f.auth.logoutErr = errors.New("backend offline")
	token := bearer(t, "TENANT")

	rec := f.do(http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, f.auth.logouts)

	rec = f.do(http.MethodGet, "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNavigation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/navigation?path=/login", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "guest", body["role"])
	assert.Equal(t, false, body["showNavbar"])
	assert.Len(t, body["tabs"], 3)

	rec = f.do(http.MethodGet, "/api/navigation?path=/dashboard", bearer(t, "LANDLORD"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "landlord", body["role"])
	assert.Equal(t, true, body["showNavbar"])
	assert.Len(t, body["tabs"], 6)

	rec = f.do(http.MethodGet, "/api/navigation", "Bearer forged", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/dashboard", bearer(t, "TENANT"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(3), body["unreadNotifications"])
	assert.Equal(t, float64(1), body["unreadConversations"])
	assert.NotContains(t, body, "maintenance")
	assert.Zero(t, f.maintenance.calls)

	rec = f.do(http.MethodGet, "/api/dashboard", bearer(t, "PROPERTY_MANAGER"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "maintenance")
	assert.Equal(t, 1, f.maintenance.calls)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/dashboard", "", nil).Code)
}

func TestReportsRequireOwnerRole(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/reports/landlord/rent-roll", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/reports/landlord/rent-roll", bearer(t, "TENANT"), nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/reports/landlord/rent-roll", bearer(t, "LANDLORD"), nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/reports/landlord/rent-roll", bearer(t, "PROPERTY_MANAGER"), nil).Code)
}

func TestReportsShortAlias(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, "LANDLORD")
	for _, target := range []string{
		"/api/reports/rent-roll",
		"/api/reports/overdue-payments",
		"/api/reports/expiring-leases",
	} {
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, target, token, nil).Code, target)
	}
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/reports/rent-roll", bearer(t, "TENANT"), nil).Code)
}

func TestRentRollBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/reports/landlord/rent-roll", bearer(t, "LANDLORD"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{float64(4), float64(7)}, body["failedLeaseIds"])
	assert.Equal(t, false, body["leasesUnavailable"])
	assert.Len(t, body["data"], 1)
}

func TestExportRentRoll(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, "LANDLORD")

	rec := f.do(http.MethodGet, "/api/reports/landlord/rent-roll/export?format=xml", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="rent-roll-2024-06-15.xml"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4,7", rec.Header().Get("X-Report-Failed-Leases"))
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte("Harbor Loft")))

	rec = f.do(http.MethodGet, "/api/reports/landlord/rent-roll/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = f.do(http.MethodGet, "/api/reports/landlord/rent-roll/export?format=pdf", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinancialSummaryQuery(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, "LANDLORD")

	rec := f.do(http.MethodGet, "/api/reports/landlord/financial-summary?startDate=2024-06-01&endDate=2024-06-30", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06-01", f.reports.start.String())
	assert.Equal(t, "2024-06-30", f.reports.end.String())
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "USD", data["currency"])
	require.IsType(t, map[string]any{}, data["summary"])
	assert.Contains(t, data["summary"], "totalRevenue")
	assert.NotContains(t, data, "totalRevenue")

	for _, target := range []string{
		"/api/reports/landlord/financial-summary",
		"/api/reports/landlord/financial-summary?startDate=2024-06-01",
		"/api/reports/landlord/financial-summary?startDate=06/01/2024&endDate=2024-06-30",
		"/api/reports/landlord/financial-summary?startDate=2024-07-01&endDate=2024-06-30",
	} {
		rec := f.do(http.MethodGet, target, token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "validation_error", decode(t, rec)["code"], target)
	}
}

func TestFinancialTrendsQuery(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, "LANDLORD")

	rec := f.do(http.MethodGet, "/api/reports/landlord/financial-trends?startDate=2024-01-01&endDate=2024-06-30&interval=day", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.IntervalDay, f.reports.interval)

	rec = f.do(http.MethodGet, "/api/reports/landlord/financial-trends?startDate=2024-01-01&endDate=2024-06-30", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.IntervalMonth, f.reports.interval)

	rec = f.do(http.MethodGet, "/api/reports/landlord/financial-trends?startDate=2024-01-01&endDate=2024-06-30&interval=week", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverduePaymentsHidesEmail(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/reports/landlord/overdue-payments", bearer(t, "LANDLORD"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "b@example.com")
	assert.Equal(t, []any{float64(3)}, decode(t, rec)["failedLeaseIds"])
}

func TestExpiringLeasesQuery(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, "LANDLORD")

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/reports/landlord/expiring-leases", token, nil).Code)
	assert.Equal(t, 60, f.reports.days)

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/reports/landlord/expiring-leases?days=0", token, nil).Code)
	assert.Equal(t, 0, f.reports.days)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/reports/landlord/expiring-leases?days=-1", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/reports/landlord/expiring-leases?days=soon", token, nil).Code)
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode(t, rec)["code"])
}

func TestClassify(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &backend.StatusError{StatusCode: http.StatusNotFound, Status: "Not Found"})
	assert.Equal(t, http.StatusNotFound, classify(wrapped).StatusCode)
	assert.Equal(t, http.StatusInternalServerError, classify(errors.New("boom")).StatusCode)

	app := &AppError{StatusCode: http.StatusTeapot, Code: "x", Message: "y"}
	assert.Same(t, app, classify(app))
}
