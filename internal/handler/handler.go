package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/Dan9191/rent-portal/internal/navigation"
	"github.com/Dan9191/rent-portal/internal/report"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AuthBackend forwards credentials to the backend (satisfied by *api.Auth).
type AuthBackend interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
}

// UnreadCounter is satisfied by *api.Notifications and *api.Conversations.
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// MaintenanceSummarizer is satisfied by *api.Maintenance.
type MaintenanceSummarizer interface {
	Summary(ctx context.Context) (*models.MaintenanceSummary, error)
}

// Reports is satisfied by *report.Aggregator.
type Reports interface {
	RentRoll(ctx context.Context) report.Result[[]models.RentRollItem]
	FinancialSummary(ctx context.Context, start, end models.Date) report.Result[models.FinancialSummary]
	FinancialTrends(ctx context.Context, start, end models.Date, interval report.Interval) report.Result[[]models.FinancialTrendPoint]
	OverduePayments(ctx context.Context) report.Result[[]models.OverduePayment]
	ExpiringLeases(ctx context.Context, days int) report.Result[[]models.ExpiringLease]
}

// Deps are the collaborators of the HTTP layer.
type Deps struct {
	Auth          AuthBackend
	Notifications UnreadCounter
	Conversations UnreadCounter
	Maintenance   MaintenanceSummarizer
	Reports       Reports
	Verifier      *auth.Verifier
	Log           *logrus.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	auth          AuthBackend
	notifications UnreadCounter
	conversations UnreadCounter
	maintenance   MaintenanceSummarizer
	reports       Reports
	verifier      *auth.Verifier
	log           *logrus.Logger
	validate      *validator.Validate
	now           func() time.Time
}

func NewHandler(d Deps) *Handler {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		auth:          d.Auth,
		notifications: d.Notifications,
		conversations: d.Conversations,
		maintenance:   d.Maintenance,
		reports:       d.Reports,
		verifier:      d.Verifier,
		log:           d.Log,
		validate:      newValidator(),
		now:           now,
	}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Login validates credentials and forwards them to the backend
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest(utils.ErrCodeInvalidPayload, "Invalid request body", nil))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, r, badRequest(utils.ErrCodeValidation, "Invalid credentials payload", fieldErrors(err)))
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.log.WithField("email", req.Email).Info("User logged in")
	utils.RespondJSON(w, http.StatusOK, resp)
}

// Logout ends the caller's session on the backend and revokes the token locally
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.FromContext(r.Context())

	if err := h.auth.Logout(r.Context()); err != nil {
		h.log.WithError(err).WithField("user_id", s.UserID).Warn("Backend logout failed")
	}
	if err := h.verifier.Revoke(r.Context(), s); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.log.WithField("user_id", s.UserID).Info("User logged out")
	w.WriteHeader(http.StatusNoContent)
}

type navigationResponse struct {
	navigation.Descriptor
	Path       string `json:"path"`
	ShowNavbar bool   `json:"showNavbar"`
}

// Navigation describes the navbar for the caller's role on the given path
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	s, ok := auth.FromContext(r.Context())
	if !ok {
		s = auth.Guest()
	}
	utils.RespondJSON(w, http.StatusOK, navigationResponse{
		Descriptor: navigation.For(s.Role),
		Path:       path,
		ShowNavbar: navigation.ShowNavbar(path),
	})
}

type dashboardResponse struct {
	Role                auth.Role                  `json:"role"`
	UnreadNotifications int                        `json:"unreadNotifications"`
	UnreadConversations int                        `json:"unreadConversations"`
	Maintenance         *models.MaintenanceSummary `json:"maintenance,omitempty"`
}

// Dashboard returns the caller's unread counters and, for owners, open maintenance
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.FromContext(r.Context())
	resp := dashboardResponse{Role: s.Role}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		n, err := h.notifications.UnreadCount(ctx)
		resp.UnreadNotifications = n
		return err
	})
	g.Go(func() error {
		n, err := h.conversations.UnreadCount(ctx)
		resp.UnreadConversations = n
		return err
	})
	if s.Role == auth.RoleLandlord || s.Role == auth.RolePropertyManager {
		g.Go(func() error {
			sum, err := h.maintenance.Summary(ctx)
			resp.Maintenance = sum
			return err
		})
	}
	if err := g.Wait(); err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}
