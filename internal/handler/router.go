package handler

import (
	"net/http"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/middleware"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/gorilla/mux"
)

// NewRouter wires every route of the portal API.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(h.log))
	r.NotFoundHandler = http.HandlerFunc(h.notFound)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	// Public routes
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.Handle("/navigation", middleware.OptionalAuthMiddleware(h.verifier, h.log)(http.HandlerFunc(h.Navigation))).
		Methods(http.MethodGet)

	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(h.verifier, h.log))
	authRouter.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	authRouter.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)

	// /reports/landlord is what the portal calls; /reports is kept as a short alias.
	h.mountReports(authRouter.PathPrefix("/reports/landlord").Subrouter())
	h.mountReports(authRouter.PathPrefix("/reports").Subrouter())

	return r
}

func (h *Handler) mountReports(reports *mux.Router) {
	reports.Use(middleware.RequireRoles(auth.RoleLandlord, auth.RolePropertyManager))
	reports.HandleFunc("/rent-roll", h.RentRoll).Methods(http.MethodGet)
	reports.HandleFunc("/rent-roll/export", h.ExportRentRoll).Methods(http.MethodGet)
	reports.HandleFunc("/financial-summary", h.FinancialSummary).Methods(http.MethodGet)
	reports.HandleFunc("/financial-trends", h.FinancialTrends).Methods(http.MethodGet)
	reports.HandleFunc("/overdue-payments", h.OverduePayments).Methods(http.MethodGet)
	reports.HandleFunc("/expiring-leases", h.ExpiringLeases).Methods(http.MethodGet)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, &AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Route not found"})
}
