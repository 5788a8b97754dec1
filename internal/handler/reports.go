package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Dan9191/rent-portal/internal/export"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/Dan9191/rent-portal/internal/report"
	"github.com/Dan9191/rent-portal/internal/utils"
)

const defaultExpiryWindow = 60

type rangeQuery struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Interval  string `json:"interval" validate:"omitempty,oneof=day month DAY MONTH"`
}

type expiringQuery struct {
	Days int `json:"days" validate:"gte=0,lte=3650"`
}

// parseRange reads startDate/endDate (YYYY-MM-DD, start <= end) and interval.
func (h *Handler) parseRange(r *http.Request) (start, end models.Date, interval report.Interval, err error) {
	q := r.URL.Query()
	in := rangeQuery{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Interval:  q.Get("interval"),
	}
	if err = h.validate.Struct(in); err != nil {
		return start, end, interval, badRequest(utils.ErrCodeValidation, "Invalid date range", fieldErrors(err))
	}
	if start, err = models.ParseDate(in.StartDate); err != nil {
		return start, end, interval, badRequest(utils.ErrCodeValidation, "Invalid startDate", nil)
	}
	if end, err = models.ParseDate(in.EndDate); err != nil {
		return start, end, interval, badRequest(utils.ErrCodeValidation, "Invalid endDate", nil)
	}
	if end.Before(start.Time) {
		return start, end, interval, badRequest(utils.ErrCodeValidation, "startDate must not be after endDate", nil)
	}
	if interval, err = report.ParseInterval(in.Interval); err != nil {
		return start, end, interval, badRequest(utils.ErrCodeValidation, err.Error(), nil)
	}
	return start, end, interval, nil
}

// RentRoll returns one row per lease with its payment standing
func (h *Handler) RentRoll(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.reports.RentRoll(r.Context()))
}

// ExportRentRoll serves the rent roll as an xlsx or xml download
func (h *Handler) ExportRentRoll(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.respondError(w, r, badRequest(utils.ErrCodeValidation, err.Error(), nil))
		return
	}

	res := h.reports.RentRoll(r.Context())
	generatedAt := h.now()
	body, err := export.RentRoll(format, res.Data, generatedAt)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename(generatedAt)+`"`)
	setPartialHeaders(w, res.FailedLeaseIDs, res.LeasesUnavailable)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// setPartialHeaders flags a download built from incomplete data; JSON reports carry
// the same information in their body.
func setPartialHeaders(w http.ResponseWriter, failed []int64, unavailable bool) {
	if unavailable {
		w.Header().Set("X-Report-Leases-Unavailable", "true")
	}
	if len(failed) == 0 {
		return
	}
	ids := make([]string, len(failed))
	for i, id := range failed {
		ids[i] = strconv.FormatInt(id, 10)
	}
	w.Header().Set("X-Report-Failed-Leases", strings.Join(ids, ","))
}

// FinancialSummary totals revenue for startDate..endDate
func (h *Handler) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	start, end, _, err := h.parseRange(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.reports.FinancialSummary(r.Context(), start, end))
}

// FinancialTrends buckets collected revenue by day or month
func (h *Handler) FinancialTrends(w http.ResponseWriter, r *http.Request) {
	start, end, interval, err := h.parseRange(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.reports.FinancialTrends(r.Context(), start, end, interval))
}

// OverduePayments lists overdue schedule items
func (h *Handler) OverduePayments(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.reports.OverduePayments(r.Context()))
}

// ExpiringLeases lists active leases ending within ?days= (default 60)
func (h *Handler) ExpiringLeases(w http.ResponseWriter, r *http.Request) {
	in := expiringQuery{Days: defaultExpiryWindow}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, r, badRequest(utils.ErrCodeValidation, "days must be a whole number", nil))
			return
		}
		in.Days = days
	}
	if err := h.validate.Struct(in); err != nil {
		h.respondError(w, r, badRequest(utils.ErrCodeValidation, "Invalid days", fieldErrors(err)))
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.reports.ExpiringLeases(r.Context(), in.Days))
}
