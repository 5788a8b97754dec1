package report

import (
	"context"
	"sort"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/shopspring/decimal"
)

// FinancialSummary totals schedule items due within [start, end] (calendar days,
// inclusive). Collected amounts count as revenue; the unpaid remainder of DUE and
// OVERDUE items counts as pending. Expenses are not tracked and are always zero.
func (a *Aggregator) FinancialSummary(ctx context.Context, start, end models.Date) Result[models.FinancialSummary] {
	summary := models.FinancialSummary{
		Currency:  a.currency,
		StartDate: start,
		EndDate:   end,
		Summary: models.FinancialTotals{
			TotalRevenue:   decimal.Zero,
			PendingRevenue: decimal.Zero,
			Expenses:       decimal.Zero,
			NetIncome:      decimal.Zero,
		},
	}

	loaded, failed, ok := a.load(ctx, "financial_summary")
	if !ok {
		return Result[models.FinancialSummary]{Data: summary, FailedLeaseIDs: failed, LeasesUnavailable: true}
	}
	summary.Currency = a.portfolioCurrency(loaded)

	totals := &summary.Summary

	for _, ls := range loaded {
		for _, it := range ls.items {
			if it.DueDate.Before(start.Time) || it.DueDate.After(end.Time) {
				continue
			}
			totals.TotalRevenue = totals.TotalRevenue.Add(it.AmountPaid)
			if it.Status == models.ScheduleStatusDue || it.Status == models.ScheduleStatusOverdue {
				totals.PendingRevenue = totals.PendingRevenue.Add(it.Outstanding())
			}
		}
	}
	totals.NetIncome = totals.TotalRevenue.Sub(totals.Expenses)

	return Result[models.FinancialSummary]{Data: summary, FailedLeaseIDs: failed}
}

// FinancialTrends buckets collected rent by the day or month it was paid. Only PAID
// items with a payment timestamp inside [start, end] are counted. Points are sorted
// by date; buckets without payments are omitted.
func (a *Aggregator) FinancialTrends(ctx context.Context, start, end models.Date, interval Interval) Result[[]models.FinancialTrendPoint] {
	points := []models.FinancialTrendPoint{}

	loaded, failed, ok := a.load(ctx, "financial_trends")
	if !ok {
		return Result[[]models.FinancialTrendPoint]{Data: points, FailedLeaseIDs: failed, LeasesUnavailable: true}
	}

	buckets := make(map[string]*models.FinancialTrendPoint)
	for _, ls := range loaded {
		for _, it := range ls.items {
			if it.Status != models.ScheduleStatusPaid || it.PaidAt == nil {
				continue
			}
			paid := models.DateOf(it.PaidAt.Time)
			if paid.Before(start.Time) || paid.After(end.Time) {
				continue
			}
			day := interval.bucket(paid)
			p, seen := buckets[day.String()]
			if !seen {
				p = &models.FinancialTrendPoint{
					Label:    interval.label(day),
					Date:     day,
					Revenue:  decimal.Zero,
					Expenses: decimal.Zero,
				}
				buckets[day.String()] = p
			}
			p.Revenue = p.Revenue.Add(it.AmountPaid)
		}
	}

	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date.Time) })

	return Result[[]models.FinancialTrendPoint]{Data: points, FailedLeaseIDs: failed}
}
