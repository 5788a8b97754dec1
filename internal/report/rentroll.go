package report

import (
	"context"
	"sort"
	"time"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/shopspring/decimal"
)

// RentRoll returns one row per lease whose schedule was fetched, sorted by lease id.
// A lease with an empty schedule still gets a row: zero totals, no last or next
// payment, ON_TIME.
func (a *Aggregator) RentRoll(ctx context.Context) Result[[]models.RentRollItem] {
	loaded, failed, ok := a.load(ctx, "rent_roll")
	rows := make([]models.RentRollItem, 0, len(loaded))
	if !ok {
		return Result[[]models.RentRollItem]{Data: rows, FailedLeaseIDs: failed, LeasesUnavailable: true}
	}

	now := a.now()
	for _, ls := range loaded {
		rows = append(rows, rentRollItem(ls.lease, ls.items, now))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LeaseID < rows[j].LeaseID })

	return Result[[]models.RentRollItem]{Data: rows, FailedLeaseIDs: failed}
}

func rentRollItem(lease models.Lease, items []models.RentScheduleItem, now time.Time) models.RentRollItem {
	fin := models.RentRollFinancials{
		TotalPaid:         decimal.Zero,
		TotalDue:          decimal.Zero,
		LastPaymentAmount: decimal.Zero,
		NextDueAmount:     decimal.Zero,
	}

	var last, next *models.RentScheduleItem
	for i := range items {
		it := &items[i]
		fin.TotalPaid = fin.TotalPaid.Add(it.AmountPaid)
		fin.TotalDue = fin.TotalDue.Add(it.AmountDue)

		if it.AmountPaid.IsPositive() && it.PaidAt != nil {
			if last == nil || it.PaidAt.After(last.PaidAt.Time) {
				last = it
			}
		}
		if !it.Status.Settled() {
			if next == nil || it.DueDate.Before(next.DueDate.Time) {
				next = it
			}
		}
	}

	if last != nil {
		fin.LastPaymentDate = &models.Timestamp{Time: last.PaidAt.Time}
		fin.LastPaymentAmount = last.AmountPaid
	}
	if next != nil {
		due := next.DueDate
		fin.NextDueDate = &due
		fin.NextDueAmount = next.Outstanding()
		fin.DaysUntilDue = models.DaysBetween(now, due.Time)
	}

	return models.RentRollItem{
		LeaseID:         lease.ID,
		PropertyID:      lease.PropertyID,
		PropertyTitle:   lease.PropertyTitle,
		PropertyAddress: lease.PropertyAddress,
		TenantName:      lease.TenantName,
		TenantAvatarURL: lease.TenantAvatarURL,
		RentAmount:      lease.RentAmount,
		Currency:        lease.Currency,
		Financials:      fin,
		Status:          standing(next, now),
	}
}

// standing classifies a lease from its next unsettled item. An item due today is
// not yet past due.
func standing(next *models.RentScheduleItem, now time.Time) models.RentRollStatus {
	switch {
	case next == nil:
		return models.RentRollOnTime
	case next.Status == models.ScheduleStatusOverdue && next.DueDate.Before(models.DateOf(now).Time):
		return models.RentRollOverdue
	case next.Status == models.ScheduleStatusLate:
		return models.RentRollLate
	default:
		return models.RentRollOnTime
	}
}
