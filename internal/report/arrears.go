package report

import (
	"context"
	"sort"

	"github.com/Dan9191/rent-portal/internal/models"
)

// OverduePayments lists every schedule item in OVERDUE status, most overdue first.
func (a *Aggregator) OverduePayments(ctx context.Context) Result[[]models.OverduePayment] {
	out := []models.OverduePayment{}

	loaded, failed, ok := a.load(ctx, "overdue_payments")
	if !ok {
		return Result[[]models.OverduePayment]{Data: out, FailedLeaseIDs: failed, LeasesUnavailable: true}
	}

	now := a.now()
	for _, ls := range loaded {
		for _, it := range ls.items {
			if it.Status != models.ScheduleStatusOverdue {
				continue
			}
			out = append(out, models.OverduePayment{
				LeaseID:       ls.lease.ID,
				ScheduleID:    it.ID,
				TenantName:    ls.lease.TenantName,
				TenantEmail:   ls.lease.TenantEmail,
				PropertyTitle: ls.lease.PropertyTitle,
				DueDate:       it.DueDate,
				DaysOverdue:   max(models.DaysBetween(it.DueDate.Time, now), 0),
				AmountDue:     it.AmountDue,
				AmountPaid:    it.AmountPaid,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysOverdue != out[j].DaysOverdue {
			return out[i].DaysOverdue > out[j].DaysOverdue
		}
		if out[i].LeaseID != out[j].LeaseID {
			return out[i].LeaseID < out[j].LeaseID
		}
		return out[i].DueDate.Before(out[j].DueDate.Time)
	})

	return Result[[]models.OverduePayment]{Data: out, FailedLeaseIDs: failed}
}

// ExpiringLeases lists ACTIVE leases whose end date is before now + days, soonest
// first. Only the lease list is fetched.
func (a *Aggregator) ExpiringLeases(ctx context.Context, days int) Result[[]models.ExpiringLease] {
	out := []models.ExpiringLease{}

	leases, ok := a.listLeases(ctx, "expiring_leases")
	if !ok {
		return Result[[]models.ExpiringLease]{Data: out, FailedLeaseIDs: []int64{}, LeasesUnavailable: true}
	}

	now := a.now()
	cutoff := now.AddDate(0, 0, days)
	for _, l := range leases {
		if l.Status != models.LeaseStatusActive || l.EndDate.IsZero() || !l.EndDate.Before(cutoff) {
			continue
		}
		out = append(out, models.ExpiringLease{
			LeaseID:       l.ID,
			PropertyTitle: l.PropertyTitle,
			TenantName:    l.TenantName,
			TenantEmail:   l.TenantEmail,
			EndDate:       l.EndDate,
			DaysRemaining: models.DaysBetween(now, l.EndDate.Time),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate.Time) {
			return out[i].EndDate.Before(out[j].EndDate.Time)
		}
		return out[i].LeaseID < out[j].LeaseID
	})

	return Result[[]models.ExpiringLease]{Data: out, FailedLeaseIDs: []int64{}}
}
