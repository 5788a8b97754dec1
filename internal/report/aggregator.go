// Package report builds portfolio reports from per-lease rent schedules.
//
// Every report lists the caller's leases, fetches each lease's schedule in one
// bounded concurrent batch and reduces the results once the batch is done. A lease
// whose schedule cannot be fetched is logged and left out; a failed lease list yields
// an empty report. Neither case is returned as an error: both are recorded on the
// Result so callers can tell "no data" from "some data lost".
package report

import (
	"context"
	"sort"
	"time"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// LeaseLister returns the caller's leases (satisfied by *api.Leases).
type LeaseLister interface {
	List(ctx context.Context) ([]models.Lease, error)
}

// ScheduleFetcher returns one lease's rent schedule (satisfied by *api.RentSchedules).
type ScheduleFetcher interface {
	ForLease(ctx context.Context, leaseID int64) ([]models.RentScheduleItem, error)
}

// Result wraps report data with what could not be included.
type Result[T any] struct {
	Data T `json:"data"`
	// FailedLeaseIDs are the leases whose schedule fetch failed, ascending.
	FailedLeaseIDs []int64 `json:"failedLeaseIds"`
	// LeasesUnavailable is set when the lease list itself could not be loaded.
	LeasesUnavailable bool `json:"leasesUnavailable"`
}

// Partial reports whether any input was lost.
func (r Result[T]) Partial() bool {
	return r.LeasesUnavailable || len(r.FailedLeaseIDs) > 0
}

// Aggregator computes the landlord reports.
type Aggregator struct {
	leases      LeaseLister
	schedules   ScheduleFetcher
	log         *logrus.Logger
	now         func() time.Time
	currency    string
	concurrency int
}

type Option func(*Aggregator)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithConcurrency bounds the number of schedule requests in flight.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithCurrency sets the currency reported when leases disagree or carry none.
func WithCurrency(c string) Option {
	return func(a *Aggregator) { a.currency = c }
}

func NewAggregator(leases LeaseLister, schedules ScheduleFetcher, log *logrus.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		leases:      leases,
		schedules:   schedules,
		log:         log,
		now:         time.Now,
		currency:    "USD",
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type leaseSchedule struct {
	lease models.Lease
	items []models.RentScheduleItem
}

// listLeases loads the lease list, logging a failure.
func (a *Aggregator) listLeases(ctx context.Context, report string) ([]models.Lease, bool) {
	leases, err := a.leases.List(ctx)
	if err != nil {
		a.log.WithError(err).WithField("report", report).Error("Failed to load leases")
		return nil, false
	}
	return leases, true
}

// loadSchedules fetches every lease's schedule. Each goroutine writes only its own
// slot, so the batch shares no mutable state.
func (a *Aggregator) loadSchedules(ctx context.Context, report string, leases []models.Lease) ([]leaseSchedule, []int64) {
	type slot struct {
		items []models.RentScheduleItem
		err   error
	}
	slots := make([]slot, len(leases))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, lease := range leases {
		i, lease := i, lease
		g.Go(func() error {
			items, err := a.schedules.ForLease(ctx, lease.ID)
			slots[i] = slot{items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()

	loaded := make([]leaseSchedule, 0, len(leases))
	failed := []int64{}
	for i, s := range slots {
		if s.err != nil {
			a.log.WithFields(logrus.Fields{
				"report":   report,
				"lease_id": leases[i].ID,
			}).WithError(s.err).Warn("Dropping lease: rent schedule unavailable")
			failed = append(failed, leases[i].ID)
			continue
		}
		loaded = append(loaded, leaseSchedule{lease: leases[i], items: s.items})
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	return loaded, failed
}

// load lists leases and their schedules. ok is false when the lease list failed.
func (a *Aggregator) load(ctx context.Context, report string) (loaded []leaseSchedule, failed []int64, ok bool) {
	leases, ok := a.listLeases(ctx, report)
	if !ok {
		return nil, []int64{}, false
	}
	loaded, failed = a.loadSchedules(ctx, report, leases)
	return loaded, failed, true
}

// portfolioCurrency is the leases' shared currency, or the configured one.
func (a *Aggregator) portfolioCurrency(loaded []leaseSchedule) string {
	currency := ""
	for _, ls := range loaded {
		switch {
		case ls.lease.Currency == "":
			continue
		case currency == "":
			currency = ls.lease.Currency
		case currency != ls.lease.Currency:
			return a.currency
		}
	}
	if currency == "" {
		return a.currency
	}
	return currency
}
