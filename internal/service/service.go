package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/config"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/Dan9191/rent-portal/internal/report"
	"github.com/Dan9191/rent-portal/internal/repository"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/sirupsen/logrus"
)

// ErrNothingSwept is returned when neither report could list leases.
var ErrNothingSwept = errors.New("reminder sweep: leases unavailable")

// ReminderReports is satisfied by *report.Aggregator.
type ReminderReports interface {
	OverduePayments(ctx context.Context) report.Result[[]models.OverduePayment]
	ExpiringLeases(ctx context.Context, days int) report.Result[[]models.ExpiringLease]
}

// ReminderStore is satisfied by *repository.Repository.
type ReminderStore interface {
	HasReminder(ctx context.Context, leaseID, scheduleID int64, kind models.ReminderKind, fingerprint string) (bool, error)
	RecordReminder(ctx context.Context, rem *models.Reminder) error
}

// Notifier is satisfied by *email.Sender.
type Notifier interface {
	SendOverdueReminder(to string, p models.OverduePayment, currency string) error
	SendExpiryNotice(to string, l models.ExpiringLease) error
}

// SweepStats counts what one sweep did.
type SweepStats struct {
	Sent    int
	Skipped int
	Failed  int
	// Partial is set when some leases could not be read.
	Partial bool
}

// ReminderService emails tenants about overdue rent and leases about to end.
// Each (lease, schedule item, kind, recipient) is emailed at most once.
type ReminderService struct {
	reports    ReminderReports
	store      ReminderStore
	notifier   Notifier
	sealer     *utils.Sealer
	log        *logrus.Logger
	session    auth.Session
	noticeDays int
	currency   string
	now        func() time.Time
}

// NewReminderService runs the sweep under the configured service token with landlord scope.
func NewReminderService(reports ReminderReports, store ReminderStore, notifier Notifier, sealer *utils.Sealer, log *logrus.Logger, cfg *config.Config) *ReminderService {
	return &ReminderService{
		reports:  reports,
		store:    store,
		notifier: notifier,
		sealer:   sealer,
		log:      log,
		session: auth.Session{
			UserID: "reminder-sweep",
			Role:   auth.RoleLandlord,
			Token:  cfg.ServiceToken,
		},
		noticeDays: cfg.ExpiryNoticeDays,
		currency:   cfg.ReportCurrency,
		now:        time.Now,
	}
}

// Sweep sends every reminder that is due and not yet recorded.
func (s *ReminderService) Sweep(ctx context.Context) (SweepStats, error) {
	ctx = auth.NewContext(ctx, s.session)
	var stats SweepStats

	overdue := s.reports.OverduePayments(ctx)
	for _, p := range overdue.Data {
		s.remind(ctx, &stats, p.LeaseID, p.ScheduleID, models.ReminderOverduePayment, p.TenantEmail, func(to string) error {
			return s.notifier.SendOverdueReminder(to, p, s.currency)
		})
	}

	expiring := s.reports.ExpiringLeases(ctx, s.noticeDays)
	for _, l := range expiring.Data {
		s.remind(ctx, &stats, l.LeaseID, 0, models.ReminderLeaseExpiry, l.TenantEmail, func(to string) error {
			return s.notifier.SendExpiryNotice(to, l)
		})
	}

	stats.Partial = overdue.Partial() || expiring.Partial()
	s.log.WithFields(logrus.Fields{
		"sent":    stats.Sent,
		"skipped": stats.Skipped,
		"failed":  stats.Failed,
		"partial": stats.Partial,
	}).Info("Reminder sweep finished")

	if overdue.LeasesUnavailable && expiring.LeasesUnavailable {
		return stats, ErrNothingSwept
	}
	return stats, nil
}

func (s *ReminderService) remind(ctx context.Context, stats *SweepStats, leaseID, scheduleID int64, kind models.ReminderKind, to string, send func(to string) error) {
	log := s.log.WithFields(logrus.Fields{
		"lease_id":    leaseID,
		"schedule_id": scheduleID,
		"kind":        kind,
	})

	to = strings.TrimSpace(to)
	if to == "" {
		log.Debug("No tenant email, skipping reminder")
		stats.Skipped++
		return
	}
	fingerprint := s.sealer.Fingerprint(strings.ToLower(to))

	sent, err := s.store.HasReminder(ctx, leaseID, scheduleID, kind, fingerprint)
	if err != nil {
		log.WithError(err).Error("Failed to check reminder log")
		stats.Failed++
		return
	}
	if sent {
		stats.Skipped++
		return
	}

	sealed, err := s.sealer.Seal(to)
	if err != nil {
		log.WithError(err).Error("Failed to seal recipient")
		stats.Failed++
		return
	}
	if err := send(to); err != nil {
		log.WithError(err).Warn("Reminder not sent")
		stats.Failed++
		return
	}

	err = s.store.RecordReminder(ctx, &models.Reminder{
		LeaseID:              leaseID,
		ScheduleID:           scheduleID,
		Kind:                 kind,
		RecipientFingerprint: fingerprint,
		SealedRecipient:      sealed,
		SentAt:               s.now().UTC(),
	})
	switch {
	case errors.Is(err, repository.ErrDuplicateReminder):
		log.Warn("Reminder was recorded concurrently")
	case err != nil:
		log.WithError(err).Error("Reminder sent but not recorded")
	}
	stats.Sent++
}
