package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/lib/pq"
)

// ErrDuplicateReminder is returned when the same reminder was already recorded.
var ErrDuplicateReminder = errors.New("reminder already recorded")

const uniqueViolation = "23505"

var schema = []string{
	`CREATE SCHEMA IF NOT EXISTS rental`,
	`CREATE TABLE IF NOT EXISTS rental.reminder_log (
		id BIGSERIAL PRIMARY KEY,
		lease_id BIGINT NOT NULL,
		schedule_id BIGINT NOT NULL DEFAULT 0,
		kind TEXT NOT NULL,
		recipient_fingerprint TEXT NOT NULL,
		recipient_sealed TEXT NOT NULL,
		sent_at TIMESTAMPTZ NOT NULL,
		UNIQUE (lease_id, schedule_id, kind, recipient_fingerprint)
	)`,
}

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the reminder log if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// HasReminder reports whether a reminder was already sent to the recipient
func (r *Repository) HasReminder(ctx context.Context, leaseID, scheduleID int64, kind models.ReminderKind, fingerprint string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM rental.reminder_log
			WHERE lease_id = $1 AND schedule_id = $2 AND kind = $3 AND recipient_fingerprint = $4
		)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, leaseID, scheduleID, string(kind), fingerprint).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up reminder: %w", err)
	}
	return exists, nil
}

// RecordReminder stores a sent reminder and fills in its id
func (r *Repository) RecordReminder(ctx context.Context, rem *models.Reminder) error {
	query := `
		INSERT INTO rental.reminder_log (lease_id, schedule_id, kind, recipient_fingerprint, recipient_sealed, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rem.LeaseID, rem.ScheduleID, string(rem.Kind), rem.RecipientFingerprint, rem.SealedRecipient, rem.SentAt,
	).Scan(&rem.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateReminder
	}
	if err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}
