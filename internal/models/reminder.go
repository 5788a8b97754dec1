package models

import "time"

// ReminderKind names what a tenant was reminded about.
type ReminderKind string

const (
	ReminderOverduePayment ReminderKind = "overdue_payment"
	ReminderLeaseExpiry    ReminderKind = "lease_expiry"
)

// Reminder is one sent email as recorded in the reminder log.
// ScheduleID is 0 for lease-level reminders.
type Reminder struct {
	ID                   int64
	LeaseID              int64
	ScheduleID           int64
	Kind                 ReminderKind
	RecipientFingerprint string
	SealedRecipient      string
	SentAt               time.Time
}
