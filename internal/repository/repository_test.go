package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(`CREATE SCHEMA IF NOT EXISTS rental`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS rental\.reminder_log`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaError(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(`CREATE SCHEMA`).WillReturnError(errors.New("permission denied"))

	err := repo.EnsureSchema(context.Background())
	assert.ErrorContains(t, err, "permission denied")
}

func TestHasReminder(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7), int64(70), "overdue_payment", "fp").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasReminder(context.Background(), 7, 70, models.ReminderOverduePayment, "fp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReminder(t *testing.T) {
	repo, mock := newMock(t)
	sentAt := time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO rental\.reminder_log`).
		WithArgs(int64(7), int64(0), "lease_expiry", "fp", "sealed", sentAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	rem := &models.Reminder{
		LeaseID:              7,
		Kind:                 models.ReminderLeaseExpiry,
		RecipientFingerprint: "fp",
		SealedRecipient:      "sealed",
		SentAt:               sentAt,
	}
	require.NoError(t, repo.RecordReminder(context.Background(), rem))
	assert.Equal(t, int64(42), rem.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReminderDuplicate(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO rental\.reminder_log`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	err := repo.RecordReminder(context.Background(), &models.Reminder{LeaseID: 1, Kind: models.ReminderOverduePayment})
	assert.ErrorIs(t, err, ErrDuplicateReminder)
}
