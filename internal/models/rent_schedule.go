package models

import "github.com/shopspring/decimal"

// ScheduleStatus is the state of a single rent due date.
// DUE -> {PAID | OVERDUE | LATE | WAIVED}; OVERDUE and LATE may still become PAID.
type ScheduleStatus string

const (
	ScheduleStatusDue     ScheduleStatus = "DUE"
	ScheduleStatusPaid    ScheduleStatus = "PAID"
	ScheduleStatusOverdue ScheduleStatus = "OVERDUE"
	ScheduleStatusLate    ScheduleStatus = "LATE"
	ScheduleStatusWaived  ScheduleStatus = "WAIVED"
)

// Settled reports whether nothing more is owed for the item.
func (s ScheduleStatus) Settled() bool {
	return s == ScheduleStatusPaid || s == ScheduleStatusWaived
}

// RentScheduleItem represents one scheduled rent due date of a lease
type RentScheduleItem struct {
	ID         int64           `json:"id"`
	LeaseID    int64           `json:"leaseId"`
	DueDate    Date            `json:"dueDate"`
	AmountDue  decimal.Decimal `json:"amountDue"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	PaidAt     *Timestamp      `json:"paidAt"`
	Status     ScheduleStatus  `json:"status"`
}

// Outstanding is amountDue - amountPaid, floored at zero.
func (i RentScheduleItem) Outstanding() decimal.Decimal {
	rest := i.AmountDue.Sub(i.AmountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// PayScheduleRequest records a payment against a schedule item.
type PayScheduleRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method,omitempty"`
	Note   string          `json:"note,omitempty"`
}

// WaiveScheduleRequest waives a schedule item.
type WaiveScheduleRequest struct {
	Reason string `json:"reason"`
}

func (s *ScheduleStatus) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b)
	*s = ScheduleStatus(v)
	return err
}
