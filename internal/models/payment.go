package models

import "github.com/shopspring/decimal"

// Payment represents a recorded payment against a lease
type Payment struct {
	ID          int64           `json:"id"`
	LeaseID     int64           `json:"leaseId"`
	TenantID    int64           `json:"tenantId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Type        string          `json:"type,omitempty"`
	Method      string          `json:"method,omitempty"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	PaidAt      *Timestamp      `json:"paidAt"`
	CreatedAt   *Timestamp      `json:"createdAt,omitempty"`
}

// PaymentRequest creates or updates a payment
type PaymentRequest struct {
	LeaseID     int64           `json:"leaseId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
}

// PaymentSummary is the backend's per-lease payment overview
type PaymentSummary struct {
	LeaseID       int64           `json:"leaseId"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalDue      decimal.Decimal `json:"totalDue"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	NextDueDate   Date            `json:"nextDueDate"`
	NextDueAmount decimal.Decimal `json:"nextDueAmount"`
	PaymentsCount int             `json:"paymentsCount"`
	LastPaymentAt *Timestamp      `json:"lastPaymentAt"`
}
