package models

import "github.com/shopspring/decimal"

// RentRollStatus classifies a lease's current standing.
// PAID_AHEAD is intentionally absent: nothing in the schedule data can produce it.
type RentRollStatus string

const (
	RentRollOnTime  RentRollStatus = "ON_TIME"
	RentRollOverdue RentRollStatus = "OVERDUE"
	RentRollLate    RentRollStatus = "LATE"
)

// RentRollItem represents one lease's payment history and current standing
type RentRollItem struct {
	LeaseID         int64              `json:"leaseId"`
	PropertyID      int64              `json:"propertyId"`
	PropertyTitle   string             `json:"propertyTitle"`
	PropertyAddress string             `json:"propertyAddress"`
	TenantName      string             `json:"tenantName"`
	TenantAvatarURL *string            `json:"tenantAvatarUrl"`
	RentAmount      decimal.Decimal    `json:"rentAmount"`
	Currency        string             `json:"currency"`
	Financials      RentRollFinancials `json:"financials"`
	Status          RentRollStatus     `json:"status"`
}

// RentRollFinancials aggregates a lease's rent schedule
type RentRollFinancials struct {
	TotalPaid         decimal.Decimal `json:"totalPaidYTD"`
	TotalDue          decimal.Decimal `json:"totalDueYTD"`
	LastPaymentDate   *Timestamp      `json:"lastPaymentDate"`
	LastPaymentAmount decimal.Decimal `json:"lastPaymentAmount"`
	NextDueDate       *Date           `json:"nextDueDate"`
	NextDueAmount     decimal.Decimal `json:"nextDueAmount"`
	DaysUntilDue      int             `json:"daysUntilDue"`
}

// FinancialSummary represents portfolio revenue over a date range
type FinancialSummary struct {
	Currency  string          `json:"currency"`
	StartDate Date            `json:"startDate"`
	EndDate   Date            `json:"endDate"`
	Summary   FinancialTotals `json:"summary"`
}

// FinancialTotals are the money figures of a FinancialSummary
type FinancialTotals struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	NetIncome      decimal.Decimal `json:"netIncome"`
}

// FinancialTrendPoint is one bucket of collected revenue
type FinancialTrendPoint struct {
	Label    string          `json:"label"` // "Jan 2024" or "02 Jan"
	Date     Date            `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// OverduePayment is a single overdue schedule item
type OverduePayment struct {
	LeaseID       int64           `json:"leaseId"`
	ScheduleID    int64           `json:"scheduleId"`
	TenantName    string          `json:"tenantName"`
	TenantEmail   string          `json:"-"`
	PropertyTitle string          `json:"propertyTitle"`
	DueDate       Date            `json:"dueDate"`
	DaysOverdue   int             `json:"daysOverdue"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
}

// ExpiringLease is an active lease ending inside the look-ahead window
type ExpiringLease struct {
	LeaseID       int64  `json:"leaseId"`
	PropertyTitle string `json:"propertyTitle"`
	TenantName    string `json:"tenantName"`
	TenantEmail   string `json:"-"`
	EndDate       Date   `json:"endDate"`
	DaysRemaining int    `json:"daysRemaining"`
}
