package models

import "github.com/shopspring/decimal"

// LeaseStatus is the backend-owned lifecycle state of a lease.
// PENDING -> ACTIVE -> {EXPIRED | TERMINATED}.
type LeaseStatus string

const (
	LeaseStatusPending    LeaseStatus = "PENDING"
	LeaseStatusActive     LeaseStatus = "ACTIVE"
	LeaseStatusExpired    LeaseStatus = "EXPIRED"
	LeaseStatusTerminated LeaseStatus = "TERMINATED"
)

// Terminal reports whether no further transition is possible.
func (s LeaseStatus) Terminal() bool {
	return s == LeaseStatusExpired || s == LeaseStatusTerminated
}

// Lease is a read-only snapshot of a tenancy as returned by the backend
type Lease struct {
	ID              int64           `json:"id"`
	PropertyID      int64           `json:"propertyId"`
	PropertyTitle   string          `json:"propertyTitle"`
	PropertyAddress string          `json:"propertyAddress"`
	TenantID        int64           `json:"tenantId"`
	TenantName      string          `json:"tenantName"`
	TenantEmail     string          `json:"tenantEmail,omitempty"`
	TenantAvatarURL *string         `json:"tenantAvatarUrl"`
	LandlordID      int64           `json:"landlordId"`
	RentAmount      decimal.Decimal `json:"rentAmount"`
	Currency        string          `json:"currency"`
	StartDate       Date            `json:"startDate"`
	EndDate         Date            `json:"endDate"`
	Status          LeaseStatus     `json:"status"`
}

func (s *LeaseStatus) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b)
	*s = LeaseStatus(v)
	return err
}
