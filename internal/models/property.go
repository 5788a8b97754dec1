package models

import "github.com/shopspring/decimal"

// Property represents a rentable listing
type Property struct {
	ID            int64           `json:"id"`
	LandlordID    int64           `json:"landlordId"`
	ManagerID     *int64          `json:"managerId,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Address       string          `json:"address"`
	City          string          `json:"city,omitempty"`
	Price         decimal.Decimal `json:"price"`
	RentFrequency string          `json:"rentFrequency,omitempty"`
	Rooms         int             `json:"rooms"`
	Baths         int             `json:"baths"`
	Area          float64         `json:"area"`
	CoverPhotoURL string          `json:"coverPhotoUrl,omitempty"`
	PhotoURLs     []string        `json:"photoUrls,omitempty"`
	Status        string          `json:"status,omitempty"`
	CreatedAt     *Timestamp      `json:"createdAt,omitempty"`
}

// PropertyFilter narrows a property search. Zero values are not sent.
type PropertyFilter struct {
	City     string
	MinPrice string
	MaxPrice string
	Rooms    int
	Page     int
	Size     int
}

// PropertyRequest creates or updates a property
type PropertyRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Address       string          `json:"address"`
	City          string          `json:"city,omitempty"`
	Price         decimal.Decimal `json:"price"`
	RentFrequency string          `json:"rentFrequency,omitempty"`
	Rooms         int             `json:"rooms"`
	Baths         int             `json:"baths"`
	Area          float64         `json:"area"`
}

// PropertyManagerRequest assigns a property manager
type PropertyManagerRequest struct {
	ManagerID int64 `json:"managerId"`
}
