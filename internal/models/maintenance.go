package models

// MaintenanceRequest represents a tenant-submitted repair request
type MaintenanceRequest struct {
	ID            int64      `json:"id"`
	PropertyID    int64      `json:"propertyId"`
	PropertyTitle string     `json:"propertyTitle,omitempty"`
	TenantID      int64      `json:"tenantId"`
	TenantName    string     `json:"tenantName,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category,omitempty"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	ScheduledFor  *Timestamp `json:"scheduledFor,omitempty"`
	CreatedAt     *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt     *Timestamp `json:"updatedAt,omitempty"`
}

// MaintenanceCreateRequest submits a new request
type MaintenanceCreateRequest struct {
	PropertyID  int64  `json:"propertyId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// MaintenanceComment is one entry in a request's discussion
type MaintenanceComment struct {
	ID        int64      `json:"id"`
	AuthorID  int64      `json:"authorId"`
	Author    string     `json:"authorName,omitempty"`
	Body      string     `json:"content"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
}

// MaintenanceSummary counts requests by state for a landlord or manager
type MaintenanceSummary struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Scheduled  int `json:"scheduled"`
	Resolved   int `json:"resolved"`
	Urgent     int `json:"urgent"`
}

// MaintenanceAction names a workflow transition on a request
type MaintenanceAction string

const (
	MaintenanceAccept  MaintenanceAction = "accept"
	MaintenanceReject  MaintenanceAction = "reject"
	MaintenanceStart   MaintenanceAction = "start"
	MaintenanceResolve MaintenanceAction = "resolve"
	MaintenanceReopen  MaintenanceAction = "reopen"
)
