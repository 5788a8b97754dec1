package models

// Notification is an in-app notification for the current user
type Notification struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      string     `json:"link,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
}
