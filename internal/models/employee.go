package models

// Employee is a member of a landlord's staff
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Position string `json:"position,omitempty"`
	Status   string `json:"status,omitempty"`
}
