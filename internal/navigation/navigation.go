// Package navigation describes what the portal shell shows for each role.
package navigation

import (
	"strings"

	"github.com/Dan9191/rent-portal/internal/auth"
)

// Variant selects the navbar layout.
type Variant string

const (
	VariantOwner  Variant = "owner"
	VariantTenant Variant = "tenant"
	VariantPublic Variant = "public"
)

// Tab is one navbar entry.
type Tab struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Descriptor is everything the shell needs to render navigation for a role.
type Descriptor struct {
	Role          auth.Role `json:"role"`
	Variant       Variant   `json:"variant"`
	Home          string    `json:"home"`
	Tabs          []Tab     `json:"tabs"`
	Notifications bool      `json:"notifications"`
	Profile       bool      `json:"profile"`
}

// Paths on which the navbar is hidden.
var hiddenOn = map[string]bool{
	"/login":           true,
	"/register":        true,
	"/messages":        true,
	"/forgot-password": true,
}

var registry = map[auth.Role]Descriptor{
	auth.RoleLandlord: {
		Variant:       VariantOwner,
		Home:          "/dashboard",
		Tabs:          tabs("Employees", "Properties", "Documents", "Messages", "Payments", "Requests"),
		Notifications: true,
		Profile:       true,
	},
	auth.RolePropertyManager: {
		Variant:       VariantOwner,
		Home:          "/dashboard",
		Tabs:          tabs("Properties", "Documents", "Messages", "Payments", "Requests"),
		Notifications: true,
		Profile:       true,
	},
	auth.RoleTenant: {
		Variant:       VariantTenant,
		Home:          "/rentals",
		Tabs:          tabs("Rentals", "Messages", "Payments", "Documents", "Profile"),
		Notifications: true,
		Profile:       true,
	},
	auth.RoleGuest: {
		Variant: VariantPublic,
		Home:    "/",
		Tabs: []Tab{
			{Label: "Search", Path: "/search"},
			{Label: "Login", Path: "/login"},
			{Label: "Sign up", Path: "/register"},
		},
	},
}

func tabs(labels ...string) []Tab {
	out := make([]Tab, len(labels))
	for i, label := range labels {
		out[i] = Tab{Label: label, Path: tabPath(label)}
	}
	return out
}

// Documents are scoped to a property, so the tab goes through the picker first.
func tabPath(label string) string {
	if label == "Documents" {
		return "/property/select?returnTo=documents"
	}
	return "/" + strings.ToLower(label)
}

// For returns the descriptor of role. Unknown roles get the guest descriptor.
func For(role auth.Role) Descriptor {
	d, ok := registry[role]
	if !ok {
		role = auth.RoleGuest
		d = registry[role]
	}
	d.Role = role
	d.Tabs = append([]Tab(nil), d.Tabs...)
	return d
}

// ShowNavbar reports whether the navbar is rendered on path.
func ShowNavbar(path string) bool {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return !hiddenOn[path]
}
