package domain

import "time"

// Role labels an operator's access level in the console.
type Role string

// Available roles.
const (
	// RoleAdmin may reach every page.
	RoleAdmin Role = "admin"

	// RoleDesigner may reach the project and schedule pages.
	RoleDesigner Role = "designer"

	// RoleGuest is the default for identities the directory does not
	// know. Guests see no pages.
	RoleGuest Role = "guest"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDesigner, RoleGuest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// AccessProfile describes what a signed-in identity may reach.
// Resolved by the access directory, keyed by account email.
type AccessProfile struct {
	// Email is the identity the profile was resolved for.
	Email string `json:"email"`
	// Role is the assigned role.
	Role Role `json:"role"`
	// Pages are the console pages the role may open.
	Pages []string `json:"pages"`
}

// AllowsPage reports whether the profile grants the named page.
func (p AccessProfile) AllowsPage(page string) bool {
	for _, pg := range p.Pages {
		if pg == page {
			return true
		}
	}
	return false
}

// AccessChange notifies subscribers that the directory changed and
// profiles should be re-resolved.
type AccessChange struct {
	// At is when the change was observed.
	At time.Time `json:"at"`
}
