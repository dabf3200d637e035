package domain

import "time"

// Role drives what a user may see and do.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCarrier    Role = "transporteur"
	RoleCommercial Role = "commercial"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCarrier, RoleCommercial:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	CarrierID    *string `json:"carrierID,omitempty"` // set for transporteur accounts
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Viewer is the identity a request acts on behalf of.
type Viewer struct {
	UserID    string
	Role      Role
	CarrierID string
}

// MenuItem is an entry of the navigation menu.
type MenuItem string

const (
	MenuDeliveries MenuItem = "livraisons"
	MenuPrices     MenuItem = "prix"
	MenuMemo       MenuItem = "memo"
	MenuAccounts   MenuItem = "comptes"
)

// MenuFor returns the menu entries visible to role.
func MenuFor(role Role) []MenuItem {
	if role == RoleAdmin {
		return []MenuItem{MenuDeliveries, MenuPrices, MenuMemo, MenuAccounts}
	}
	return []MenuItem{MenuDeliveries, MenuMemo}
}
