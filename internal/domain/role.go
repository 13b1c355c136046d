package domain

import "strings"

// Role is the decoded authorization role. Every view and the order lifecycle
// consume this one resolution; nothing else compares raw role tokens.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleSeller
	RoleDashboardAdmin
)

// Raw role identifiers as they appear inside the token payload.
const (
	roleTokenCustomer  = "58D4CF0B-89BE-4630-A34A-6144C9E086FE"
	roleTokenSeller    = "D75D5E20-A13A-45CC-81C1-64A46C0B482A"
	roleTokenDashboard = "D04011B0-6F35-4DD6-89E8-99DCEB1D1B3D"
)

// ResolveRole maps a raw role token to its variant. Anything unrecognized is
// RoleUnknown; callers that gate views treat that as "render nothing".
func ResolveRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case roleTokenCustomer:
		return RoleCustomer
	case roleTokenSeller:
		return RoleSeller
	case roleTokenDashboard:
		return RoleDashboardAdmin
	default:
		return RoleUnknown
	}
}

// Token returns the wire identifier for a role, used when creating users.
func (r Role) Token() string {
	switch r {
	case RoleCustomer:
		return roleTokenCustomer
	case RoleSeller:
		return roleTokenSeller
	case RoleDashboardAdmin:
		return roleTokenDashboard
	default:
		return ""
	}
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Cliente"
	case RoleSeller:
		return "Admin"
	case RoleDashboardAdmin:
		return "Dashboard"
	default:
		return "Desconocido"
	}
}
