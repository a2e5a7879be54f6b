// Package authz gates screens and actions by role. Enforcement is
// presentation-layer only: there is no server boundary behind it, so every
// privileged render and every privileged operation must call the gate
// itself (visibility checks alone are not enough).
package authz

import (
	"claimflow/internal/nav"
	userdomain "claimflow/internal/user/domain"
)

// IsAllowed reports whether u is non-nil and holds one of the required
// roles. Pure; an empty role set denies everyone.
func IsAllowed(u *userdomain.User, roles ...userdomain.Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// anyAuthenticated covers screens every logged-in role may open.
var anyAuthenticated = userdomain.AllRoles()

// screenRoles is the closed screen → required-roles table. Login is absent:
// it is the only screen that requires no user at all.
var screenRoles = map[nav.Screen][]userdomain.Role{
	nav.ScreenDashboard:       anyAuthenticated,
	nav.ScreenClaimsList:      anyAuthenticated,
	nav.ScreenClaimDetail:     anyAuthenticated,
	nav.ScreenSubmitClaimForm: {userdomain.RolePolicyholder},
	nav.ScreenEditClaimForm:   {userdomain.RoleClaimsOfficer, userdomain.RoleAdmin},
	nav.ScreenPoliciesList:    {userdomain.RoleAdmin, userdomain.RoleClaimsOfficer},
	nav.ScreenPolicyDetail:    {userdomain.RoleAdmin, userdomain.RoleClaimsOfficer},
	nav.ScreenUsersList:       {userdomain.RoleAdmin},
	nav.ScreenUserDetail:      {userdomain.RoleAdmin},
	nav.ScreenActivityLogs: {
		userdomain.RoleAdmin,
		userdomain.RoleClaimsOfficer,
		userdomain.RoleVerificationOfficer,
		userdomain.RoleFinanceTeam,
	},
}

// ScreenRoles returns the roles required to open a screen, or nil for
// screens that need no authentication (Login).
func ScreenRoles(s nav.Screen) []userdomain.Role {
	return screenRoles[s]
}

// CanOpen reports whether u may open the screen: Login is always open,
// every other screen requires one of its table roles.
func CanOpen(u *userdomain.User, s nav.Screen) bool {
	roles, ok := screenRoles[s]
	if !ok {
		return s == nav.ScreenLogin
	}
	return IsAllowed(u, roles...)
}
