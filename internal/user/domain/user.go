// Package domain defines the user entity and the fixed role set.
package domain

// Role is a fixed category determining which screens and actions a user may access.
type Role string

const (
	RolePolicyholder        Role = "POLICYHOLDER"
	RoleClaimsOfficer       Role = "CLAIMS_OFFICER"
	RoleVerificationOfficer Role = "VERIFICATION_OFFICER"
	RoleFinanceTeam         Role = "FINANCE_TEAM"
	RoleAdmin               Role = "ADMIN"
)

// AllRoles returns the closed role set in login-screen order.
func AllRoles() []Role {
	return []Role{
		RolePolicyholder,
		RoleClaimsOfficer,
		RoleVerificationOfficer,
		RoleFinanceTeam,
		RoleAdmin,
	}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RolePolicyholder, RoleClaimsOfficer, RoleVerificationOfficer, RoleFinanceTeam, RoleAdmin:
		return true
	}
	return false
}

// Label returns the human-readable role name (e.g. "Claims Officer").
func (r Role) Label() string {
	switch r {
	case RolePolicyholder:
		return "Policyholder"
	case RoleClaimsOfficer:
		return "Claims Officer"
	case RoleVerificationOfficer:
		return "Verification Officer"
	case RoleFinanceTeam:
		return "Finance Team"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

// User is a directory entry. Immutable after generation; login is role
// selection, so there are no credentials.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
