package authz

import (
	"testing"

	"claimflow/internal/nav"
	userdomain "claimflow/internal/user/domain"
)

func TestIsAllowed_NilUser(t *testing.T) {
	if IsAllowed(nil, userdomain.RoleAdmin) {
		t.Error("nil user must never be allowed")
	}
}

func TestIsAllowed_RoleInSet(t *testing.T) {
	u := &userdomain.User{ID: "usr-5", Role: userdomain.RoleAdmin}

	if !IsAllowed(u, userdomain.RoleAdmin, userdomain.RoleClaimsOfficer) {
		t.Error("admin should be allowed when ADMIN is in the set")
	}
}

func TestIsAllowed_RoleNotInSet(t *testing.T) {
	u := &userdomain.User{ID: "usr-1", Role: userdomain.RolePolicyholder}

	if IsAllowed(u, userdomain.RoleAdmin) {
		t.Error("policyholder should be denied an ADMIN-only action")
	}
}

func TestIsAllowed_EmptyRoleSet(t *testing.T) {
	u := &userdomain.User{ID: "usr-5", Role: userdomain.RoleAdmin}

	if IsAllowed(u) {
		t.Error("an empty required-role set denies everyone")
	}
}

func TestCanOpen_LoginRequiresNoUser(t *testing.T) {
	if !CanOpen(nil, nav.ScreenLogin) {
		t.Error("login screen must be open without a user")
	}
}

func TestCanOpen_DashboardRequiresAnyUser(t *testing.T) {
	if CanOpen(nil, nav.ScreenDashboard) {
		t.Error("dashboard must be closed without a user")
	}
	u := &userdomain.User{ID: "usr-4", Role: userdomain.RoleFinanceTeam}
	if !CanOpen(u, nav.ScreenDashboard) {
		t.Error("dashboard must be open to any authenticated role")
	}
}

func TestCanOpen_UsersListAdminOnly(t *testing.T) {
	officer := &userdomain.User{ID: "usr-2", Role: userdomain.RoleClaimsOfficer}
	admin := &userdomain.User{ID: "usr-5", Role: userdomain.RoleAdmin}

	if CanOpen(officer, nav.ScreenUsersList) {
		t.Error("claims officer must not open the users list")
	}
	if !CanOpen(admin, nav.ScreenUsersList) {
		t.Error("admin must open the users list")
	}
}

func TestCanOpen_PoliciesListOfficerOrAdmin(t *testing.T) {
	holder := &userdomain.User{ID: "usr-1", Role: userdomain.RolePolicyholder}
	officer := &userdomain.User{ID: "usr-2", Role: userdomain.RoleClaimsOfficer}

	if CanOpen(holder, nav.ScreenPoliciesList) {
		t.Error("policyholder must not open the policies list")
	}
	if !CanOpen(officer, nav.ScreenPoliciesList) {
		t.Error("claims officer must open the policies list")
	}
}

func TestCanOpen_ActivityLogsExcludesPolicyholder(t *testing.T) {
	holder := &userdomain.User{ID: "usr-1", Role: userdomain.RolePolicyholder}
	verifier := &userdomain.User{ID: "usr-3", Role: userdomain.RoleVerificationOfficer}

	if CanOpen(holder, nav.ScreenActivityLogs) {
		t.Error("policyholder must not open activity logs")
	}
	if !CanOpen(verifier, nav.ScreenActivityLogs) {
		t.Error("verification officer must open activity logs")
	}
}

func TestScreenRoles_EveryGatedScreenHasRoles(t *testing.T) {
	for _, s := range nav.AllScreens() {
		if s == nav.ScreenLogin {
			if ScreenRoles(s) != nil {
				t.Errorf("login should have no required roles")
			}
			continue
		}
		if len(ScreenRoles(s)) == 0 {
			t.Errorf("screen %s has no required roles", s)
		}
	}
}
