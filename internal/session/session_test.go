package session

import (
	"errors"
	"testing"
	"time"

	"claimflow/internal/audit"
	"claimflow/internal/nav"
	"claimflow/internal/simulator"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// fakeActivityLogger records actions for assertion.
type fakeActivityLogger struct {
	actions []string
}

func (f *fakeActivityLogger) LogEvent(actor *userdomain.User, action, entityType, entityID, details string) {
	f.actions = append(f.actions, action)
}

func fixtureStore() *store.Store {
	return store.New(&store.Dataset{
		Users: []*userdomain.User{
			{ID: "usr-1", Name: "Alice Smith", Role: userdomain.RolePolicyholder},
			{ID: "usr-2", Name: "Bob Johnson", Role: userdomain.RoleClaimsOfficer},
		},
	})
}

func newManager(st *store.Store, activity *fakeActivityLogger) (*Manager, *nav.Machine) {
	navM := nav.NewMachine()
	sim := simulator.New(st, simulator.Config{Interval: time.Hour, MutationRate: 0}, nil)
	// A typed nil pointer must not reach the interface parameter: it would
	// compare non-nil and LogEvent would run on a nil receiver.
	var al audit.ActivityLogger
	if activity != nil {
		al = activity
	}
	return NewManager(st, navM, sim, al, nil), navM
}

func TestLogin_SelectsUserAndNavigatesToDashboard(t *testing.T) {
	activity := &fakeActivityLogger{}
	m, navM := newManager(fixtureStore(), activity)
	defer m.Close()

	u, err := m.Login(userdomain.RoleClaimsOfficer)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if u.ID != "usr-2" {
		t.Errorf("user = %s, want usr-2", u.ID)
	}
	if got := m.CurrentUser(); got == nil || got.ID != "usr-2" {
		t.Errorf("CurrentUser() = %+v, want usr-2", got)
	}
	if v := navM.Current(); v.Screen != nav.ScreenDashboard {
		t.Errorf("screen = %s, want DASHBOARD", v.Screen)
	}
	if len(activity.actions) != 1 || activity.actions[0] != "User Logged In" {
		t.Errorf("activity actions = %v", activity.actions)
	}
}

func TestLogin_NoUserForRole(t *testing.T) {
	st := store.New(&store.Dataset{Users: []*userdomain.User{
		{ID: "usr-1", Name: "Alice Smith", Role: userdomain.RolePolicyholder},
	}})
	m, navM := newManager(st, nil)
	defer m.Close()

	if _, err := m.Login(userdomain.RoleAdmin); !errors.Is(err, ErrNoUserForRole) {
		t.Errorf("err = %v, want ErrNoUserForRole", err)
	}
	if m.CurrentUser() != nil {
		t.Error("failed login must not set the current user")
	}
	if v := navM.Current(); v.Screen != nav.ScreenLogin {
		t.Errorf("screen = %s, want LOGIN", v.Screen)
	}
}

func TestLogin_ReplacesExistingSession(t *testing.T) {
	m, _ := newManager(fixtureStore(), nil)
	defer m.Close()

	if _, err := m.Login(userdomain.RolePolicyholder); err != nil {
		t.Fatalf("first Login: %v", err)
	}
	u, err := m.Login(userdomain.RoleClaimsOfficer)
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}

	if u.ID != "usr-2" || m.CurrentUser().ID != "usr-2" {
		t.Errorf("session not replaced, current = %+v", m.CurrentUser())
	}
}

func TestLogout_ClearsSessionAndResetsView(t *testing.T) {
	activity := &fakeActivityLogger{}
	m, navM := newManager(fixtureStore(), activity)
	defer m.Close()

	if _, err := m.Login(userdomain.RolePolicyholder); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout()

	if m.CurrentUser() != nil {
		t.Error("CurrentUser() != nil after logout")
	}
	if v := navM.Current(); v.Screen != nav.ScreenLogin {
		t.Errorf("screen = %s, want LOGIN", v.Screen)
	}
	if len(activity.actions) != 2 || activity.actions[1] != "User Logged Out" {
		t.Errorf("activity actions = %v", activity.actions)
	}
}

func TestLogout_WithoutSessionIsSafe(t *testing.T) {
	activity := &fakeActivityLogger{}
	m, _ := newManager(fixtureStore(), activity)
	defer m.Close()

	m.Logout()

	if len(activity.actions) != 0 {
		t.Errorf("activity actions = %v, want none", activity.actions)
	}
}

func TestSessionOps_NilActivityLogger(t *testing.T) {
	m, _ := newManager(fixtureStore(), nil)
	defer m.Close()

	if _, err := m.Login(userdomain.RolePolicyholder); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout()
}

func TestClose_AfterLogoutIsSafe(t *testing.T) {
	m, _ := newManager(fixtureStore(), nil)

	if _, err := m.Login(userdomain.RolePolicyholder); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout()
	m.Close()
	m.Close()
}
