// Package session owns the authenticated session: the current user, the
// view-state reset on login/logout, and the live-update simulator's
// lifetime. The simulator runs only while a user is logged in.
package session

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	activitydomain "claimflow/internal/activity/domain"
	"claimflow/internal/audit"
	"claimflow/internal/nav"
	"claimflow/internal/simulator"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// ErrNoUserForRole is returned by Login when the dataset has no user with
// the selected role.
var ErrNoUserForRole = errors.New("no user with the selected role")

// Manager is the application shell's session state. Safe for use from the
// shell goroutine plus the simulator's tick callbacks.
type Manager struct {
	store    *store.Store
	nav      *nav.Machine
	sim      *simulator.Simulator
	activity audit.ActivityLogger
	log      *zap.Logger

	mu      sync.Mutex
	current *userdomain.User
	stopSim func()
}

// NewManager wires a session over the given collaborators. activity may be
// nil to skip login/logout activity entries.
func NewManager(st *store.Store, navM *nav.Machine, sim *simulator.Simulator, activity audit.ActivityLogger, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: st, nav: navM, sim: sim, activity: activity, log: log}
}

// Login selects the first dataset user with the given role (login is role
// selection, not authentication), navigates to the dashboard and starts
// the live-update simulator. Logging in over an existing session replaces
// it, stopping the previous simulator first.
func (m *Manager) Login(role userdomain.Role) (*userdomain.User, error) {
	u := m.store.Snapshot().UserByRole(role)
	if u == nil {
		return nil, ErrNoUserForRole
	}

	m.mu.Lock()
	if m.stopSim != nil {
		m.stopSim()
		m.stopSim = nil
	}
	m.current = u
	if m.sim != nil {
		m.stopSim = m.sim.Start()
	}
	m.mu.Unlock()

	m.nav.Navigate(nav.ScreenDashboard, nil)
	if m.activity != nil {
		m.activity.LogEvent(u, "User Logged In", activitydomain.EntitySystem, "", u.Name+" logged in.")
	}
	m.log.Info("session started", zap.String("user_id", u.ID), zap.String("role", string(role)))
	return u, nil
}

// Logout stops the simulator, clears the current user and returns the view
// state to the login screen. Safe to call without an active session.
func (m *Manager) Logout() {
	m.mu.Lock()
	u := m.current
	m.current = nil
	stop := m.stopSim
	m.stopSim = nil
	m.mu.Unlock()

	if stop != nil {
		stop()
	}
	m.nav.Reset()
	if u != nil {
		if m.activity != nil {
			m.activity.LogEvent(u, "User Logged Out", activitydomain.EntitySystem, "", u.Name+" logged out.")
		}
		m.log.Info("session ended", zap.String("user_id", u.ID))
	}
}

// CurrentUser returns the logged-in user, or nil.
func (m *Manager) CurrentUser() *userdomain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close tears the session down. Stopping the simulator is exactly-once
// even if Logout already ran.
func (m *Manager) Close() {
	m.mu.Lock()
	stop := m.stopSim
	m.stopSim = nil
	m.current = nil
	m.mu.Unlock()
	if stop != nil {
		stop()
	}
}
