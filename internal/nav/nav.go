// Package nav holds the current screen and its parameters, and derives the
// breadcrumb trail. Navigation is unconditional: the machine never checks
// reachability or roles; screen gating belongs to the callers (see authz).
package nav

import "sync"

// Screen identifies one of the closed set of application screens.
type Screen string

const (
	ScreenLogin           Screen = "LOGIN"
	ScreenDashboard       Screen = "DASHBOARD"
	ScreenClaimsList      Screen = "CLAIMS_LIST"
	ScreenClaimDetail     Screen = "CLAIM_DETAIL"
	ScreenPoliciesList    Screen = "POLICIES_LIST"
	ScreenPolicyDetail    Screen = "POLICY_DETAIL"
	ScreenUsersList       Screen = "USERS_LIST"
	ScreenUserDetail      Screen = "USER_DETAIL"
	ScreenActivityLogs    Screen = "ACTIVITY_LOGS"
	ScreenSubmitClaimForm Screen = "SUBMIT_CLAIM_FORM"
	ScreenEditClaimForm   Screen = "EDIT_CLAIM_FORM"
)

// AllScreens returns the closed screen set.
func AllScreens() []Screen {
	return []Screen{
		ScreenLogin,
		ScreenDashboard,
		ScreenClaimsList,
		ScreenClaimDetail,
		ScreenPoliciesList,
		ScreenPolicyDetail,
		ScreenUsersList,
		ScreenUserDetail,
		ScreenActivityLogs,
		ScreenSubmitClaimForm,
		ScreenEditClaimForm,
	}
}

// Valid reports whether s is a member of the closed screen set.
func (s Screen) Valid() bool {
	for _, known := range AllScreens() {
		if s == known {
			return true
		}
	}
	return false
}

// View is the transient view state: current screen plus its parameters
// (e.g. the selected claim id). Replaced wholesale on each navigation.
type View struct {
	Screen Screen
	Params map[string]string
}

// Param returns the named parameter, or "".
func (v View) Param(key string) string {
	return v.Params[key]
}

// Machine is the process-wide view-state holder. The zero value is not
// usable; construct with NewMachine.
type Machine struct {
	mu   sync.RWMutex
	view View
}

// NewMachine returns a Machine positioned on the login screen.
func NewMachine() *Machine {
	return &Machine{view: View{Screen: ScreenLogin, Params: map[string]string{}}}
}

// Current returns the current view. The params map is copied so callers
// cannot mutate machine state through it.
func (m *Machine) Current() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return View{Screen: m.view.Screen, Params: copyParams(m.view.Params)}
}

// Navigate replaces the view state unconditionally. A nil params map is
// normalized to empty.
func (m *Machine) Navigate(screen Screen, params map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = View{Screen: screen, Params: copyParams(params)}
}

// Reset returns the machine to the login screen. Called on logout.
func (m *Machine) Reset() {
	m.Navigate(ScreenLogin, nil)
}

func copyParams(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
