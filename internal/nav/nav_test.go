package nav

import "testing"

func TestNewMachine_StartsAtLogin(t *testing.T) {
	m := NewMachine()

	v := m.Current()
	if v.Screen != ScreenLogin {
		t.Errorf("initial screen = %s, want LOGIN", v.Screen)
	}
	if len(v.Params) != 0 {
		t.Errorf("initial params = %v, want empty", v.Params)
	}
}

func TestNavigate_ReplacesStateWholesale(t *testing.T) {
	m := NewMachine()
	m.Navigate(ScreenClaimDetail, map[string]string{"claimId": "clm-3"})

	m.Navigate(ScreenDashboard, nil)

	v := m.Current()
	if v.Screen != ScreenDashboard {
		t.Errorf("screen = %s, want DASHBOARD", v.Screen)
	}
	if len(v.Params) != 0 {
		t.Errorf("params = %v, want empty; navigation must not merge params", v.Params)
	}
}

func TestNavigate_NoRoleOrReachabilityGuard(t *testing.T) {
	// The machine is deliberately unguarded; gating is the caller's job.
	m := NewMachine()

	m.Navigate(ScreenUsersList, nil)

	if m.Current().Screen != ScreenUsersList {
		t.Error("navigate must be unconditional")
	}
}

func TestCurrent_ParamsAreCopied(t *testing.T) {
	m := NewMachine()
	m.Navigate(ScreenClaimDetail, map[string]string{"claimId": "clm-3"})

	v := m.Current()
	v.Params["claimId"] = "clm-9"

	if got := m.Current().Param("claimId"); got != "clm-3" {
		t.Errorf("machine param mutated through snapshot: %q", got)
	}
}

func TestReset_ReturnsToLogin(t *testing.T) {
	m := NewMachine()
	m.Navigate(ScreenDashboard, nil)

	m.Reset()

	if m.Current().Screen != ScreenLogin {
		t.Error("reset should return to LOGIN")
	}
}

func TestScreen_Valid(t *testing.T) {
	for _, s := range AllScreens() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Screen("SETTINGS").Valid() {
		t.Error("unknown screen should be invalid")
	}
}
