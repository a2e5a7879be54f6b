package nav

import "testing"

func TestBreadcrumbs_DashboardIsHomeOnly(t *testing.T) {
	trail := Breadcrumbs(View{Screen: ScreenDashboard})

	if len(trail) != 1 {
		t.Fatalf("trail length = %d, want 1", len(trail))
	}
	if trail[0].Label != "Home" || trail[0].Screen != ScreenDashboard {
		t.Errorf("home crumb = %+v", trail[0])
	}
}

func TestBreadcrumbs_UnmappedScreenYieldsHome(t *testing.T) {
	trail := Breadcrumbs(View{Screen: ScreenLogin})

	if len(trail) != 1 || trail[0].Label != "Home" {
		t.Errorf("trail = %+v, want just Home", trail)
	}
}

func TestBreadcrumbs_ClaimsList(t *testing.T) {
	trail := Breadcrumbs(View{Screen: ScreenClaimsList})

	if len(trail) != 2 {
		t.Fatalf("trail length = %d, want 2", len(trail))
	}
	if trail[1].Label != "Claims" || trail[1].Screen != ScreenClaimsList {
		t.Errorf("claims crumb = %+v", trail[1])
	}
}

func TestBreadcrumbs_ClaimDetail(t *testing.T) {
	v := View{Screen: ScreenClaimDetail, Params: map[string]string{"claimId": "clm-3"}}

	trail := Breadcrumbs(v)

	if len(trail) != 3 {
		t.Fatalf("trail length = %d, want 3", len(trail))
	}
	if trail[2].Label != "Claim clm-3" {
		t.Errorf("label = %q, want %q", trail[2].Label, "Claim clm-3")
	}
	if trail[2].Screen != ScreenClaimDetail || trail[2].Params["claimId"] != "clm-3" {
		t.Errorf("claim crumb target = %+v", trail[2])
	}
}

func TestBreadcrumbs_EditClaimForm(t *testing.T) {
	v := View{Screen: ScreenEditClaimForm, Params: map[string]string{"claimId": "clm-7"}}

	trail := Breadcrumbs(v)

	if len(trail) != 4 {
		t.Fatalf("trail length = %d, want 4", len(trail))
	}
	if got := trail[3].Label; got != "Edit Claim" {
		t.Errorf("last label = %q, want %q", got, "Edit Claim")
	}
	third := trail[2]
	if third.Screen != ScreenClaimDetail {
		t.Errorf("third crumb screen = %s, want CLAIM_DETAIL", third.Screen)
	}
	if third.Params["claimId"] != "clm-7" {
		t.Errorf("third crumb params = %v, want claimId=clm-7", third.Params)
	}
}

func TestBreadcrumbs_SubmitClaimForm(t *testing.T) {
	trail := Breadcrumbs(View{Screen: ScreenSubmitClaimForm})

	if len(trail) != 3 {
		t.Fatalf("trail length = %d, want 3", len(trail))
	}
	if trail[1].Label != "Claims" || trail[2].Label != "Submit New Claim" {
		t.Errorf("trail = %+v", trail)
	}
}

func TestBreadcrumbs_AlwaysStartAtHome(t *testing.T) {
	for _, s := range AllScreens() {
		trail := Breadcrumbs(View{Screen: s, Params: map[string]string{}})
		if len(trail) == 0 || trail[0].Label != "Home" {
			t.Errorf("screen %s: trail does not start with Home: %+v", s, trail)
		}
		for i, c := range trail {
			if c.Screen == "" {
				t.Errorf("screen %s: crumb %d has no navigation target: %+v", s, i, c)
			}
		}
	}
}
