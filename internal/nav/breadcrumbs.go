package nav

// Crumb is one breadcrumb entry. Every crumb carries a navigation target,
// including the trailing entry for the current location.
type Crumb struct {
	Label  string
	Screen Screen
	Params map[string]string
}

// Breadcrumbs derives the breadcrumb trail for a view. The trail always
// starts with the Home/Dashboard entry; screens without a mapping yield
// just Home. Pure function of the view.
func Breadcrumbs(v View) []Crumb {
	home := Crumb{Label: "Home", Screen: ScreenDashboard}
	trail := []Crumb{home}
	claims := Crumb{Label: "Claims", Screen: ScreenClaimsList}
	policies := Crumb{Label: "Policies", Screen: ScreenPoliciesList}
	users := Crumb{Label: "Users", Screen: ScreenUsersList}

	switch v.Screen {
	case ScreenDashboard:
		// Home only.
	case ScreenClaimsList:
		trail = append(trail, claims)
	case ScreenClaimDetail:
		trail = append(trail, claims, claimCrumb(v.Param("claimId")))
	case ScreenPoliciesList:
		trail = append(trail, policies)
	case ScreenPolicyDetail:
		trail = append(trail, policies, Crumb{
			Label:  "Policy " + v.Param("policyId"),
			Screen: ScreenPolicyDetail,
			Params: map[string]string{"policyId": v.Param("policyId")},
		})
	case ScreenUsersList:
		trail = append(trail, users)
	case ScreenUserDetail:
		trail = append(trail, users, Crumb{
			Label:  "User " + v.Param("userId"),
			Screen: ScreenUserDetail,
			Params: map[string]string{"userId": v.Param("userId")},
		})
	case ScreenActivityLogs:
		trail = append(trail, Crumb{Label: "Activity Logs", Screen: ScreenActivityLogs})
	case ScreenSubmitClaimForm:
		trail = append(trail, claims, Crumb{Label: "Submit New Claim", Screen: ScreenSubmitClaimForm})
	case ScreenEditClaimForm:
		trail = append(trail, claims, claimCrumb(v.Param("claimId")), Crumb{
			Label:  "Edit Claim",
			Screen: ScreenEditClaimForm,
			Params: map[string]string{"claimId": v.Param("claimId")},
		})
	}
	return trail
}

func claimCrumb(claimID string) Crumb {
	return Crumb{
		Label:  "Claim " + claimID,
		Screen: ScreenClaimDetail,
		Params: map[string]string{"claimId": claimID},
	}
}
