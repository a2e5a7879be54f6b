// Package views renders each screen as text. Renderers are pure functions
// of (dataset, view state, current user, now): they never mutate the
// dataset and reach it only through the contracts of the core packages.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	activitydomain "claimflow/internal/activity/domain"
	claimdomain "claimflow/internal/claim/domain"
	"claimflow/internal/authz"
	"claimflow/internal/nav"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// Render dispatches to the renderer for the current screen. Screens whose
// role gate fails render the access-denied notice; the session itself is
// never aborted.
func Render(ds *store.Dataset, v nav.View, u *userdomain.User, now time.Time) string {
	if !authz.CanOpen(u, v.Screen) {
		return AccessDenied(v)
	}
	switch v.Screen {
	case nav.ScreenLogin:
		return Login()
	case nav.ScreenDashboard:
		return Dashboard(ds, v, u)
	case nav.ScreenClaimsList:
		return ClaimsList(ds, v, u, now)
	case nav.ScreenClaimDetail:
		return ClaimDetail(ds, v, u, now)
	case nav.ScreenPoliciesList:
		return PoliciesList(ds, v)
	case nav.ScreenPolicyDetail:
		return PolicyDetail(ds, v)
	case nav.ScreenUsersList:
		return UsersList(ds, v)
	case nav.ScreenUserDetail:
		return UserDetail(ds, v)
	case nav.ScreenActivityLogs:
		return ActivityLogs(ds, v, u)
	case nav.ScreenSubmitClaimForm:
		return SubmitClaimForm(ds, v, u, nil)
	case nav.ScreenEditClaimForm:
		return EditClaimForm(ds, v, nil)
	}
	return placeholder(v)
}

// AccessDenied is the recoverable authorization-failure screen.
func AccessDenied(v nav.View) string {
	return fmt.Sprintf("Access Denied: you do not have permission to view %s.\n", v.Screen)
}

func placeholder(v nav.View) string {
	return fmt.Sprintf("This is a placeholder for the %s screen.\n", v.Screen)
}

func header(v nav.View, title string) string {
	var b strings.Builder
	crumbs := nav.Breadcrumbs(v)
	labels := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		labels = append(labels, c.Label)
	}
	b.WriteString(strings.Join(labels, " / "))
	b.WriteString("\n== " + title + " ==\n")
	return b.String()
}

// Login lists the role-selection options.
func Login() string {
	var b strings.Builder
	b.WriteString("Welcome to ClaimFlow\nSelect your role to log in:\n")
	for _, r := range userdomain.AllRoles() {
		fmt.Fprintf(&b, "  - %s\n", r.Label())
	}
	return b.String()
}

// visibleClaims scopes claims by role: policyholders see only their own.
func visibleClaims(ds *store.Dataset, u *userdomain.User) []*claimdomain.Claim {
	if u == nil {
		return nil
	}
	if u.Role != userdomain.RolePolicyholder {
		return ds.Claims
	}
	var out []*claimdomain.Claim
	for _, c := range ds.Claims {
		if c.PolicyholderID == u.ID {
			out = append(out, c)
		}
	}
	return out
}

func recentActivity(ds *store.Dataset, u *userdomain.User, limit int) []*activitydomain.Entry {
	entries := make([]*activitydomain.Entry, 0, len(ds.Activity))
	for _, e := range ds.Activity {
		if u != nil && u.Role == userdomain.RolePolicyholder && e.UserID != u.ID {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Dashboard shows the KPI counters and the most recent activities.
func Dashboard(ds *store.Dataset, v nav.View, u *userdomain.User) string {
	claims := visibleClaims(ds, u)
	var pending, approved int
	var settledTotal int64
	for _, c := range claims {
		switch c.Status {
		case claimdomain.StatusSubmitted, claimdomain.StatusInReview, claimdomain.StatusPendingDocs:
			pending++
		case claimdomain.StatusApproved:
			approved++
		case claimdomain.StatusSettled:
			settledTotal += c.AmountSettled
		}
	}

	var b strings.Builder
	b.WriteString(header(v, "Dashboard"))
	if authz.IsAllowed(u, userdomain.RolePolicyholder) {
		b.WriteString("[Submit New Claim]\n")
	}
	fmt.Fprintf(&b, "Total Claims: %d\n", len(claims))
	fmt.Fprintf(&b, "Claims In Progress: %d\n", pending)
	fmt.Fprintf(&b, "Approved Claims: %d\n", approved)
	fmt.Fprintf(&b, "Total Amount Settled: $%d\n", settledTotal)
	b.WriteString("Recent Activities:\n")
	recent := recentActivity(ds, u, 10)
	if len(recent) == 0 {
		b.WriteString("  No recent activities.\n")
	}
	for _, e := range recent {
		fmt.Fprintf(&b, "  %s  %s %s\n", e.Timestamp.Format(time.RFC3339), e.UserName, e.Details)
	}
	return b.String()
}

// ClaimsList renders the role-scoped claim cards. Freshly mutated claims
// carry a leading "*" marker; statuses are the derived display labels.
func ClaimsList(ds *store.Dataset, v nav.View, u *userdomain.User, now time.Time) string {
	var b strings.Builder
	b.WriteString(header(v, "Claims"))
	claims := visibleClaims(ds, u)
	if len(claims) == 0 {
		b.WriteString("No claims found for your role.\n")
		if authz.IsAllowed(u, userdomain.RolePolicyholder) {
			b.WriteString("[Submit Your First Claim]\n")
		}
		return b.String()
	}
	for _, c := range claims {
		marker := " "
		if c.Highlighted {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  policy=%s  holder=%s  submitted=%s  status=%s  amount=$%d\n",
			marker, c.ClaimNumber, c.PolicyNumber, c.PolicyholderName,
			c.SubmissionDate.Format("2006-01-02"), c.DisplayStatus(now), c.AmountRequested)
		if c.SLABreached(now) {
			fmt.Fprintf(&b, "    SLA Breached! Due: %s\n", c.SLADueDate.Format("2006-01-02"))
		}
	}
	return b.String()
}

// ClaimDetail renders one claim, or the not-found screen with a navigation
// escape hatch when the id does not resolve.
func ClaimDetail(ds *store.Dataset, v nav.View, u *userdomain.User, now time.Time) string {
	c := ds.ClaimByID(v.Param("claimId"))
	if c == nil {
		return NotFound(v, "Claim")
	}

	var b strings.Builder
	b.WriteString(header(v, "Claim "+c.ClaimNumber))
	if authz.IsAllowed(u, userdomain.RoleClaimsOfficer, userdomain.RoleAdmin) && !c.Status.Terminal() {
		b.WriteString("[Edit Claim]\n")
	}
	fmt.Fprintf(&b, "Policy Number: %s\n", c.PolicyNumber)
	fmt.Fprintf(&b, "Policyholder: %s\n", c.PolicyholderName)
	fmt.Fprintf(&b, "Submission Date: %s\n", c.SubmissionDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Incident Date: %s\n", c.IncidentDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Amount Requested: $%d\n", c.AmountRequested)
	if c.Status == claimdomain.StatusSettled {
		fmt.Fprintf(&b, "Amount Settled: $%d\n", c.AmountSettled)
	}
	fmt.Fprintf(&b, "Current Status: %s\n", c.DisplayStatus(now))
	fmt.Fprintf(&b, "Workflow Stage: %s\n", c.WorkflowStage)
	slaState := "On Track"
	if c.SLABreached(now) {
		slaState = "Breached"
	}
	fmt.Fprintf(&b, "SLA Due Date: %s (%s)\n", c.SLADueDate.Format("2006-01-02"), slaState)
	fmt.Fprintf(&b, "Notes: %s\n", c.Notes)

	b.WriteString("Documents:\n")
	if len(c.Documents) == 0 {
		b.WriteString("  No documents uploaded.\n")
	}
	for _, d := range c.Documents {
		fmt.Fprintf(&b, "  - %s (%s)\n", d.Name, d.Kind)
	}
	if authz.IsAllowed(u, userdomain.RolePolicyholder, userdomain.RoleClaimsOfficer) {
		b.WriteString("[Upload Document]\n")
	}

	if authz.IsAllowed(u, userdomain.RoleAdmin, userdomain.RoleClaimsOfficer,
		userdomain.RoleVerificationOfficer, userdomain.RoleFinanceTeam) {
		b.WriteString("Audit Trail:\n")
		for _, e := range c.AuditLog {
			fmt.Fprintf(&b, "  %s  %s: %s\n", e.Timestamp.Format(time.RFC3339), e.UserName, e.Action)
		}
	}
	return b.String()
}

// NotFound is the recoverable lookup-miss screen.
func NotFound(v nav.View, what string) string {
	var b strings.Builder
	b.WriteString(header(v, what+" not found"))
	fmt.Fprintf(&b, "%s not found.\n[Back to %s]\n", what, nav.ScreenClaimsList)
	return b.String()
}

// PoliciesList renders all policies.
func PoliciesList(ds *store.Dataset, v nav.View) string {
	var b strings.Builder
	b.WriteString(header(v, "Policies"))
	if len(ds.Policies) == 0 {
		b.WriteString("No policies found.\n")
	}
	for _, p := range ds.Policies {
		fmt.Fprintf(&b, "%s  type=%s  holder=%s  start=%s  end=%s  coverage=$%d\n",
			p.PolicyNumber, p.Type, p.PolicyholderName,
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), p.CoverageAmount)
	}
	return b.String()
}

// PolicyDetail renders one policy.
func PolicyDetail(ds *store.Dataset, v nav.View) string {
	p := ds.PolicyByID(v.Param("policyId"))
	if p == nil {
		return NotFound(v, "Policy")
	}
	var b strings.Builder
	b.WriteString(header(v, "Policy "+p.PolicyNumber))
	fmt.Fprintf(&b, "Type: %s\nPolicyholder: %s\nStart: %s\nEnd: %s\nCoverage: $%d\n",
		p.Type, p.PolicyholderName,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), p.CoverageAmount)
	return b.String()
}

// UsersList renders the user directory.
func UsersList(ds *store.Dataset, v nav.View) string {
	var b strings.Builder
	b.WriteString(header(v, "Users"))
	for _, u := range ds.Users {
		fmt.Fprintf(&b, "%s  email=%s  role=%s\n", u.Name, u.Email, u.Role.Label())
	}
	return b.String()
}

// UserDetail renders one user.
func UserDetail(ds *store.Dataset, v nav.View) string {
	u := ds.UserByID(v.Param("userId"))
	if u == nil {
		return NotFound(v, "User")
	}
	var b strings.Builder
	b.WriteString(header(v, u.Name))
	fmt.Fprintf(&b, "Email: %s\nRole: %s\n", u.Email, u.Role.Label())
	return b.String()
}

// ActivityLogs renders the system activity log, newest first.
func ActivityLogs(ds *store.Dataset, v nav.View, u *userdomain.User) string {
	var b strings.Builder
	b.WriteString(header(v, "System Activity Logs"))
	entries := recentActivity(ds, u, len(ds.Activity))
	if len(entries) == 0 {
		b.WriteString("No activity logs found.\n")
	}
	for _, e := range entries {
		target := e.EntityType
		if e.EntityID != "" {
			target += " " + e.EntityID
		}
		fmt.Fprintf(&b, "%s  %s %s on %s: %s\n",
			e.Timestamp.Format(time.RFC3339), e.UserName, e.Action, target, e.Details)
	}
	return b.String()
}
