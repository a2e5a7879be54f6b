// Package seed builds the initial randomized dataset. Structure is
// deterministic (counts, references, date ordering); content is random.
// Parents are generated before children so every reference resolves by
// construction: users, then policies, then claims, then the activity log.
package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	activitydomain "claimflow/internal/activity/domain"
	claimdomain "claimflow/internal/claim/domain"
	policydomain "claimflow/internal/policy/domain"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

const (
	defaultPolicyCount   = 10
	defaultClaimCount    = 15
	defaultActivityCount = 20
)

// Generator produces randomized, internally consistent datasets.
type Generator struct {
	rng  *rand.Rand
	nowF func() time.Time

	PolicyCount   int
	ClaimCount    int
	ActivityCount int
}

// New returns a Generator drawing from src. A nil src falls back to a
// time-seeded source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32)
	}
	return &Generator{
		rng:           rand.New(src),
		nowF:          func() time.Time { return time.Now().UTC() },
		PolicyCount:   defaultPolicyCount,
		ClaimCount:    defaultClaimCount,
		ActivityCount: defaultActivityCount,
	}
}

// WithClock overrides the generator's clock. Used by tests.
func (g *Generator) WithClock(nowF func() time.Time) *Generator {
	g.nowF = nowF
	return g
}

// Generate builds a complete dataset.
func (g *Generator) Generate() *store.Dataset {
	users := g.users()
	policies := g.policies(users)
	claims := g.claims(policies, users)
	activity := g.activity(users, claims)
	return &store.Dataset{
		Users:    users,
		Policies: policies,
		Claims:   claims,
		Activity: activity,
	}
}

// users returns the fixed demo directory. Every role is represented and
// there are at least two policyholders so policy assignment has variety.
func (g *Generator) users() []*userdomain.User {
	return []*userdomain.User{
		{ID: "usr-1", Name: "Alice Smith", Email: "alice.s@example.com", Role: userdomain.RolePolicyholder},
		{ID: "usr-2", Name: "Bob Johnson", Email: "bob.j@example.com", Role: userdomain.RoleClaimsOfficer},
		{ID: "usr-3", Name: "Charlie Brown", Email: "charlie.b@example.com", Role: userdomain.RoleVerificationOfficer},
		{ID: "usr-4", Name: "Diana Prince", Email: "diana.p@example.com", Role: userdomain.RoleFinanceTeam},
		{ID: "usr-5", Name: "Eve Adams", Email: "eve.a@example.com", Role: userdomain.RoleAdmin},
		{ID: "usr-6", Name: "Frank White", Email: "frank.w@example.com", Role: userdomain.RolePolicyholder},
		{ID: "usr-7", Name: "Grace Lee", Email: "grace.l@example.com", Role: userdomain.RoleClaimsOfficer},
	}
}

func (g *Generator) policies(users []*userdomain.User) []*policydomain.Policy {
	var holders []*userdomain.User
	for _, u := range users {
		if u.Role == userdomain.RolePolicyholder {
			holders = append(holders, u)
		}
	}
	types := policydomain.AllPolicyTypes()
	policies := make([]*policydomain.Policy, 0, g.PolicyCount)
	for i := 1; i <= g.PolicyCount; i++ {
		holder := holders[g.rng.IntN(len(holders))]
		policies = append(policies, &policydomain.Policy{
			ID:               fmt.Sprintf("pol-%d", i),
			PolicyNumber:     fmt.Sprintf("POL-%d", 1000+i),
			PolicyholderID:   holder.ID,
			PolicyholderName: holder.Name,
			Type:             types[g.rng.IntN(len(types))],
			StartDate:        g.dateBetween(date(2020, 1, 1), date(2022, 12, 31)),
			EndDate:          g.dateBetween(date(2023, 1, 1), date(2025, 12, 31)),
			CoverageAmount:   g.int64Between(50_000, 500_000),
		})
	}
	return policies
}

func (g *Generator) claims(policies []*policydomain.Policy, users []*userdomain.User) []*claimdomain.Claim {
	now := g.nowF()
	statuses := claimdomain.AllStatuses()
	var officer *userdomain.User
	for _, u := range users {
		if u.Role == userdomain.RoleClaimsOfficer {
			officer = u
			break
		}
	}

	claims := make([]*claimdomain.Claim, 0, g.ClaimCount)
	for i := 1; i <= g.ClaimCount; i++ {
		pol := policies[g.rng.IntN(len(policies))]
		status := statuses[g.rng.IntN(len(statuses))]
		submission := g.dateBetween(date(2023, 1, 1), now)
		slaDue := submission.AddDate(0, 0, int(g.int64Between(5, 20)))

		c := &claimdomain.Claim{
			ID:               fmt.Sprintf("clm-%d", i),
			ClaimNumber:      fmt.Sprintf("CLM-%d", 10000+i),
			PolicyID:         pol.ID,
			PolicyNumber:     pol.PolicyNumber,
			PolicyholderID:   pol.PolicyholderID,
			PolicyholderName: pol.PolicyholderName,
			SubmissionDate:   submission,
			IncidentDate:     g.dateBetween(pol.StartDate, submission),
			Status:           status,
			AmountRequested:  g.int64Between(1_000, 50_000),
			Documents: []claimdomain.Document{
				{ID: uuid.New().String(), Name: "Police Report.pdf", URL: "#", Kind: claimdomain.DocKindOther},
				{ID: uuid.New().String(), Name: "Damages Estimate.jpeg", URL: "#", Kind: claimdomain.DocKindImage},
			},
			Notes:         fmt.Sprintf("Initial claim submitted under %s.", pol.PolicyNumber),
			WorkflowStage: stageFor(status),
			SLADueDate:    slaDue,
		}
		if status == claimdomain.StatusSettled {
			c.AmountSettled = g.int64Between(800, 45_000)
		}

		c.AuditLog = []claimdomain.AuditEntry{{
			ID:        fmt.Sprintf("log-%d-1", i),
			Timestamp: g.timeBetween(submission, now),
			UserID:    pol.PolicyholderID,
			UserName:  pol.PolicyholderName,
			Action:    "Claim Submitted",
			Details:   fmt.Sprintf("Claim %s submitted by policyholder.", c.ClaimNumber),
		}}
		if status != claimdomain.StatusSubmitted && officer != nil {
			c.AuditLog = append(c.AuditLog, claimdomain.AuditEntry{
				ID:        fmt.Sprintf("log-%d-2", i),
				Timestamp: g.timeBetween(submission, now),
				UserID:    officer.ID,
				UserName:  officer.Name,
				Action:    fmt.Sprintf("Status Changed to %s", status.Label()),
				Details:   fmt.Sprintf("Claim %s moved to %s.", c.ClaimNumber, status.Label()),
			})
		}
		claims = append(claims, c)
	}
	return claims
}

func (g *Generator) activity(users []*userdomain.User, claims []*claimdomain.Claim) []*activitydomain.Entry {
	actions := []string{
		"Claim Submitted", "Claim Reviewed", "Claim Approved",
		"Document Uploaded", "User Logged In", "Policy Created",
	}
	now := g.nowF()
	entries := make([]*activitydomain.Entry, 0, g.ActivityCount)
	for i := 0; i < g.ActivityCount; i++ {
		u := users[g.rng.IntN(len(users))]
		c := claims[g.rng.IntN(len(claims))]
		action := actions[g.rng.IntN(len(actions))]
		entries = append(entries, &activitydomain.Entry{
			ID:         fmt.Sprintf("act-%d", i+1),
			Timestamp:  g.timeBetween(date(2023, 1, 1), now),
			UserID:     u.ID,
			UserName:   u.Name,
			Action:     action,
			EntityType: activitydomain.EntityClaim,
			EntityID:   c.ID,
			Details:    fmt.Sprintf("%s performed %s on claim %s.", u.Name, action, c.ClaimNumber),
		})
	}
	return entries
}

// stageFor maps a stored status to its workflow stage label.
func stageFor(s claimdomain.Status) string {
	if s == claimdomain.StatusSubmitted {
		return "Initial Review"
	}
	return s.Label()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateBetween returns a random UTC date in [start, end], truncated to
// midnight. A degenerate range returns start.
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	t := g.timeBetween(start, end)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (g *Generator) timeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int64N(int64(span))))
}

// int64Between returns a random value in [min, max].
func (g *Generator) int64Between(min, max int64) int64 {
	return min + g.rng.Int64N(max-min+1)
}
