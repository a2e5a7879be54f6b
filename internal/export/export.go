// Package export serializes dataset views to JSON for the list screens'
// Export action and the seed command.
package export

import (
	"time"

	"github.com/goccy/go-json"

	claimdomain "claimflow/internal/claim/domain"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// claimRecord is the exported claim shape. Field names follow the UI's
// camelCase convention; displayStatus carries the derived SLA overlay so
// the export matches what the list screen showed.
type claimRecord struct {
	ID               string    `json:"id"`
	ClaimNumber      string    `json:"claimNumber"`
	PolicyID         string    `json:"policyId"`
	PolicyNumber     string    `json:"policyNumber"`
	PolicyholderID   string    `json:"policyholderId"`
	PolicyholderName string    `json:"policyholderName"`
	SubmissionDate   time.Time `json:"submissionDate"`
	IncidentDate     time.Time `json:"incidentDate"`
	Status           string    `json:"status"`
	DisplayStatus    string    `json:"displayStatus"`
	AmountRequested  int64     `json:"amountRequested"`
	AmountSettled    *int64    `json:"amountSettled,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	WorkflowStage    string    `json:"currentWorkflowStage"`
	SLADueDate       time.Time `json:"slaDueDate"`
	DocumentCount    int       `json:"documentCount"`
}

func toRecord(c *claimdomain.Claim, now time.Time) claimRecord {
	r := claimRecord{
		ID:               c.ID,
		ClaimNumber:      c.ClaimNumber,
		PolicyID:         c.PolicyID,
		PolicyNumber:     c.PolicyNumber,
		PolicyholderID:   c.PolicyholderID,
		PolicyholderName: c.PolicyholderName,
		SubmissionDate:   c.SubmissionDate,
		IncidentDate:     c.IncidentDate,
		Status:           string(c.Status),
		DisplayStatus:    c.DisplayStatus(now),
		AmountRequested:  c.AmountRequested,
		Notes:            c.Notes,
		WorkflowStage:    c.WorkflowStage,
		SLADueDate:       c.SLADueDate,
		DocumentCount:    len(c.Documents),
	}
	if c.Status == claimdomain.StatusSettled {
		settled := c.AmountSettled
		r.AmountSettled = &settled
	}
	return r
}

// Claims exports the claims visible to u: policyholders see only their own
// claims, every other role sees all of them. A nil user exports nothing.
func Claims(ds *store.Dataset, u *userdomain.User, now time.Time) ([]byte, error) {
	records := []claimRecord{}
	if u != nil {
		for _, c := range ds.Claims {
			if u.Role == userdomain.RolePolicyholder && c.PolicyholderID != u.ID {
				continue
			}
			records = append(records, toRecord(c, now))
		}
	}
	return json.MarshalIndent(records, "", "  ")
}

// userRecord is the exported user shape.
type userRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// policyRecord is the exported policy shape.
type policyRecord struct {
	ID               string    `json:"id"`
	PolicyNumber     string    `json:"policyNumber"`
	PolicyholderID   string    `json:"policyholderId"`
	PolicyholderName string    `json:"policyholderName"`
	Type             string    `json:"type"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	CoverageAmount   int64     `json:"coverageAmount"`
}

// activityRecord is the exported activity-log shape.
type activityRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	Details    string    `json:"details"`
}

// Dataset exports the full dataset with derived claim statuses. Every
// collection uses the same camelCase record shapes as the claims export.
// Used by the seed command.
func Dataset(ds *store.Dataset, now time.Time) ([]byte, error) {
	users := make([]userRecord, 0, len(ds.Users))
	for _, u := range ds.Users {
		users = append(users, userRecord{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
	policies := make([]policyRecord, 0, len(ds.Policies))
	for _, p := range ds.Policies {
		policies = append(policies, policyRecord{
			ID:               p.ID,
			PolicyNumber:     p.PolicyNumber,
			PolicyholderID:   p.PolicyholderID,
			PolicyholderName: p.PolicyholderName,
			Type:             string(p.Type),
			StartDate:        p.StartDate,
			EndDate:          p.EndDate,
			CoverageAmount:   p.CoverageAmount,
		})
	}
	claims := make([]claimRecord, 0, len(ds.Claims))
	for _, c := range ds.Claims {
		claims = append(claims, toRecord(c, now))
	}
	activity := make([]activityRecord, 0, len(ds.Activity))
	for _, e := range ds.Activity {
		activity = append(activity, activityRecord{
			ID:         e.ID,
			Timestamp:  e.Timestamp,
			UserID:     e.UserID,
			UserName:   e.UserName,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    e.Details,
		})
	}
	out := map[string]interface{}{
		"users":       users,
		"policies":    policies,
		"claims":      claims,
		"activityLog": activity,
	}
	return json.MarshalIndent(out, "", "  ")
}
