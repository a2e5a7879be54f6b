// Package domain defines the claim entity, its stored status set and the
// derived SLA-breach projection.
package domain

import "time"

// DocumentKind distinguishes image attachments from everything else.
type DocumentKind string

const (
	DocKindImage DocumentKind = "image"
	DocKindOther DocumentKind = "other"
)

// Document is a supporting file attached to a claim. The URL is a
// placeholder; there is no real document store. Documents are never deleted.
type Document struct {
	ID   string
	Name string
	URL  string
	Kind DocumentKind
}

// AuditEntry is one entry in a claim's append-only audit trail.
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	UserID    string
	UserName  string
	Action    string
	Details   string
}

// Claim is a policyholder's request for compensation under a policy.
// Policyholder identity and policy number are denormalized from the
// referenced policy at creation time.
//
// AmountSettled is meaningful only while Status is SETTLED; all write paths
// keep it zero otherwise. Highlighted is a transient flag set by the live
// simulator for one tick.
type Claim struct {
	ID               string
	ClaimNumber      string
	PolicyID         string
	PolicyNumber     string
	PolicyholderID   string
	PolicyholderName string
	SubmissionDate   time.Time
	IncidentDate     time.Time
	Status           Status
	AmountRequested  int64
	AmountSettled    int64
	Documents        []Document
	Notes            string
	WorkflowStage    string
	SLADueDate       time.Time
	AuditLog         []AuditEntry
	Highlighted      bool
}

// SLABreached reports whether the claim is past its SLA due date and still
// open. Pure function of (due date, status, now); recomputed on every read
// because "now" advances.
func (c *Claim) SLABreached(now time.Time) bool {
	return c.SLADueDate.Before(now) && !c.Status.Terminal()
}

// DisplayStatus returns the status label to show for the claim at the given
// instant: the SLA-breach overlay when breached, the stored status label
// otherwise. The overlay is never written back to Status.
func (c *Claim) DisplayStatus(now time.Time) string {
	if c.SLABreached(now) {
		return LabelSLABreached
	}
	return c.Status.Label()
}

// Clone returns a copy of the claim with its own document and audit slices,
// safe to mutate without affecting the receiver.
func (c *Claim) Clone() *Claim {
	cp := *c
	cp.Documents = append([]Document(nil), c.Documents...)
	cp.AuditLog = append([]AuditEntry(nil), c.AuditLog...)
	return &cp
}
