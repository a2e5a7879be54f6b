// Package service implements the claim lifecycle operations: submit, edit
// and the document upload stub. All mutation goes through the dataset
// store; validation failures perform no mutation at all.
package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	activitydomain "claimflow/internal/activity/domain"
	claimdomain "claimflow/internal/claim/domain"
	"claimflow/internal/audit"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// ErrClaimNotFound is returned by Edit and AttachDocument when the claim id
// does not resolve. Callers surface it as a not-found screen.
var ErrClaimNotFound = errors.New("claim not found")

// ValidationError carries field-keyed messages for form rendering. It is
// recoverable: the caller re-renders the form with the messages inline.
type ValidationError struct {
	Fields map[string]string
}

// Error implements error. The field map is the useful payload; the string
// form exists for logs.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "validation failed: " + strings.Join(keys, ", ")
}

// ClaimInput is the submit/edit form payload. A zero IncidentDate means the
// field was left empty.
type ClaimInput struct {
	PolicyID        string
	IncidentDate    time.Time
	AmountRequested int64
	Notes           string
}

// Service implements the claim lifecycle operations.
type Service struct {
	store    *store.Store
	activity audit.ActivityLogger
	nowF     func() time.Time
}

// New returns a Service writing to st and recording activity via logger.
// logger may be nil; then no activity entries are recorded.
func New(st *store.Store, logger audit.ActivityLogger) *Service {
	return &Service{
		store:    st,
		activity: logger,
		nowF:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(nowF func() time.Time) *Service {
	s.nowF = nowF
	return s
}

// validate checks the shared submit/edit rules against the given dataset.
// Returns nil when the input is acceptable.
func validate(ds *store.Dataset, in ClaimInput) *ValidationError {
	fields := map[string]string{}
	if in.PolicyID == "" {
		fields["policyId"] = "Policy is mandatory."
	} else if ds.PolicyByID(in.PolicyID) == nil {
		fields["policyId"] = "Policy not found."
	}
	if in.IncidentDate.IsZero() {
		fields["incidentDate"] = "Incident Date is mandatory."
	}
	if in.AmountRequested <= 0 {
		fields["amountRequested"] = "Amount Requested must be a positive number."
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Submit validates the input and appends a new claim: sequential id and
// claim number, status SUBMITTED, workflow stage "Initial Review", SLA due
// 14 days out, policyholder identity denormalized from the referenced
// policy, and one "Claim Submitted" audit entry.
func (s *Service) Submit(actor *userdomain.User, in ClaimInput) (*claimdomain.Claim, error) {
	ds := s.store.Snapshot()
	if verr := validate(ds, in); verr != nil {
		return nil, verr
	}
	pol := ds.PolicyByID(in.PolicyID)

	now := s.nowF()
	seq := s.store.NextClaimSeq()
	c := &claimdomain.Claim{
		ID:               fmt.Sprintf("clm-%d", seq),
		ClaimNumber:      fmt.Sprintf("CLM-%d", 10000+seq),
		PolicyID:         pol.ID,
		PolicyNumber:     pol.PolicyNumber,
		PolicyholderID:   pol.PolicyholderID,
		PolicyholderName: pol.PolicyholderName,
		SubmissionDate:   now,
		IncidentDate:     in.IncidentDate,
		Status:           claimdomain.StatusSubmitted,
		AmountRequested:  in.AmountRequested,
		Notes:            in.Notes,
		WorkflowStage:    "Initial Review",
		SLADueDate:       now.AddDate(0, 0, 14),
		AuditLog: []claimdomain.AuditEntry{{
			ID:        ulid.Make().String(),
			Timestamp: now,
			Action:    "Claim Submitted",
			Details:   fmt.Sprintf("New claim CLM-%d submitted by policyholder.", 10000+seq),
		}},
	}
	if actor != nil {
		c.AuditLog[0].UserID = actor.ID
		c.AuditLog[0].UserName = actor.Name
	}

	s.store.Update(func(d *store.Dataset) *store.Dataset {
		next := d.ShallowClone()
		next.Claims = append(next.Claims, c)
		return next
	})
	s.logActivity(actor, "Claim Submitted", c.ID,
		fmt.Sprintf("Claim %s submitted.", c.ClaimNumber))
	return c, nil
}

// Edit validates the input and merges it into the existing claim: scalar
// fields are overwritten, identifier, claim number, submission date, status
// and audit history are preserved, and a "Claim Updated" entry is appended.
// Last write wins; there is no version check.
func (s *Service) Edit(actor *userdomain.User, claimID string, in ClaimInput) (*claimdomain.Claim, error) {
	ds := s.store.Snapshot()
	if ds.ClaimByID(claimID) == nil {
		return nil, ErrClaimNotFound
	}
	if verr := validate(ds, in); verr != nil {
		return nil, verr
	}

	now := s.nowF()
	var updated *claimdomain.Claim
	s.store.Update(func(d *store.Dataset) *store.Dataset {
		cur := d.ClaimByID(claimID)
		if cur == nil {
			return nil
		}
		pol := d.PolicyByID(in.PolicyID)
		next := d.ShallowClone()
		c := cur.Clone()
		c.PolicyID = pol.ID
		c.PolicyNumber = pol.PolicyNumber
		c.PolicyholderID = pol.PolicyholderID
		c.PolicyholderName = pol.PolicyholderName
		c.IncidentDate = in.IncidentDate
		c.AmountRequested = in.AmountRequested
		c.Notes = in.Notes
		entry := claimdomain.AuditEntry{
			ID:        ulid.Make().String(),
			Timestamp: now,
			Action:    "Claim Updated",
			Details:   fmt.Sprintf("Claim %s updated.", c.ClaimNumber),
		}
		if actor != nil {
			entry.UserID = actor.ID
			entry.UserName = actor.Name
		}
		c.AuditLog = append(c.AuditLog, entry)
		replaceClaim(next, c)
		updated = c
		return next
	})
	if updated == nil {
		return nil, ErrClaimNotFound
	}
	s.logActivity(actor, "Claim Updated", updated.ID,
		fmt.Sprintf("Claim %s updated.", updated.ClaimNumber))
	return updated, nil
}

// imageExts are the extensions treated as image documents by the upload stub.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// AttachDocument simulates an upload: it appends a document with a
// placeholder URL to the claim. Documents are never deleted in scope.
func (s *Service) AttachDocument(actor *userdomain.User, claimID, fileName string) (*claimdomain.Document, error) {
	if s.store.Snapshot().ClaimByID(claimID) == nil {
		return nil, ErrClaimNotFound
	}
	kind := claimdomain.DocKindOther
	if imageExts[strings.ToLower(filepath.Ext(fileName))] {
		kind = claimdomain.DocKindImage
	}
	doc := claimdomain.Document{
		ID:   uuid.New().String(),
		Name: fileName,
		URL:  "#",
		Kind: kind,
	}
	attached := false
	s.store.Update(func(d *store.Dataset) *store.Dataset {
		cur := d.ClaimByID(claimID)
		if cur == nil {
			return nil
		}
		next := d.ShallowClone()
		c := cur.Clone()
		c.Documents = append(c.Documents, doc)
		replaceClaim(next, c)
		attached = true
		return next
	})
	if !attached {
		return nil, ErrClaimNotFound
	}
	s.logActivity(actor, "Document Uploaded", claimID,
		fmt.Sprintf("Document %s attached.", fileName))
	return &doc, nil
}

func (s *Service) logActivity(actor *userdomain.User, action, claimID, details string) {
	if s.activity == nil {
		return
	}
	s.activity.LogEvent(actor, action, activitydomain.EntityClaim, claimID, details)
}

// replaceClaim swaps the claim with the same id into the cloned slice.
func replaceClaim(d *store.Dataset, c *claimdomain.Claim) {
	for i, existing := range d.Claims {
		if existing.ID == c.ID {
			d.Claims[i] = c
			return
		}
	}
}
