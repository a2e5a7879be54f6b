package domain

// Status is a stored claim status. The closed set deliberately excludes the
// SLA-breach label: breach is a read-time projection (see DisplayStatus),
// never a stored state.
type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusInReview    Status = "IN_REVIEW"
	StatusVerified    Status = "VERIFIED"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusSettled     Status = "SETTLED"
	StatusPendingDocs Status = "PENDING_DOCS"
)

// LabelSLABreached is the display-only overlay label for a claim past its
// SLA due date. There is no corresponding Status value.
const LabelSLABreached = "SLA Breached"

// AllStatuses returns the closed stored status set in workflow order.
func AllStatuses() []Status {
	return []Status{
		StatusSubmitted,
		StatusInReview,
		StatusVerified,
		StatusApproved,
		StatusRejected,
		StatusSettled,
		StatusPendingDocs,
	}
}

// Valid reports whether s is a member of the stored status set.
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusVerified, StatusApproved,
		StatusRejected, StatusSettled, StatusPendingDocs:
		return true
	}
	return false
}

// Label returns the human-readable status name (e.g. "Pending Documents").
func (s Status) Label() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusInReview:
		return "In Review"
	case StatusVerified:
		return "Verified"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusSettled:
		return "Settled"
	case StatusPendingDocs:
		return "Pending Documents"
	}
	return string(s)
}

// Terminal reports whether s ends the SLA clock. Settled and rejected
// claims can no longer breach their SLA.
func (s Status) Terminal() bool {
	return s == StatusSettled || s == StatusRejected
}
