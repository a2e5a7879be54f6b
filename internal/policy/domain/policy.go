// Package domain defines the insurance policy entity.
package domain

import "time"

// PolicyType is the product line a policy covers.
type PolicyType string

const (
	TypeAuto   PolicyType = "Auto"
	TypeHome   PolicyType = "Home"
	TypeLife   PolicyType = "Life"
	TypeHealth PolicyType = "Health"
)

// AllPolicyTypes returns the closed policy type set.
func AllPolicyTypes() []PolicyType {
	return []PolicyType{TypeAuto, TypeHome, TypeLife, TypeHealth}
}

// Policy is an insurance contract between the insurer and a policyholder.
// Immutable after generation. PolicyholderID must resolve to a user with
// role POLICYHOLDER.
type Policy struct {
	ID               string
	PolicyNumber     string
	PolicyholderID   string
	PolicyholderName string
	Type             PolicyType
	StartDate        time.Time
	EndDate          time.Time
	CoverageAmount   int64
}
