// Package domain defines the system-wide activity log entry.
package domain

import "time"

// EntityType identifies what an activity entry acted on.
const (
	EntityClaim  = "Claim"
	EntitySystem = "System"
)

// Entry is one append-only activity log record. Entries are never edited
// or removed; IDs are ULIDs so insertion order matches lexical order.
type Entry struct {
	ID         string
	Timestamp  time.Time
	UserID     string
	UserName   string
	Action     string
	EntityType string
	EntityID   string
	Details    string
}
