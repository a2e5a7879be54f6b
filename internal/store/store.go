// Package store owns the shared in-memory dataset. There is no persistence:
// the dataset is generated at startup and lives for the session.
//
// The store is the single writer boundary. Every mutation reads the latest
// dataset, builds a replacement (cloning whatever it changes), and swaps it
// in atomically, so no reader ever observes a partially-updated dataset.
package store

import (
	"sync"

	activitydomain "claimflow/internal/activity/domain"
	claimdomain "claimflow/internal/claim/domain"
	policydomain "claimflow/internal/policy/domain"
	userdomain "claimflow/internal/user/domain"
)

// Dataset is one immutable-by-convention snapshot of all application data.
// Holders of a *Dataset must treat it and everything reachable from it as
// read-only; all changes go through Store.Update.
type Dataset struct {
	Users    []*userdomain.User
	Policies []*policydomain.Policy
	Claims   []*claimdomain.Claim
	Activity []*activitydomain.Entry
}

// ShallowClone returns a Dataset with fresh top-level slices sharing the
// same elements. Update callbacks start from this and replace the elements
// they change.
func (d *Dataset) ShallowClone() *Dataset {
	return &Dataset{
		Users:    append([]*userdomain.User(nil), d.Users...),
		Policies: append([]*policydomain.Policy(nil), d.Policies...),
		Claims:   append([]*claimdomain.Claim(nil), d.Claims...),
		Activity: append([]*activitydomain.Entry(nil), d.Activity...),
	}
}

// UserByID returns the user with the given id, or nil.
func (d *Dataset) UserByID(id string) *userdomain.User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByRole returns the first user with the given role, or nil. Login is
// role selection, so "first match" is the login semantics.
func (d *Dataset) UserByRole(role userdomain.Role) *userdomain.User {
	for _, u := range d.Users {
		if u.Role == role {
			return u
		}
	}
	return nil
}

// PolicyByID returns the policy with the given id, or nil.
func (d *Dataset) PolicyByID(id string) *policydomain.Policy {
	for _, p := range d.Policies {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ClaimByID returns the claim with the given id, or nil.
func (d *Dataset) ClaimByID(id string) *claimdomain.Claim {
	for _, c := range d.Claims {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Store holds the current dataset behind a single-writer lock.
type Store struct {
	mu       sync.RWMutex
	data     *Dataset
	claimSeq int
}

// New returns a Store owning the given initial dataset. The claim id
// sequence continues from the seeded claim count.
func New(initial *Dataset) *Store {
	if initial == nil {
		initial = &Dataset{}
	}
	return &Store{data: initial, claimSeq: len(initial.Claims)}
}

// Snapshot returns the current dataset. The returned value is shared and
// must not be mutated.
func (s *Store) Snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Update applies fn to the latest dataset and swaps in its result. fn must
// not mutate its argument; it returns a replacement built from a clone.
// Returning nil keeps the current dataset (no-op mutation).
func (s *Store) Update(fn func(*Dataset) *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next := fn(s.data); next != nil {
		s.data = next
	}
}

// NextClaimSeq returns the next value of the monotonic claim id sequence.
func (s *Store) NextClaimSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimSeq++
	return s.claimSeq
}

// AppendActivity appends one entry to the activity log.
func (s *Store) AppendActivity(e *activitydomain.Entry) {
	if e == nil {
		return
	}
	s.Update(func(d *Dataset) *Dataset {
		next := d.ShallowClone()
		next.Activity = append(next.Activity, e)
		return next
	})
}
