package store

import (
	"fmt"
	"sync"
	"testing"

	activitydomain "claimflow/internal/activity/domain"
	claimdomain "claimflow/internal/claim/domain"
	policydomain "claimflow/internal/policy/domain"
	userdomain "claimflow/internal/user/domain"
)

func fixture() *Dataset {
	return &Dataset{
		Users: []*userdomain.User{
			{ID: "usr-1", Name: "Alice", Role: userdomain.RolePolicyholder},
			{ID: "usr-2", Name: "Bob", Role: userdomain.RoleClaimsOfficer},
		},
		Policies: []*policydomain.Policy{
			{ID: "pol-1", PolicyNumber: "POL-1001", PolicyholderID: "usr-1"},
		},
		Claims: []*claimdomain.Claim{
			{ID: "clm-1", ClaimNumber: "CLM-10001", PolicyID: "pol-1"},
			{ID: "clm-2", ClaimNumber: "CLM-10002", PolicyID: "pol-1"},
		},
	}
}

func TestStore_Snapshot_ReturnsCurrentDataset(t *testing.T) {
	s := New(fixture())

	ds := s.Snapshot()
	if ds == nil {
		t.Fatal("Snapshot returned nil")
	}
	if len(ds.Claims) != 2 {
		t.Errorf("claims = %d, want 2", len(ds.Claims))
	}
}

func TestStore_Update_SwapsDatasetAtomically(t *testing.T) {
	s := New(fixture())
	before := s.Snapshot()

	s.Update(func(d *Dataset) *Dataset {
		next := d.ShallowClone()
		next.Claims = append(next.Claims, &claimdomain.Claim{ID: "clm-3"})
		return next
	})

	if len(before.Claims) != 2 {
		t.Errorf("old snapshot mutated: claims = %d, want 2", len(before.Claims))
	}
	if got := len(s.Snapshot().Claims); got != 3 {
		t.Errorf("claims after update = %d, want 3", got)
	}
}

func TestStore_Update_NilResultKeepsDataset(t *testing.T) {
	s := New(fixture())
	before := s.Snapshot()

	s.Update(func(d *Dataset) *Dataset { return nil })

	if s.Snapshot() != before {
		t.Error("nil update result should keep the current dataset")
	}
}

func TestStore_NextClaimSeq_ContinuesFromSeededCount(t *testing.T) {
	s := New(fixture())

	if got := s.NextClaimSeq(); got != 3 {
		t.Errorf("NextClaimSeq = %d, want 3", got)
	}
	if got := s.NextClaimSeq(); got != 4 {
		t.Errorf("NextClaimSeq = %d, want 4", got)
	}
}

func TestStore_AppendActivity(t *testing.T) {
	s := New(fixture())

	s.AppendActivity(&activitydomain.Entry{ID: "act-1", Action: "User Logged In"})
	s.AppendActivity(nil)

	if got := len(s.Snapshot().Activity); got != 1 {
		t.Errorf("activity entries = %d, want 1", got)
	}
}

func TestDataset_Lookups(t *testing.T) {
	ds := fixture()

	if u := ds.UserByID("usr-2"); u == nil || u.Name != "Bob" {
		t.Errorf("UserByID(usr-2) = %v, want Bob", u)
	}
	if u := ds.UserByRole(userdomain.RolePolicyholder); u == nil || u.ID != "usr-1" {
		t.Errorf("UserByRole = %v, want usr-1", u)
	}
	if p := ds.PolicyByID("pol-1"); p == nil || p.PolicyNumber != "POL-1001" {
		t.Errorf("PolicyByID = %v, want POL-1001", p)
	}
	if c := ds.ClaimByID("clm-2"); c == nil || c.ClaimNumber != "CLM-10002" {
		t.Errorf("ClaimByID = %v, want CLM-10002", c)
	}
	if ds.ClaimByID("clm-99") != nil {
		t.Error("ClaimByID should return nil for unknown id")
	}
}

func TestStore_ConcurrentReadersSeeCompleteDatasets(t *testing.T) {
	s := New(fixture())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			n := i
			s.Update(func(d *Dataset) *Dataset {
				next := d.ShallowClone()
				next.Claims = append(next.Claims, &claimdomain.Claim{ID: fmt.Sprintf("clm-x%d", n)})
				return next
			})
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ds := s.Snapshot()
				// Every snapshot must be internally consistent: the first
				// two claims are always the seeded ones.
				if ds.Claims[0].ID != "clm-1" || ds.Claims[1].ID != "clm-2" {
					t.Error("snapshot lost seeded claims")
					return
				}
			}
		}()
	}
	wg.Wait()
}
