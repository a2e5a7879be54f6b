package views

import (
	"fmt"
	"strings"

	"claimflow/internal/nav"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// SubmitClaimForm renders the new-claim form: the policies the current
// policyholder may claim against, the required fields, and any validation
// errors inline next to their field.
func SubmitClaimForm(ds *store.Dataset, v nav.View, u *userdomain.User, fieldErrors map[string]string) string {
	var b strings.Builder
	b.WriteString(header(v, "Submit New Claim"))
	b.WriteString("Policy (*):\n")
	if u != nil {
		for _, p := range ds.Policies {
			if p.PolicyholderID == u.ID {
				fmt.Fprintf(&b, "  - %s: %s (%s)\n", p.ID, p.PolicyNumber, p.Type)
			}
		}
	}
	writeFieldError(&b, fieldErrors, "policyId")
	b.WriteString("Incident Date (*):\n")
	writeFieldError(&b, fieldErrors, "incidentDate")
	b.WriteString("Amount Requested ($) (*):\n")
	writeFieldError(&b, fieldErrors, "amountRequested")
	b.WriteString("Notes:\nSupporting Documents:\n[Submit Claim] [Cancel]\n")
	return b.String()
}

// EditClaimForm renders the edit form pre-filled from the claim, or the
// not-found screen when the claim id does not resolve.
func EditClaimForm(ds *store.Dataset, v nav.View, fieldErrors map[string]string) string {
	c := ds.ClaimByID(v.Param("claimId"))
	if c == nil {
		return NotFound(v, "Claim")
	}
	var b strings.Builder
	b.WriteString(header(v, "Edit Claim "+c.ClaimNumber))
	fmt.Fprintf(&b, "Policy (*): %s\n", c.PolicyID)
	writeFieldError(&b, fieldErrors, "policyId")
	fmt.Fprintf(&b, "Incident Date (*): %s\n", c.IncidentDate.Format("2006-01-02"))
	writeFieldError(&b, fieldErrors, "incidentDate")
	fmt.Fprintf(&b, "Amount Requested ($) (*): %d\n", c.AmountRequested)
	writeFieldError(&b, fieldErrors, "amountRequested")
	fmt.Fprintf(&b, "Notes: %s\n[Save Changes] [Cancel]\n", c.Notes)
	return b.String()
}

func writeFieldError(b *strings.Builder, fieldErrors map[string]string, key string) {
	if msg, ok := fieldErrors[key]; ok {
		fmt.Fprintf(b, "  ! %s\n", msg)
	}
}
