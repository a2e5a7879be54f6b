// Package engine evaluates screen access as an OPA Rego policy. The plain
// table in package authz is the contract of record; the Rego module mirrors
// it so screen gating can be policy-driven without changing callers.
package engine

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"
	"go.uber.org/zap"

	"claimflow/internal/nav"
	userdomain "claimflow/internal/user/domain"
)

const screenPolicyQuery = "data.claimflow.screens.allow"

// screenPolicy mirrors authz.ScreenRoles. Login is open to everyone;
// every other screen requires one of its listed roles.
const screenPolicy = `package claimflow.screens

default allow = false

any_role := {"POLICYHOLDER", "CLAIMS_OFFICER", "VERIFICATION_OFFICER", "FINANCE_TEAM", "ADMIN"}

required_roles := {
	"DASHBOARD": any_role,
	"CLAIMS_LIST": any_role,
	"CLAIM_DETAIL": any_role,
	"SUBMIT_CLAIM_FORM": {"POLICYHOLDER"},
	"EDIT_CLAIM_FORM": {"CLAIMS_OFFICER", "ADMIN"},
	"POLICIES_LIST": {"ADMIN", "CLAIMS_OFFICER"},
	"POLICY_DETAIL": {"ADMIN", "CLAIMS_OFFICER"},
	"USERS_LIST": {"ADMIN"},
	"USER_DETAIL": {"ADMIN"},
	"ACTIVITY_LOGS": {"ADMIN", "CLAIMS_OFFICER", "VERIFICATION_OFFICER", "FINANCE_TEAM"},
}

allow if {
	input.screen == "LOGIN"
}

allow if {
	roles := required_roles[input.screen]
	roles[input.role]
}
`

// Evaluator answers screen-access questions against the compiled policy.
type Evaluator struct {
	query rego.PreparedEvalQuery
	log   *zap.Logger
}

// New compiles the screen policy and prepares its query. Compilation
// happens once; evaluation is allocation-light per call.
func New(ctx context.Context, log *zap.Logger) (*Evaluator, error) {
	q, err := rego.New(
		rego.Query(screenPolicyQuery),
		rego.Module("screens.rego", screenPolicy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare screen policy: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{query: q, log: log}, nil
}

// Allowed evaluates whether role may open screen. A missing role (not
// logged in) is passed as the empty string.
func (e *Evaluator) Allowed(ctx context.Context, role userdomain.Role, screen nav.Screen) (bool, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"role":   string(role),
		"screen": string(screen),
	}))
	if err != nil {
		return false, fmt.Errorf("eval screen policy: %w", err)
	}
	return rs.Allowed(), nil
}

// CanOpen is Allowed with fail-closed semantics: evaluation errors deny
// and are logged, never surfaced to the renderer.
func (e *Evaluator) CanOpen(ctx context.Context, u *userdomain.User, screen nav.Screen) bool {
	var role userdomain.Role
	if u != nil {
		role = u.Role
	}
	ok, err := e.Allowed(ctx, role, screen)
	if err != nil {
		e.log.Warn("screen policy evaluation failed; denying",
			zap.String("screen", string(screen)), zap.Error(err))
		return false
	}
	return ok
}

// HealthCheck verifies the embedded policy compiles. Used at startup.
func HealthCheck() error {
	if _, err := ast.CompileModules(map[string]string{"screens.rego": screenPolicy}); err != nil {
		return fmt.Errorf("compile screen policy: %w", err)
	}
	return nil
}
