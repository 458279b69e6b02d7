package domain

import (
	"fmt"
	"strings"
)

// Policy is the declarative authorization descriptor attached to one
// (resource, verb) pair. Roles are always permitted; SelfRoles are permitted
// only when the decision resolved IsSelf=true. Authentication itself is not
// a policy concern — a Policy is only ever applied to a truthful
// AuthDecision produced by the evaluator.
type Policy struct {
	Resource  string
	Verb      string
	Roles     []Role
	SelfRoles []Role
}

// RequireRole builds a policy permitting the listed roles unconditionally.
func RequireRole(verb, resource string, roles ...Role) Policy {
	return Policy{Resource: resource, Verb: verb, Roles: roles}
}

// OrSelf extends the policy to also permit the listed roles when the caller
// is acting on their own record.
func (p Policy) OrSelf(roles ...Role) Policy {
	p.SelfRoles = roles
	return p
}

// Permits reports whether the decision satisfies the policy.
func (p Policy) Permits(d AuthDecision) bool {
	for _, r := range p.Roles {
		if d.Role == r {
			return true
		}
	}
	if d.IsSelf {
		for _, r := range p.SelfRoles {
			if d.Role == r {
				return true
			}
		}
	}
	return false
}

// Deny builds the denial emitted when Permits fails. The reason names the
// resource, the verb, and the full policy so callers can see exactly which
// rule rejected them.
func (p Policy) Deny() Denial {
	return Denial{Reason: fmt.Sprintf("%s %s requires %s", p.Verb, p.Resource, p.describe())}
}

func (p Policy) describe() string {
	parts := make([]string, 0, len(p.Roles)+len(p.SelfRoles))
	for _, r := range p.Roles {
		parts = append(parts, "role "+string(r))
	}
	for _, r := range p.SelfRoles {
		parts = append(parts, string(r)+" access to their own records")
	}
	if len(parts) == 0 {
		return "no permitted role"
	}
	return strings.Join(parts, " or ")
}
