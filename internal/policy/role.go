// Package policy implements the deterministic access checks that run in
// front of the model: the staff-topic gate and the attribute-access gate,
// plus the Role enum and the localized rejection texts both gates return.
//
// Gates are keyword-substring checks over the lowercased message. This is a
// documented heuristic: matching is locale-naive ("cost" inside an unrelated
// word still matches). Entry iteration follows fixed declaration order so
// outcomes are reproducible.
package policy

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Role is the self-declared access level of a session. It is not
// authenticated here; a hardened deployment should inject a verified value
// from an authorization collaborator.
type Role int

const (
	RoleCustomer Role = iota
	RoleStaff
)

// String returns the lowercase role name.
func (r Role) String() string {
	if r == RoleStaff {
		return "staff"
	}
	return "customer"
}

// ParseRole maps a case-insensitive role string to a Role. Unrecognized
// input defaults to RoleCustomer with an operator-facing warning; the end
// user never sees the fallback.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "staff":
		return RoleStaff
	case "customer":
		return RoleCustomer
	default:
		log.Warn().Str("role", s).Msg("unrecognized role, defaulting to customer")
		return RoleCustomer
	}
}
