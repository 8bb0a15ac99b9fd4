package claims

import (
	"fmt"
	"strings"
)

// Claim names consumed from the verified credential. The token issuer is
// external; these names are part of its contract.
const (
	orgIDsClaim            = "org_ids"
	realmAccessClaim       = "realm_access"
	realmRolesClaim        = "roles"
	scopeClaim             = "scope"
	subjectClaim           = "sub"
	preferredUsernameClaim = "preferred_username"
)

const rolePrefix = "ROLE_"
const scopePrefix = "SCOPE_"

// AllowedOrgs resolves the set of organization IDs the credential is
// authorized for. The org_ids claim is heterogeneous across issuers: a single
// string, a string array, or a generic collection. All three normalize to a
// trimmed, blank-filtered, first-seen-ordered set with duplicates collapsed.
// Absent or malformed claims resolve to an empty set; this never errors.
//
// The result is a property of the credential alone. Callers compare a
// declared org ID against this set, never the other way around.
func AllowedOrgs(claims map[string]any) []string {
	switch v := claims[orgIDsClaim].(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	case []string:
		return normalize(v)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, coerce(item))
		}
		return normalize(values)
	default:
		return nil
	}
}

// Authorities resolves the credential's authority list: the platform defaults
// passed by the caller unioned with authorities synthesized from the nested
// realm_access.roles claim (role "admin" becomes "ROLE_ADMIN"). The result
// preserves insertion order and drops duplicates. Never errors.
func Authorities(claims map[string]any, defaults ...string) []string {
	combined := make([]string, 0, len(defaults)+4)
	combined = append(combined, defaults...)

	if realmAccess, ok := claims[realmAccessClaim].(map[string]any); ok {
		if roles, ok := realmAccess[realmRolesClaim].([]any); ok {
			for _, role := range roles {
				if value := strings.TrimSpace(coerce(role)); value != "" {
					combined = append(combined, rolePrefix+strings.ToUpper(value))
				}
			}
		}
	}

	return normalize(combined)
}

// ScopeAuthorities derives the platform-default authorities from the
// space-separated OAuth scope claim ("openid profile" yields "SCOPE_openid",
// "SCOPE_profile"). Used as the defaults argument to Authorities.
func ScopeAuthorities(claims map[string]any) []string {
	scope, ok := claims[scopeClaim].(string)
	if !ok {
		return nil
	}

	var authorities []string
	for _, s := range strings.Fields(scope) {
		authorities = append(authorities, scopePrefix+s)
	}
	return normalize(authorities)
}

// Subject returns the trimmed sub claim, or "" when absent.
func Subject(claims map[string]any) string {
	return stringClaim(claims, subjectClaim)
}

// PreferredUsername returns the trimmed preferred_username claim, or "" when absent.
func PreferredUsername(claims map[string]any) string {
	return stringClaim(claims, preferredUsernameClaim)
}

func stringClaim(claims map[string]any, name string) string {
	value, ok := claims[name].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// coerce renders a claim element as a string. Non-string JSON scalars
// (numbers, booleans) are formatted; nil maps to "".
func coerce(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// normalize trims, drops blanks, and collapses duplicates while preserving
// first-seen order.
func normalize(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
