package tenant

import (
	"slices"
	"strings"
)

// Context is the immutable record of which tenant, user, and roles one
// request is authorized to act as. It is built exactly once per request by
// the enforcement gate; nothing downstream mutates it, and its TenantID never
// changes for the remainder of the request.
type Context struct {
	TenantID      string   `json:"tenantId"`
	UserID        string   `json:"userId"`
	Roles         []string `json:"roles"`
	CorrelationID string   `json:"correlationId"`
}

// NewContext builds a Context with normalized fields: the tenant ID is
// trimmed, the user ID defaults to "unknown" when blank, and roles are
// deduplicated and sorted lexicographically for determinism.
func NewContext(tenantID, userID string, roles []string, correlationID string) Context {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "unknown"
	}

	normalized := make([]string, 0, len(roles))
	for _, role := range roles {
		if role = strings.TrimSpace(role); role != "" {
			normalized = append(normalized, role)
		}
	}
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	return Context{
		TenantID:      strings.TrimSpace(tenantID),
		UserID:        userID,
		Roles:         normalized,
		CorrelationID: correlationID,
	}
}
