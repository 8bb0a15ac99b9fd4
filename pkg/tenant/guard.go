package tenant

import "strings"

// The guard functions below are the single implementation of the
// tenant-matching checks every storage backend reuses. They are the last
// line of defense: even if an upstream stage mis-set the context, no
// mutation can land under the wrong tenant without the acting tenant ID and
// the entity's tenant ID explicitly matching.
//
// Stores expose only tenant-qualified operations:
//
//	FindByTenant(ctx, tenantID)
//	FindByTenantAndID(ctx, tenantID, id)
//	ExistsByTenantAndID(ctx, tenantID, id)
//	DeleteByTenantAndID(ctx, tenantID, id)
//	CreateForTenant(ctx, tenantID, entity)   // stamps the entity via RequireTenantID
//	UpdateForTenant(ctx, tenantID, entity)   // checks via RequireTenantMatch
//
// Tenant-less variants must not exist in any store's public contract.

// RequireTenantID validates and trims a tenant ID before it parameterizes a
// guarded operation. A blank ID is a programming error, not user input.
func RequireTenantID(tenantID string) (string, error) {
	trimmed := strings.TrimSpace(tenantID)
	if trimmed == "" {
		return "", ErrInvalidTenant
	}
	return trimmed, nil
}

// RequireTenantMatch rejects an update whose target entity belongs to a
// different tenant than the acting one.
func RequireTenantMatch(tenantID, entityTenantID string) error {
	acting, err := RequireTenantID(tenantID)
	if err != nil {
		return err
	}
	owner, err := RequireTenantID(entityTenantID)
	if err != nil {
		return err
	}
	if acting != owner {
		return ErrCrossTenantWrite
	}
	return nil
}
