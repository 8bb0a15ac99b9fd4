// Package claims normalizes the decoded claim set of an already-verified
// bearer credential into the canonical forms the tenant enforcement pipeline
// consumes.
//
// The claim set arrives as a map[string]any produced by the jwt package.
// Claim values are treated as untrusted in shape but trusted in origin:
// malformed or absent claims resolve to empty results rather than errors.
//
// Two resolutions matter to the pipeline:
//
//   - AllowedOrgs: the org membership set from the org_ids claim, which
//     different issuers encode as a string, a string array, or a generic
//     collection.
//   - Authorities: role strings synthesized from the nested
//     realm_access.roles claim, unioned with platform defaults such as the
//     scope-derived authorities from ScopeAuthorities.
package claims
