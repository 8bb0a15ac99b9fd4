// Package tenant binds every protected request to exactly one verified
// organization before business logic executes, and keeps that binding
// enforced all the way down to storage.
//
// # Pipeline
//
// The middleware chain runs, per request and strictly in order:
//
//	correlation.Middleware        assign/echo the correlation ID
//	jwt.Middleware                verify the bearer credential
//	tenant.Middleware             the enforcement gate (this package)
//	handler / storage guard       business logic under the installed Context
//
// The gate classifies the path (public and health prefixes bypass
// enforcement), requires the X-ORG-ID header, requires a verified principal,
// and cross-checks the declared org against the membership set resolved from
// the credential's claims. On success it installs an immutable Context:
//
//	tc, ok := tenant.FromContext(r.Context())
//
// # Propagation
//
// The Context rides on the request's context.Context. That gives the
// required isolation for free: concurrently executing requests each carry
// their own value, and the value cannot outlive its request — normal
// completion, handled rejection, panic, client disconnect, and timeout all
// end the request context and with it the tenant context. Clearing an
// already-gone context is therefore inherently a no-op.
//
// Code that must have a tenant calls RequiredTenantID, which fails with
// ErrNoContext when invoked outside an established context, for example from
// a background job or a route that bypassed the gate. Background work that
// legitimately needs a tenant installs one through the same WithContext
// entry point; there is no second mechanism.
//
// # Storage guard
//
// RequireTenantID and RequireTenantMatch implement the tenant-matching
// checks once, and every storage backend's tenant-qualified operations reuse
// them. See guard.go for the operation contract.
package tenant
