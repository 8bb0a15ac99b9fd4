package tenant

import "errors"

var (
	// ErrNoContext is returned when a required-tenant accessor runs outside
	// an established tenant context. This is a programming-contract
	// violation (a background job or a route that bypassed the gate), not a
	// user-facing condition; callers must fail fast and log it loudly
	// rather than default to any tenant.
	ErrNoContext = errors.New("tenant: no tenant context established")

	// ErrInvalidTenant is returned when a blank tenant ID reaches a guarded
	// storage operation. Also a programming error: the gate never installs
	// a blank tenant.
	ErrInvalidTenant = errors.New("tenant: tenant id is required for guarded operations")

	// ErrCrossTenantWrite is returned when an update targets an entity owned
	// by a different tenant than the acting context declares. The write is
	// rejected, never silently reassigned.
	ErrCrossTenantWrite = errors.New("tenant: cross-tenant write is not allowed")
)
