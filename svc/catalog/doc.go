// Package catalog implements the product catalog service: a tenant-scoped
// read/write API over products plus a context introspection endpoint.
//
// The catalog re-runs the full enforcement pipeline even when deployed
// behind the gateway — each service validates its own requests rather than
// trusting upstream hops. Storage goes through the tenant-qualified Store
// contract; see the Store interface for the guard semantics.
package catalog
