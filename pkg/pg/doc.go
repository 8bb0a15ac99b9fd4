// Package pg provides the PostgreSQL plumbing shared by the catalog and
// directory services: pool construction with startup retry, a readiness
// probe, embedded goose migrations, and error classification helpers used by
// the tenant-scoped stores.
package pg
