// Package directory implements the tenant registry: the system of record
// for which organizations exist and whether they are active. Lookups go
// through a read-through cache keyed by org ID; upserts write the store and
// invalidate the cached record.
package directory
