// Package redis wraps go-redis connection setup with startup retry and a
// readiness probe. The directory service uses it for the tenant read-through
// cache.
package redis
