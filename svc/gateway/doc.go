// Package gateway implements the edge of the platform. It assigns
// correlation IDs, verifies bearer tokens, runs the tenant enforcement gate,
// and reverse-proxies surviving requests to the catalog and directory
// services. Rejections are emitted at the edge with the standard error
// envelope; upstreams only ever see requests that already passed the gate.
package gateway
