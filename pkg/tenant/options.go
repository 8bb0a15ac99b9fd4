package tenant

import (
	"strings"

	"github.com/flashsale/platform/pkg/claims"
)

// AuthorityDefaults supplies the platform-default authority list for a claim
// set, unioned with the realm-role authorities by the gate.
type AuthorityDefaults func(claimSet map[string]any) []string

// OrgHeader is the caller-declared tenant identifier header.
const OrgHeader = "X-ORG-ID"

// config holds middleware configuration.
type config struct {
	orgHeader         string
	apiPrefix         string
	publicPrefixes    []string
	healthPrefixes    []string
	authorityDefaults AuthorityDefaults
}

func defaultGateConfig() *config {
	return &config{
		orgHeader:         OrgHeader,
		apiPrefix:         "/api/",
		publicPrefixes:    []string{"/api/public/"},
		healthPrefixes:    []string{"/healthz", "/livez", "/readyz"},
		authorityDefaults: claims.ScopeAuthorities,
	}
}

// isProtected classifies a request path. Protected paths fall under the API
// namespace and are neither public nor operational-health endpoints.
func (c *config) isProtected(path string) bool {
	if !strings.HasPrefix(path, c.apiPrefix) && path != strings.TrimSuffix(c.apiPrefix, "/") {
		return false
	}
	for _, prefix := range c.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	for _, prefix := range c.healthPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Option configures the enforcement middleware.
type Option func(*config)

// WithOrgHeader overrides the tenant identifier header name.
func WithOrgHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.orgHeader = name
		}
	}
}

// WithAPIPrefix sets the namespace under which requests are protected.
func WithAPIPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.apiPrefix = prefix
		}
	}
}

// WithPublicPrefixes sets path prefixes that bypass tenant enforcement
// entirely (for example a public storefront API).
func WithPublicPrefixes(prefixes []string) Option {
	return func(c *config) {
		c.publicPrefixes = prefixes
	}
}

// WithHealthPrefixes sets operational-health path prefixes that bypass
// tenant enforcement.
func WithHealthPrefixes(prefixes []string) Option {
	return func(c *config) {
		c.healthPrefixes = prefixes
	}
}

// WithAuthorityDefaults overrides the platform-default authority mapping.
func WithAuthorityDefaults(f AuthorityDefaults) Option {
	return func(c *config) {
		if f != nil {
			c.authorityDefaults = f
		}
	}
}
