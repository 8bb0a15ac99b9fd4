package directory

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is one registered organization. OrgID is the external identifier
// clients declare in the X-ORG-ID header; ID is the internal surrogate key.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	OrgID     string    `json:"orgId"`
	Name      string    `json:"name"`
	Realm     string    `json:"realm"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TenantInput carries the client-supplied tenant fields for an upsert.
type TenantInput struct {
	OrgID  string `json:"orgId"`
	Name   string `json:"name"`
	Realm  string `json:"realm"`
	Active bool   `json:"active"`
}
