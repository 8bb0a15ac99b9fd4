package catalog

import "github.com/google/uuid"

// Product is a tenant-owned catalog entity. TenantID is stamped by the store
// guard on create and checked on update; handlers never set it from request
// input.
type Product struct {
	ID          uuid.UUID `json:"id"`
	TenantID    string    `json:"tenantId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
}

// ProductSummary is the list-item projection.
type ProductSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Currency   string    `json:"currency"`
}

// ProductDetail is the single-item projection.
type ProductDetail struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
}

// ProductInput carries client-supplied product fields. It deliberately has
// no tenant field.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

func summaryOf(p Product) ProductSummary {
	return ProductSummary{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Currency:   p.Currency,
	}
}

func detailOf(p Product) ProductDetail {
	return ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Active:      p.Active,
	}
}
