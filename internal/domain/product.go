package domain

import "time"

const (
	UnknownProductName = "Unknown"
	AllProducts        = "all"
)

type Variant struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	SKU       *string   `json:"sku,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Product representa um item vendável da loja
type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Variants  []*Variant `json:"variants,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// HasVariants indica se o custo unitário é controlado por variante
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// FindVariant busca uma variante pelo ID
func (p *Product) FindVariant(variantID string) *Variant {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v
		}
	}
	return nil
}

// VariantRequest é o payload de criação de uma variante
type VariantRequest struct {
	Name string  `json:"name" validate:"required,max=120"`
	SKU  *string `json:"sku" validate:"omitempty,max=64"`
}

// ProductRequest é o payload de criação de um produto, com variantes opcionais
type ProductRequest struct {
	Name     string            `json:"name" validate:"required,max=120"`
	Variants []*VariantRequest `json:"variants" validate:"omitempty,dive,required"`
}
