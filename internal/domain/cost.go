package domain

import "time"

// CostKeySeparator separa o ID do produto e o ID da variante na chave do CostMap
const CostKeySeparator = "-"

// CostMap é o mapa de custo unitário por produto ou variante
type CostMap map[string]float64

// CostKey monta a chave do CostMap para um produto e variante opcional
func CostKey(productID, variantID string) string {
	if variantID == "" {
		return productID
	}
	return productID + CostKeySeparator + variantID
}

// ProductCost é o custo unitário informado pelo usuário
type ProductCost struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id" validate:"required"`
	VariantID   string    `json:"variant_id,omitempty"`
	CostPerUnit float64   `json:"cost_per_unit" validate:"gte=0"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Key retorna a chave do custo no CostMap
func (c *ProductCost) Key() string {
	return CostKey(c.ProductID, c.VariantID)
}

// BuildCostMap monta o CostMap a partir dos custos persistidos
func BuildCostMap(costs []*ProductCost) CostMap {
	costMap := make(CostMap, len(costs))
	for _, c := range costs {
		costMap[c.Key()] = c.CostPerUnit
	}
	return costMap
}

// ProductCostRequest é o payload de gravação de um custo unitário
type ProductCostRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	VariantID   string  `json:"variant_id"`
	CostPerUnit float64 `json:"cost_per_unit" validate:"gte=0"`
}
