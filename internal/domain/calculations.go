package domain

import "math"

const (
	// PlatformFeeRate é a taxa fixa cobrada pela plataforma sobre o GMV
	PlatformFeeRate = 0.06
	// PayoutRate é o inverso da taxa da plataforma
	PayoutRate = 1 - PlatformFeeRate
)

// MarginLevel classifica a margem para exibição
type MarginLevel string

const (
	MarginLevelGreen  MarginLevel = "green"
	MarginLevelYellow MarginLevel = "yellow"
	MarginLevelRed    MarginLevel = "red"
)

// EntryCalculations são as métricas derivadas de um único registro
type EntryCalculations struct {
	GrossRevenuePerVideo float64 `json:"gross_revenue_per_video"`
	CostOfGoods          float64 `json:"cost_of_goods"` // taxa da plataforma + custo dos produtos
	TotalNetProfit       float64 `json:"total_net_profit"`
	NetProfitPerVideo    float64 `json:"net_profit_per_video"`
	MarginPercent        float64 `json:"margin_percent"`
}

// CalculateEntry calcula as métricas financeiras de um registro.
// Não altera o registro nem o mapa de custos.
func CalculateEntry(entry *Entry, costs CostMap) EntryCalculations {
	gmv := num(entry.GMV)
	videos := float64(entry.VideosPosted)
	shipping := num(entry.Shipping)
	affiliate := num(entry.Affiliate)
	ads := num(entry.Ads)

	platformFee := PlatformFee(gmv)
	totalCogs := UserCOGS(entry, costs)
	totalNetProfit := gmv - platformFee - shipping - affiliate - ads - totalCogs

	calc := EntryCalculations{
		CostOfGoods:    platformFee + totalCogs,
		TotalNetProfit: totalNetProfit,
	}

	if videos > 0 {
		calc.GrossRevenuePerVideo = gmv / videos
		calc.NetProfitPerVideo = totalNetProfit / videos
	}

	if gmv > 0 {
		calc.MarginPercent = (totalNetProfit / gmv) * 100
	}

	return calc
}

// PlatformFee calcula a taxa da plataforma, inclusive sobre GMV negativo (estorno)
func PlatformFee(gmv float64) float64 {
	return num(gmv) * PlatformFeeRate
}

// UnitCost busca o custo unitário do registro: variante, depois produto, depois zero.
// Um custo zero na variante também cai para o custo do produto.
func UnitCost(entry *Entry, costs CostMap) float64 {
	if costs == nil {
		return 0
	}

	if entry.VariantID != "" {
		if cost := num(costs[CostKey(entry.ProductID, entry.VariantID)]); cost != 0 {
			return cost
		}
	}

	return num(costs[entry.ProductID])
}

// UserCOGS é o custo dos produtos vendidos informado pelo usuário
func UserCOGS(entry *Entry, costs CostMap) float64 {
	return UnitCost(entry, costs) * float64(entry.UnitsSold)
}

// GetMarginLevel classifica a margem em faixas de cor
func GetMarginLevel(margin float64) MarginLevel {
	if margin >= 25 {
		return MarginLevelGreen
	}
	if margin >= 10 {
		return MarginLevelYellow
	}
	return MarginLevelRed
}

// num converte valores não finitos para zero
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// safeDiv retorna zero quando o denominador não é positivo
func safeDiv(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}
