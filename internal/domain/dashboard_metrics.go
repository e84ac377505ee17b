package domain

// ProductProfit acumula os valores de um produto (agregado pelo nome)
type ProductProfit struct {
	Profit    float64 `json:"profit"`
	GMV       float64 `json:"gmv"`
	UnitsSold int     `json:"units_sold"`
}

type TopProduct struct {
	Name   string  `json:"name"`
	Profit float64 `json:"profit"`
}

// DashboardMetrics são os totais do conjunto de registros filtrado
type DashboardMetrics struct {
	TotalGMV         float64                   `json:"total_gmv"`
	TotalNetProfit   float64                   `json:"total_net_profit"`
	AvgMargin        float64                   `json:"avg_margin"`
	TotalVideos      int                       `json:"total_videos"`
	TotalViews       int                       `json:"total_views"`
	TotalAds         float64                   `json:"total_ads"`
	TotalAffiliate   float64                   `json:"total_affiliate"`
	TotalShipping    float64                   `json:"total_shipping"`
	TotalUnitsSold   int                       `json:"total_units_sold"`
	EntryCount       int                       `json:"entry_count"`
	AvgViewsPerVideo float64                   `json:"avg_views_per_video"`
	RevenuePerVideo  float64                   `json:"revenue_per_video"`
	ProfitPerVideo   float64                   `json:"profit_per_video"`
	ROAS             *float64                  `json:"roas"` // nil quando não há gasto com anúncios
	TopProduct       *TopProduct               `json:"top_product"`
	ProductProfits   map[string]*ProductProfit `json:"product_profits"`
}

// ComputeDashboardMetrics agrega os registros em uma única passada
func ComputeDashboardMetrics(entries []*Entry, costs CostMap) *DashboardMetrics {
	metrics := &DashboardMetrics{
		ProductProfits: make(map[string]*ProductProfit),
	}

	// Ordem de inserção para desempate determinístico do top produto
	productOrder := make([]string, 0)

	for _, e := range entries {
		c := CalculateEntry(e, costs)
		gmv := num(e.GMV)

		metrics.TotalGMV += gmv
		metrics.TotalVideos += e.VideosPosted
		metrics.TotalViews += e.Views
		metrics.TotalShipping += num(e.Shipping)
		metrics.TotalAffiliate += num(e.Affiliate)
		metrics.TotalAds += num(e.Ads)
		metrics.TotalNetProfit += c.TotalNetProfit
		metrics.TotalUnitsSold += e.UnitsSold

		name := e.ProductName()
		product, exists := metrics.ProductProfits[name]
		if !exists {
			product = &ProductProfit{}
			metrics.ProductProfits[name] = product
			productOrder = append(productOrder, name)
		}
		product.Profit += c.TotalNetProfit
		product.GMV += gmv
		product.UnitsSold += e.UnitsSold
	}

	metrics.EntryCount = len(entries)

	totalVideos := float64(metrics.TotalVideos)
	metrics.AvgMargin = safeDiv(metrics.TotalNetProfit, metrics.TotalGMV) * 100
	metrics.AvgViewsPerVideo = safeDiv(float64(metrics.TotalViews), totalVideos)
	metrics.RevenuePerVideo = safeDiv(metrics.TotalGMV, totalVideos)
	metrics.ProfitPerVideo = safeDiv(metrics.TotalNetProfit, totalVideos)

	if metrics.TotalAds > 0 {
		roas := metrics.TotalGMV / metrics.TotalAds
		metrics.ROAS = &roas
	}

	for _, name := range productOrder {
		profit := metrics.ProductProfits[name].Profit
		if metrics.TopProduct == nil || profit > metrics.TopProduct.Profit {
			metrics.TopProduct = &TopProduct{Name: name, Profit: profit}
		}
	}

	return metrics
}
