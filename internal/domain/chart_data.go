package domain

import (
	"slices"
	"sort"
)

// Rótulos do gráfico de composição de custos
const (
	BreakdownPlatformFee = "Platform Fee (6%)"
	BreakdownCOGS        = "COGS"
	BreakdownShipping    = "Shipping"
	BreakdownAffiliate   = "Affiliate"
	BreakdownAds         = "Ads"
	BreakdownNetProfit   = "Net Profit"
)

var breakdownColors = map[string]string{
	BreakdownPlatformFee: "#ff6384",
	BreakdownCOGS:        "#f97316",
	BreakdownShipping:    "#ff9f40",
	BreakdownAffiliate:   "#ffcd56",
	BreakdownAds:         "#EE1D52",
	BreakdownNetProfit:   "#69C9D0",
}

// Series é uma série temporal indexada por data (yyyy-mm-dd)
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type ProductCompare struct {
	Labels []string  `json:"labels"`
	GMV    []float64 `json:"gmv"`
	Profit []float64 `json:"profit"`
}

// CostBreakdown é a composição percentual de custos e lucro
type CostBreakdown struct {
	Labels     []string  `json:"labels"`
	Data       []float64 `json:"data"`
	Colors     []string  `json:"colors"`
	RawAmounts []float64 `json:"raw_amounts"`
}

type ChartData struct {
	ProfitByDate   Series         `json:"profit_by_date"`
	ProductCompare ProductCompare `json:"product_compare"`
	CostBreakdown  CostBreakdown  `json:"cost_breakdown"`
	MarginByDate   Series         `json:"margin_by_date"`
}

type productTotals struct {
	name   string
	profit float64
	gmv    float64
}

// ComputeChartData monta as séries dos gráficos a partir dos registros
func ComputeChartData(entries []*Entry, costs CostMap) *ChartData {
	profitByDate := make(map[string]float64)
	gmvByDate := make(map[string]float64)
	products := make(map[string]*productTotals)
	productOrder := make([]*productTotals, 0)

	var (
		totalPlatformFee float64
		totalUserCogs    float64
		totalShipping    float64
		totalAffiliate   float64
		totalAds         float64
		totalProfit      float64
	)

	for _, e := range entries {
		c := CalculateEntry(e, costs)
		gmv := num(e.GMV)

		profitByDate[e.Date] += c.TotalNetProfit
		gmvByDate[e.Date] += gmv

		name := e.ProductName()
		product, exists := products[name]
		if !exists {
			product = &productTotals{name: name}
			products[name] = product
			productOrder = append(productOrder, product)
		}
		product.profit += c.TotalNetProfit
		product.gmv += gmv

		totalPlatformFee += PlatformFee(gmv)
		totalUserCogs += UserCOGS(e, costs)
		totalShipping += num(e.Shipping)
		totalAffiliate += num(e.Affiliate)
		totalAds += num(e.Ads)
		totalProfit += c.TotalNetProfit
	}

	dates := make([]string, 0, len(profitByDate))
	for date := range profitByDate {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	chart := &ChartData{
		ProfitByDate: Series{Labels: dates, Data: make([]float64, len(dates))},
		MarginByDate: Series{Labels: dates, Data: make([]float64, len(dates))},
	}

	for i, date := range dates {
		chart.ProfitByDate.Data[i] = profitByDate[date]
		// Margem ponderada pelo GMV do dia, não média das margens
		if gmvByDate[date] > 0 {
			chart.MarginByDate.Data[i] = (profitByDate[date] / gmvByDate[date]) * 100
		}
	}

	// Ordenação estável mantém a ordem de inserção em caso de empate
	sort.SliceStable(productOrder, func(i, j int) bool {
		return productOrder[i].gmv > productOrder[j].gmv
	})

	chart.ProductCompare = ProductCompare{
		Labels: make([]string, 0, len(productOrder)),
		GMV:    make([]float64, 0, len(productOrder)),
		Profit: make([]float64, 0, len(productOrder)),
	}
	for _, p := range productOrder {
		chart.ProductCompare.Labels = append(chart.ProductCompare.Labels, p.name)
		chart.ProductCompare.GMV = append(chart.ProductCompare.GMV, p.gmv)
		chart.ProductCompare.Profit = append(chart.ProductCompare.Profit, p.profit)
	}

	chart.CostBreakdown = buildCostBreakdown(
		totalPlatformFee,
		totalUserCogs,
		totalShipping,
		totalAffiliate,
		totalAds,
		totalProfit,
	)

	return chart
}

// buildCostBreakdown só inclui a categoria COGS quando existe custo informado no conjunto
func buildCostBreakdown(platformFee, userCogs, shipping, affiliate, ads, profit float64) CostBreakdown {
	labels := []string{BreakdownPlatformFee}
	amounts := []float64{max(0, platformFee)}

	if userCogs > 0 {
		labels = append(labels, BreakdownCOGS)
		amounts = append(amounts, max(0, userCogs))
	}

	labels = append(labels, BreakdownShipping, BreakdownAffiliate, BreakdownAds, BreakdownNetProfit)
	amounts = append(amounts, max(0, shipping), max(0, affiliate), max(0, ads), max(0, profit))

	total := 0.0
	for _, amount := range amounts {
		total += amount
	}

	breakdown := CostBreakdown{
		Labels:     labels,
		Data:       make([]float64, len(amounts)),
		Colors:     make([]string, len(labels)),
		RawAmounts: amounts,
	}

	for i, amount := range amounts {
		if total > 0 {
			breakdown.Data[i] = (amount / total) * 100
		}
		breakdown.Colors[i] = breakdownColors[labels[i]]
	}

	return breakdown
}
