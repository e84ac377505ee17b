package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChartData_MargemPonderadaPorData(t *testing.T) {
	// Lucro 50 sobre 100 e lucro 90 sobre 900 no mesmo dia
	entries := []*Entry{
		{ProductID: "p1", Date: "2024-03-01", GMV: 100, Ads: 44},
		{ProductID: "p2", Date: "2024-03-01", GMV: 900, Ads: 756},
	}

	chart := ComputeChartData(entries, nil)

	require.Len(t, chart.MarginByDate.Data, 1)
	assert.InDelta(t, 14, chart.MarginByDate.Data[0], 1e-9)
	assert.InDelta(t, 140, chart.ProfitByDate.Data[0], 1e-9)
}

func TestComputeChartData_SeriesOrdenadasPorData(t *testing.T) {
	entries := []*Entry{
		{ProductID: "p1", Date: "2024-03-03", GMV: 100},
		{ProductID: "p1", Date: "2024-03-01", GMV: 50},
		{ProductID: "p1", Date: "2024-03-02", GMV: -20},
		{ProductID: "p1", Date: "2024-03-01", GMV: 50},
	}

	chart := ComputeChartData(entries, nil)

	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, chart.ProfitByDate.Labels)
	assert.Equal(t, chart.ProfitByDate.Labels, chart.MarginByDate.Labels)
	assert.InDelta(t, 94, chart.ProfitByDate.Data[0], 1e-9)
	assert.InDelta(t, -18.8, chart.ProfitByDate.Data[1], 1e-9)
	// GMV negativo no dia não gera margem
	assert.Zero(t, chart.MarginByDate.Data[1])
	assert.InDelta(t, 94, chart.MarginByDate.Data[2], 1e-9)
}

func TestComputeChartData_ComparativoDeProdutos(t *testing.T) {
	entries := []*Entry{
		{ProductID: "p1", Product: product("p1", "Pequeno"), Date: "2024-03-01", GMV: 100},
		{ProductID: "p2", Product: product("p2", "Grande"), Date: "2024-03-01", GMV: 900},
		{ProductID: "p3", Product: product("p3", "Médio"), Date: "2024-03-02", GMV: 100},
		{ProductID: "p2", Product: product("p2", "Grande"), Date: "2024-03-02", GMV: 100},
	}

	chart := ComputeChartData(entries, nil)

	// Empate de GMV mantém a ordem em que os produtos apareceram
	assert.Equal(t, []string{"Grande", "Pequeno", "Médio"}, chart.ProductCompare.Labels)
	assert.InDeltaSlice(t, []float64{1000, 100, 100}, chart.ProductCompare.GMV, 1e-9)
	assert.InDeltaSlice(t, []float64{940, 94, 94}, chart.ProductCompare.Profit, 1e-9)
}

func TestComputeChartData_ComposicaoDeCustos(t *testing.T) {
	tests := []struct {
		name           string
		entries        []*Entry
		costs          CostMap
		expectedLabels []string
		expectedColors []string
		expectedRaw    []float64
		expectedData   []float64
	}{
		{
			name: "Sem custo de produto não exibe COGS",
			entries: []*Entry{
				{ProductID: "p1", GMV: 1000, Shipping: 100, Affiliate: 100, Ads: 140, UnitsSold: 5},
			},
			expectedLabels: []string{"Platform Fee (6%)", "Shipping", "Affiliate", "Ads", "Net Profit"},
			expectedColors: []string{"#ff6384", "#ff9f40", "#ffcd56", "#EE1D52", "#69C9D0"},
			expectedRaw:    []float64{60, 100, 100, 140, 600},
			expectedData:   []float64{6, 10, 10, 14, 60},
		},
		{
			name: "Com custo de produto exibe COGS",
			entries: []*Entry{
				{ProductID: "p1", GMV: 1000, Shipping: 100, Affiliate: 100, Ads: 140, UnitsSold: 5},
			},
			costs:          CostMap{"p1": 20},
			expectedLabels: []string{"Platform Fee (6%)", "COGS", "Shipping", "Affiliate", "Ads", "Net Profit"},
			expectedColors: []string{"#ff6384", "#f97316", "#ff9f40", "#ffcd56", "#EE1D52", "#69C9D0"},
			expectedRaw:    []float64{60, 100, 100, 100, 140, 500},
			expectedData:   []float64{6, 10, 10, 10, 14, 50},
		},
		{
			name: "Prejuízo é limitado a zero na composição",
			entries: []*Entry{
				{ProductID: "p1", GMV: 100, Ads: 194},
			},
			expectedLabels: []string{"Platform Fee (6%)", "Shipping", "Affiliate", "Ads", "Net Profit"},
			expectedColors: []string{"#ff6384", "#ff9f40", "#ffcd56", "#EE1D52", "#69C9D0"},
			expectedRaw:    []float64{6, 0, 0, 194, 0},
			expectedData:   []float64{3, 0, 0, 97, 0},
		},
		{
			name:           "Sem registros todos os percentuais são zero",
			entries:        nil,
			expectedLabels: []string{"Platform Fee (6%)", "Shipping", "Affiliate", "Ads", "Net Profit"},
			expectedColors: []string{"#ff6384", "#ff9f40", "#ffcd56", "#EE1D52", "#69C9D0"},
			expectedRaw:    []float64{0, 0, 0, 0, 0},
			expectedData:   []float64{0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := ComputeChartData(tt.entries, tt.costs).CostBreakdown

			assert.Equal(t, tt.expectedLabels, breakdown.Labels)
			assert.Equal(t, tt.expectedColors, breakdown.Colors)
			assert.InDeltaSlice(t, tt.expectedRaw, breakdown.RawAmounts, 1e-9)
			assert.InDeltaSlice(t, tt.expectedData, breakdown.Data, 1e-9)
		})
	}
}
