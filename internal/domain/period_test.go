package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestParseQuickFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected QuickFilter
		wantErr  bool
	}{
		{input: "", expected: QuickFilterCustom},
		{input: "all", expected: QuickFilterAll},
		{input: "ALL", expected: QuickFilterAll},
		{input: "0", expected: QuickFilterToday},
		{input: "1", expected: QuickFilterYesterday},
		{input: "30", expected: QuickFilter(30)},
		{input: "-3", wantErr: true},
		{input: "semana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			filter, err := ParseQuickFilter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

func TestQuickFilter_String(t *testing.T) {
	tests := []struct {
		filter   QuickFilter
		expected string
	}{
		{filter: QuickFilterCustom, expected: "custom"},
		{filter: QuickFilterAll, expected: QuickFilterAllValue},
		{filter: QuickFilterToday, expected: "0"},
		{filter: QuickFilter(7), expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.String())

			parsed, err := ParseQuickFilter(tt.filter.String())
			if tt.filter == QuickFilterCustom {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.filter, parsed)
		})
	}
}

func TestQuickFilter_Bounds(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

	from, to := QuickFilterToday.Bounds(now)
	assert.Equal(t, "2024-03-01", *from)
	assert.Equal(t, "2024-03-01", *to)

	from, to = QuickFilterYesterday.Bounds(now)
	assert.Equal(t, "2024-02-29", *from)
	assert.Equal(t, "2024-02-29", *to)

	from, to = QuickFilter(7).Bounds(now)
	assert.Equal(t, "2024-02-23", *from)
	assert.Equal(t, "2024-03-01", *to)

	from, to = QuickFilterAll.Bounds(now)
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, to = QuickFilterCustom.Bounds(now)
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestPreviousPeriod(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   QuickFilter
		dateFrom *string
		dateTo   *string
		expected *Period
	}{
		{
			name:     "Hoje compara com ontem",
			filter:   QuickFilterToday,
			dateFrom: strPtr("2024-01-15"),
			dateTo:   strPtr("2024-01-15"),
			expected: &Period{From: "2024-01-14", To: "2024-01-14"},
		},
		{
			name:     "Ontem compara com anteontem",
			filter:   QuickFilterYesterday,
			dateFrom: strPtr("2024-01-14"),
			dateTo:   strPtr("2024-01-14"),
			expected: &Period{From: "2024-01-13", To: "2024-01-13"},
		},
		{
			name:     "Janela de 7 dias compara com os 7 dias anteriores",
			filter:   QuickFilter(7),
			dateFrom: strPtr("2024-01-08"),
			dateTo:   strPtr("2024-01-14"),
			expected: &Period{From: "2024-01-01", To: "2024-01-07"},
		},
		{
			name:     "Período customizado atravessando o ano",
			filter:   QuickFilterCustom,
			dateFrom: strPtr("2024-01-01"),
			dateTo:   strPtr("2024-01-10"),
			expected: &Period{From: "2023-12-22", To: "2023-12-31"},
		},
		{
			name:     "Todo o histórico não possui comparação",
			filter:   QuickFilterAll,
			dateFrom: strPtr("2024-01-01"),
			dateTo:   strPtr("2024-01-10"),
			expected: nil,
		},
		{
			name:     "Sem limites não possui comparação",
			filter:   QuickFilterCustom,
			expected: nil,
		},
		{
			name:     "Apenas uma das datas não possui comparação",
			filter:   QuickFilterCustom,
			dateFrom: strPtr("2024-01-01"),
			expected: nil,
		},
		{
			name:     "Data inválida não possui comparação",
			filter:   QuickFilterCustom,
			dateFrom: strPtr("01/01/2024"),
			dateTo:   strPtr("2024-01-10"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreviousPeriod(tt.filter, tt.dateFrom, tt.dateTo, now))
		})
	}
}

func TestPeriod_Days(t *testing.T) {
	assert.Equal(t, 7, Period{From: "2024-01-01", To: "2024-01-07"}.Days())
	assert.Equal(t, 1, Period{From: "2024-02-29", To: "2024-02-29"}.Days())
	assert.Equal(t, 0, Period{From: "x", To: "2024-02-29"}.Days())
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected *float64
	}{
		{name: "Crescimento", current: 150, previous: 100, expected: floatPtr(50)},
		{name: "Queda", current: 50, previous: 100, expected: floatPtr(-50)},
		{name: "Base negativa usa valor absoluto", current: 50, previous: -100, expected: floatPtr(150)},
		{name: "Base zero com valor positivo é +100", current: 1_000_000, previous: 0, expected: floatPtr(100)},
		{name: "Base zero sem crescimento é nulo", current: 0, previous: 0, expected: nil},
		{name: "Base zero com valor negativo é nulo", current: -10, previous: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PercentChange(tt.current, tt.previous)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 1e-9)
		})
	}
}

func TestCompareMetrics(t *testing.T) {
	current := &DashboardMetrics{TotalGMV: 200, TotalNetProfit: 50, TotalVideos: 4, TotalAds: 0, TotalAffiliate: 10, ProfitPerVideo: 12.5}
	previous := &DashboardMetrics{TotalGMV: 100, TotalNetProfit: 100, TotalVideos: 0, TotalAds: 0, TotalAffiliate: 20, ProfitPerVideo: 0}

	changes := CompareMetrics(current, previous)

	require.NotNil(t, changes.GMV)
	assert.InDelta(t, 100, *changes.GMV, 1e-9)
	require.NotNil(t, changes.NetProfit)
	assert.InDelta(t, -50, *changes.NetProfit, 1e-9)
	require.NotNil(t, changes.Videos)
	assert.InDelta(t, 100, *changes.Videos, 1e-9)
	assert.Nil(t, changes.Ads)
	require.NotNil(t, changes.Affiliate)
	assert.InDelta(t, -50, *changes.Affiliate, 1e-9)
	require.NotNil(t, changes.ProfitPerVideo)
	assert.InDelta(t, 100, *changes.ProfitPerVideo, 1e-9)

	assert.Equal(t, MetricChanges{}, CompareMetrics(current, nil))
}

func floatPtr(v float64) *float64 {
	return &v
}
