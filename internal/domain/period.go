package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

// DateLayout é o formato das datas dos registros
const DateLayout = utils.DateLayout

// QuickFilterAllValue é o valor de consulta que seleciona todo o histórico
const QuickFilterAllValue = "all"

// QuickFilter é o atalho de período escolhido no painel.
// Valores >= 0 representam a quantidade de dias para trás.
type QuickFilter int

const (
	QuickFilterCustom    QuickFilter = -2
	QuickFilterAll       QuickFilter = -1
	QuickFilterToday     QuickFilter = 0
	QuickFilterYesterday QuickFilter = 1
)

// ParseQuickFilter converte o parâmetro de consulta: vazio é período customizado,
// "all" é todo o histórico e um inteiro é a quantidade de dias.
func ParseQuickFilter(value string) (QuickFilter, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "":
		return QuickFilterCustom, nil
	case QuickFilterAllValue:
		return QuickFilterAll, nil
	}

	days, err := strconv.Atoi(value)
	if err != nil || days < 0 {
		return QuickFilterCustom, fmt.Errorf("quick filter inválido: %q", value)
	}

	return QuickFilter(days), nil
}

func (q QuickFilter) String() string {
	switch q {
	case QuickFilterCustom:
		return "custom"
	case QuickFilterAll:
		return QuickFilterAllValue
	}
	return strconv.Itoa(int(q))
}

// Bounds resolve o atalho em datas de início e fim relativas a now.
// Períodos customizados e "all" não possuem limites próprios.
func (q QuickFilter) Bounds(now time.Time) (from, to *string) {
	switch {
	case q == QuickFilterToday:
		today := now.Format(DateLayout)
		return &today, &today
	case q == QuickFilterYesterday:
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		return &yesterday, &yesterday
	case q > QuickFilterYesterday:
		start := now.AddDate(0, 0, -int(q)).Format(DateLayout)
		end := now.Format(DateLayout)
		return &start, &end
	}
	return nil, nil
}

// Period é um intervalo fechado de datas
type Period struct {
	From string `json:"date_from"`
	To   string `json:"date_to"`
}

// Days retorna a quantidade de dias do período, incluindo as pontas
func (p Period) Days() int {
	from, errFrom := time.Parse(DateLayout, p.From)
	to, errTo := time.Parse(DateLayout, p.To)
	if errFrom != nil || errTo != nil {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// Filters converte o período em filtros de consulta para o produto informado
func (p Period) Filters(productID string) EntryFilters {
	from, to := p.From, p.To
	return EntryFilters{DateFrom: &from, DateTo: &to, ProductID: productID}
}

// PreviousPeriod calcula o período imediatamente anterior ao filtro ativo.
// Retorna nil quando não há base de comparação.
func PreviousPeriod(filter QuickFilter, dateFrom, dateTo *string, now time.Time) *Period {
	switch filter {
	case QuickFilterAll:
		return nil
	case QuickFilterToday:
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		return &Period{From: yesterday, To: yesterday}
	case QuickFilterYesterday:
		dayBefore := now.AddDate(0, 0, -2).Format(DateLayout)
		return &Period{From: dayBefore, To: dayBefore}
	}

	if dateFrom == nil || dateTo == nil || *dateFrom == "" || *dateTo == "" {
		return nil
	}

	from, err := time.Parse(DateLayout, *dateFrom)
	if err != nil {
		return nil
	}
	to, err := time.Parse(DateLayout, *dateTo)
	if err != nil || to.Before(from) {
		return nil
	}

	span := int(to.Sub(from).Hours()/24) + 1
	prevTo := from.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -(span - 1))

	return &Period{From: prevFrom.Format(DateLayout), To: prevTo.Format(DateLayout)}
}

// PercentChange calcula a variação percentual entre dois valores.
// Com base zero, qualquer valor positivo é reportado como +100%.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		if current > 0 {
			change := 100.0
			return &change
		}
		return nil
	}

	change := ((current - previous) / abs(previous)) * 100
	return &change
}

// MetricChanges são as variações em relação ao período anterior
type MetricChanges struct {
	GMV            *float64 `json:"gmv"`
	NetProfit      *float64 `json:"net_profit"`
	Videos         *float64 `json:"videos"`
	Ads            *float64 `json:"ads"`
	Affiliate      *float64 `json:"affiliate"`
	ProfitPerVideo *float64 `json:"profit_per_video"`
}

// CompareMetrics compara as métricas atuais com as do período anterior.
// Sem período anterior todas as variações ficam nulas.
func CompareMetrics(current, previous *DashboardMetrics) MetricChanges {
	if current == nil || previous == nil {
		return MetricChanges{}
	}

	return MetricChanges{
		GMV:            PercentChange(current.TotalGMV, previous.TotalGMV),
		NetProfit:      PercentChange(current.TotalNetProfit, previous.TotalNetProfit),
		Videos:         PercentChange(float64(current.TotalVideos), float64(previous.TotalVideos)),
		Ads:            PercentChange(current.TotalAds, previous.TotalAds),
		Affiliate:      PercentChange(current.TotalAffiliate, previous.TotalAffiliate),
		ProfitPerVideo: PercentChange(current.ProfitPerVideo, previous.ProfitPerVideo),
	}
}

// PeriodComparison agrupa o período anterior, suas métricas e as variações
type PeriodComparison struct {
	Period  *Period           `json:"period"`
	Metrics *DashboardMetrics `json:"metrics"`
	Changes MetricChanges     `json:"changes"`
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
