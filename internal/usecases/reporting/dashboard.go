package reporting

import (
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

// DashboardRequest são os filtros recebidos pelo painel
type DashboardRequest struct {
	QuickFilter domain.QuickFilter
	DateFrom    *string
	DateTo      *string
	ProductID   string
}

// AppliedFilters são os filtros efetivamente usados, já resolvidos em datas
type AppliedFilters struct {
	QuickFilter string  `json:"quick_filter"`
	DateFrom    *string `json:"date_from"`
	DateTo      *string `json:"date_to"`
	ProductID   string  `json:"product_id"`
}

// Display são os valores do painel formatados para exibição
type Display struct {
	GMV             string `json:"gmv"`
	NetProfit       string `json:"net_profit"`
	AvgMargin       string `json:"avg_margin"`
	Videos          string `json:"videos"`
	Views           string `json:"views"`
	UnitsSold       string `json:"units_sold"`
	Ads             string `json:"ads"`
	Affiliate       string `json:"affiliate"`
	Shipping        string `json:"shipping"`
	RevenuePerVideo string `json:"revenue_per_video"`
	ProfitPerVideo  string `json:"profit_per_video"`
	ROAS            string `json:"roas"`

	GMVChange            string `json:"gmv_change"`
	NetProfitChange      string `json:"net_profit_change"`
	VideosChange         string `json:"videos_change"`
	AdsChange            string `json:"ads_change"`
	AffiliateChange      string `json:"affiliate_change"`
	ProfitPerVideoChange string `json:"profit_per_video_change"`

	ForecastSales  string `json:"forecast_sales"`
	ForecastProfit string `json:"forecast_profit"`
	ForecastPayout string `json:"forecast_payout"`
	ForecastMargin string `json:"forecast_margin"`
}

// Dashboard é a resposta completa do painel
type Dashboard struct {
	Filters    AppliedFilters           `json:"filters"`
	Metrics    *domain.DashboardMetrics `json:"metrics"`
	Charts     *domain.ChartData        `json:"charts"`
	Comparison *domain.PeriodComparison `json:"comparison"`
	Forecast   *domain.Forecast         `json:"forecast"`
	Display    Display                  `json:"display"`
}

func buildDisplay(metrics *domain.DashboardMetrics, changes domain.MetricChanges, forecast *domain.Forecast) Display {
	return Display{
		GMV:             utils.FormatMoney(metrics.TotalGMV),
		NetProfit:       utils.FormatMoney(metrics.TotalNetProfit),
		AvgMargin:       utils.FormatPercent(metrics.AvgMargin),
		Videos:          utils.FormatInt(float64(metrics.TotalVideos)),
		Views:           utils.FormatInt(float64(metrics.TotalViews)),
		UnitsSold:       utils.FormatInt(float64(metrics.TotalUnitsSold)),
		Ads:             utils.FormatMoney(metrics.TotalAds),
		Affiliate:       utils.FormatMoney(metrics.TotalAffiliate),
		Shipping:        utils.FormatMoney(metrics.TotalShipping),
		RevenuePerVideo: utils.FormatMoney(metrics.RevenuePerVideo),
		ProfitPerVideo:  utils.FormatMoney(metrics.ProfitPerVideo),
		ROAS:            utils.FormatROAS(metrics.ROAS),

		GMVChange:            utils.FormatChange(changes.GMV),
		NetProfitChange:      utils.FormatChange(changes.NetProfit),
		VideosChange:         utils.FormatChange(changes.Videos),
		AdsChange:            utils.FormatChange(changes.Ads),
		AffiliateChange:      utils.FormatChange(changes.Affiliate),
		ProfitPerVideoChange: utils.FormatChange(changes.ProfitPerVideo),

		ForecastSales:  utils.FormatMoney(forecast.Sales),
		ForecastProfit: utils.FormatMoney(forecast.Profit),
		ForecastPayout: utils.FormatMoney(forecast.Payout),
		ForecastMargin: utils.FormatPercent(forecast.Margin),
	}
}
