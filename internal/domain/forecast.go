package domain

import (
	"math"
	"time"
)

// ForecastWindowDays é a janela usada para as médias diárias da projeção
const ForecastWindowDays = 30

// MonthTotals são os valores efetivos acumulados em um mês
type MonthTotals struct {
	Sales     float64 `json:"sales"`
	Orders    int     `json:"orders"`
	Videos    int     `json:"videos"`
	AdCost    float64 `json:"ad_cost"`
	Affiliate float64 `json:"affiliate"`
	Profit    float64 `json:"profit"`
	UnitsSold int     `json:"units_sold"`
}

// DailyAverages são as médias diárias da janela de projeção
type DailyAverages struct {
	Sales  float64 `json:"sales"`
	Orders float64 `json:"orders"`
	Profit float64 `json:"profit"`
	Videos float64 `json:"videos"`
}

// Forecast é a projeção de fechamento do mês corrente
type Forecast struct {
	Month         string        `json:"month"` // Formato yyyy-mm
	DaysInMonth   int           `json:"days_in_month"`
	DayOfMonth    int           `json:"day_of_month"`
	DaysRemaining int           `json:"days_remaining"`
	Progress      float64       `json:"progress"`
	DailyAverages DailyAverages `json:"daily_averages"`
	Actual        MonthTotals   `json:"actual"`

	Sales  float64 `json:"forecasted_sales"`
	Orders int     `json:"forecasted_orders"`
	Profit float64 `json:"forecasted_profit"`
	Videos int     `json:"forecasted_videos"`
	Payout float64 `json:"forecasted_payout"`
	Margin float64 `json:"forecasted_margin"`

	PreviousMonthSales  float64  `json:"previous_month_sales"`
	PreviousMonthProfit float64  `json:"previous_month_profit"`
	SalesChange         *float64 `json:"sales_change"`
	ProfitChange        *float64 `json:"profit_change"`
}

// ComputeForecast projeta o fechamento do mês de now a partir do histórico completo.
// O histórico não deve estar filtrado por período, pois a média precisa de uma base estável.
func ComputeForecast(entries []*Entry, costs CostMap, now time.Time) *Forecast {
	year, month, day := now.Date()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	today := now.Format(DateLayout)
	windowStart := now.AddDate(0, 0, -ForecastWindowDays).Format(DateLayout)
	currentMonth := now.Format("2006-01")
	previousMonth := time.Date(year, month-1, 1, 0, 0, 0, 0, now.Location()).Format("2006-01")

	forecast := &Forecast{
		Month:         currentMonth,
		DaysInMonth:   daysInMonth,
		DayOfMonth:    day,
		DaysRemaining: daysInMonth - day,
		Progress:      float64(day) / float64(daysInMonth) * 100,
	}

	var (
		windowSales, windowProfit float64
		windowOrders, windowVideo int
		prevSales, prevProfit     float64
	)

	for _, e := range entries {
		profit := CalculateEntry(e, costs).TotalNetProfit
		gmv := num(e.GMV)

		if e.Date >= windowStart && e.Date <= today {
			windowSales += gmv
			windowProfit += profit
			windowOrders++
			windowVideo += e.VideosPosted
		}

		switch monthOf(e.Date) {
		case currentMonth:
			forecast.Actual.Sales += gmv
			forecast.Actual.Orders++
			forecast.Actual.Videos += e.VideosPosted
			forecast.Actual.AdCost += num(e.Ads)
			forecast.Actual.Affiliate += num(e.Affiliate)
			forecast.Actual.Profit += profit
			forecast.Actual.UnitsSold += e.UnitsSold
		case previousMonth:
			prevSales += gmv
			prevProfit += profit
		}
	}

	forecast.DailyAverages = DailyAverages{
		Sales:  windowSales / ForecastWindowDays,
		Orders: float64(windowOrders) / ForecastWindowDays,
		Profit: windowProfit / ForecastWindowDays,
		Videos: float64(windowVideo) / ForecastWindowDays,
	}

	remaining := float64(forecast.DaysRemaining)
	forecast.Sales = forecast.Actual.Sales + forecast.DailyAverages.Sales*remaining
	forecast.Orders = int(math.Round(float64(forecast.Actual.Orders) + forecast.DailyAverages.Orders*remaining))
	forecast.Profit = forecast.Actual.Profit + forecast.DailyAverages.Profit*remaining
	forecast.Videos = int(math.Round(float64(forecast.Actual.Videos) + forecast.DailyAverages.Videos*remaining))
	forecast.Payout = forecast.Sales * PayoutRate
	forecast.Margin = safeDiv(forecast.Profit, forecast.Sales) * 100

	forecast.PreviousMonthSales = prevSales
	forecast.PreviousMonthProfit = prevProfit

	// Vendas só são comparadas com base positiva; lucro aceita base negativa
	if prevSales > 0 {
		change := ((forecast.Sales - prevSales) / prevSales) * 100
		forecast.SalesChange = &change
	}
	if prevProfit != 0 {
		change := ((forecast.Profit - prevProfit) / abs(prevProfit)) * 100
		forecast.ProfitChange = &change
	}

	return forecast
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
