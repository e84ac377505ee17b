package shopdomain

import (
	"sort"
	"time"
)

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

type Payment struct {
	TotalAmount float64 `json:"total_amount"`
	ShippingFee float64 `json:"shipping_fee"`
}

type LineItem struct {
	SKU                string  `json:"sku,omitempty"`
	Quantity           int     `json:"quantity"`
	PlatformCommission float64 `json:"platform_commission"`
}

// Order é um pedido retornado pela API da loja
type Order struct {
	ID         string      `json:"id"`
	CreateTime int64       `json:"create_time"` // Unix em segundos
	Status     OrderStatus `json:"status"`
	Payment    Payment     `json:"payment"`
	LineItems  []LineItem  `json:"line_items"`
}

// DailyOrderSummary são os pedidos de um dia somados
type DailyOrderSummary struct {
	Date                string  `json:"date"`
	TotalAmount         float64 `json:"total_amount"`
	OrderCount          int     `json:"order_count"`
	UnitsSold           int     `json:"units_sold"`
	ShippingFee         float64 `json:"shipping_fee"`
	AffiliateCommission float64 `json:"affiliate_commission"`
}

// AggregateDaily agrupa os pedidos pela data de criação no fuso informado.
// Cancelados são ignorados e estornos abatem o valor total.
func AggregateDaily(orders []Order, loc *time.Location) []DailyOrderSummary {
	byDate := make(map[string]*DailyOrderSummary)

	for _, order := range orders {
		if order.Status == OrderStatusCancelled {
			continue
		}

		date := time.Unix(order.CreateTime, 0).In(loc).Format(time.DateOnly)
		summary, ok := byDate[date]
		if !ok {
			summary = &DailyOrderSummary{Date: date}
			byDate[date] = summary
		}

		summary.OrderCount++
		summary.ShippingFee += order.Payment.ShippingFee

		if order.Status == OrderStatusRefunded {
			summary.TotalAmount -= order.Payment.TotalAmount
			continue
		}

		summary.TotalAmount += order.Payment.TotalAmount
		for _, item := range order.LineItems {
			summary.UnitsSold += item.Quantity
			summary.AffiliateCommission += item.PlatformCommission
		}
	}

	summaries := make([]DailyOrderSummary, 0, len(byDate))
	for _, summary := range byDate {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}
