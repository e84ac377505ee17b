package shopclient

import (
	"context"
	"time"

	"github.com/vfg2006/shop-pnl-api/infrastructure/demo"
	shopdomain "github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/domain"
)

// DemoClient responde com os pedidos da loja de demonstração
type DemoClient struct {
	now func() time.Time
}

func NewDemoClient(now func() time.Time) Client {
	return &DemoClient{now: now}
}

func (c *DemoClient) SearchOrders(_ context.Context, params OrderSearchParams) ([]shopdomain.Order, error) {
	now := c.now()
	orders := make([]shopdomain.Order, 0)

	for _, o := range demo.GenerateOrders(now) {
		if o.Date < params.StartDate || o.Date > params.EndDate {
			continue
		}

		created, err := time.ParseInLocation(time.DateOnly, o.Date, now.Location())
		if err != nil {
			return nil, err
		}

		orders = append(orders, shopdomain.Order{
			ID:         o.ID,
			CreateTime: created.Add(12 * time.Hour).Unix(),
			Status:     shopdomain.OrderStatus(o.Status),
			Payment: shopdomain.Payment{
				TotalAmount: o.TotalAmount,
				ShippingFee: o.ShippingCost,
			},
			LineItems: []shopdomain.LineItem{
				{Quantity: o.Quantity, PlatformCommission: o.AffiliateCommission},
			},
		})
	}

	return orders, nil
}
