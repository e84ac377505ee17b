package shop

import (
	"context"
	"fmt"
	"time"

	shopdomain "github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/domain"
	"github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/shopclient"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ShopIntegrator interface {
	GetDailySummaries(ctx context.Context, startDate, endDate string) ([]shopdomain.DailyOrderSummary, error)
}

type ShopService struct {
	Client shopclient.Client
	loc    *time.Location
}

func New(client shopclient.Client, loc *time.Location) ShopIntegrator {
	return &ShopService{
		Client: client,
		loc:    loc,
	}
}

// GetDailySummaries busca os pedidos do período e devolve os totais por dia
func (s *ShopService) GetDailySummaries(ctx context.Context, startDate, endDate string) ([]shopdomain.DailyOrderSummary, error) {
	orders, err := s.Client.SearchOrders(ctx, shopclient.OrderSearchParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos da loja: %w", err)
	}

	return shopdomain.AggregateDaily(orders, s.loc), nil
}
