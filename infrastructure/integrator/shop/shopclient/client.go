package shopclient

import (
	"context"
	"net/http"
	"time"

	shopdomain "github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/domain"
	"github.com/vfg2006/shop-pnl-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type OrderSearchParams struct {
	StartDate string
	EndDate   string
}

type Client interface {
	SearchOrders(ctx context.Context, params OrderSearchParams) ([]shopdomain.Order, error)
}

type ShopClient struct {
	httpClient *http.Client
	config     config.Shop
	loc        *time.Location
}

// NewClient cria o cliente HTTP da API de pedidos da loja
func NewClient(cfg *config.Config) Client {
	return &ShopClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.Shop,
		loc:    cfg.App.Location(),
	}
}
