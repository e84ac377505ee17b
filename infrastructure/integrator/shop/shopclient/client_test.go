package shopclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-pnl-api/infrastructure/demo"
	"github.com/vfg2006/shop-pnl-api/internal/config"
)

func TestShopClient_SearchOrders_Paginacao(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/api/orders/search", r.URL.Path)
		assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "1704067200", r.URL.Query().Get("create_time_ge"))
		assert.Equal(t, "1704240000", r.URL.Query().Get("create_time_lt"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page_token") == "" {
			_, _ = w.Write([]byte(`{"orders":[{"id":"1","create_time":1704100000,"status":"completed","payment":{"total_amount":10.5,"shipping_fee":1}}],"next_page_token":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"orders":[{"id":"2","create_time":1704200000,"status":"shipped","payment":{"total_amount":20,"shipping_fee":2}}]}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		App:  config.App{Timezone: "UTC"},
		Shop: config.Shop{URL: server.URL + "/api", AccessToken: "token-teste"},
	})

	orders, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "2024-01-01", EndDate: "2024-01-02"})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, 10.5, orders[0].Payment.TotalAmount)
	assert.Equal(t, "2", orders[1].ID)
}

func TestShopClient_SearchOrders_TokenRepetido(t *testing.T) {
	tests := []struct {
		name          string
		nextTokens    map[string]string
		expectedCalls int
	}{
		{
			name:          "Mesmo token em todas as páginas",
			nextTokens:    map[string]string{"": "p2", "p2": "p2"},
			expectedCalls: 2,
		},
		{
			name:          "Ciclo entre dois tokens",
			nextTokens:    map[string]string{"": "p2", "p2": "p3", "p3": "p2"},
			expectedCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++

				next := tt.nextTokens[r.URL.Query().Get("page_token")]
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"orders":[],"next_page_token":"` + next + `"}`))
			}))
			defer server.Close()

			client := NewClient(&config.Config{
				App:  config.App{Timezone: "UTC"},
				Shop: config.Shop{URL: server.URL},
			})

			orders, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "2024-01-01", EndDate: "2024-01-02"})

			assert.ErrorIs(t, err, ErrPaginationLoop)
			assert.Nil(t, orders)
			assert.Equal(t, tt.expectedCalls, calls)
		})
	}
}

func TestShopClient_SearchOrders_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		App:  config.App{Timezone: "UTC"},
		Shop: config.Shop{URL: server.URL},
	})

	_, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "2024-01-01", EndDate: "2024-01-02"})

	assert.Error(t, err)
}

func TestShopClient_SearchOrders_DataInvalida(t *testing.T) {
	client := NewClient(&config.Config{App: config.App{Timezone: "UTC"}})

	_, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "01/01/2024", EndDate: "2024-01-02"})

	assert.Error(t, err)
}

func TestDemoClient_SearchOrders(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	client := NewDemoClient(func() time.Time { return now })

	all, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "2024-01-01", EndDate: "2024-06-15"})
	require.NoError(t, err)
	assert.Len(t, all, len(demo.GenerateOrders(now)))

	lastWeek, err := client.SearchOrders(context.Background(), OrderSearchParams{StartDate: "2024-06-08", EndDate: "2024-06-15"})
	require.NoError(t, err)
	for _, o := range lastWeek {
		date := time.Unix(o.CreateTime, 0).UTC().Format(time.DateOnly)
		assert.GreaterOrEqual(t, date, "2024-06-08")
		assert.LessOrEqual(t, date, "2024-06-15")
	}
}
