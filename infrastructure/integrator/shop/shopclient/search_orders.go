package shopclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	shopdomain "github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/domain"
)

const (
	pageSize = 100
	maxPages = 500
)

// ErrPaginationLoop indica que a API repetiu um token de página ou excedeu maxPages
var ErrPaginationLoop = errors.New("paginação de pedidos não avança")

type searchOrdersResponse struct {
	Orders        []shopdomain.Order `json:"orders"`
	NextPageToken string             `json:"next_page_token"`
}

// SearchOrders busca todos os pedidos criados entre as datas, percorrendo as páginas
func (c *ShopClient) SearchOrders(ctx context.Context, params OrderSearchParams) ([]shopdomain.Order, error) {
	start, err := time.ParseInLocation(time.DateOnly, params.StartDate, c.loc)
	if err != nil {
		return nil, fmt.Errorf("data inicial inválida: %w", err)
	}
	end, err := time.ParseInLocation(time.DateOnly, params.EndDate, c.loc)
	if err != nil {
		return nil, fmt.Errorf("data final inválida: %w", err)
	}

	orders := make([]shopdomain.Order, 0)
	pageToken := ""
	seenTokens := make(map[string]struct{})

	for pages := 0; pages < maxPages; pages++ {
		page, err := c.searchPage(ctx, start.Unix(), end.AddDate(0, 0, 1).Unix(), pageToken)
		if err != nil {
			return nil, err
		}

		orders = append(orders, page.Orders...)

		if page.NextPageToken == "" {
			return orders, nil
		}
		if _, seen := seenTokens[page.NextPageToken]; seen {
			return nil, fmt.Errorf("%w: token %q repetido", ErrPaginationLoop, page.NextPageToken)
		}
		seenTokens[page.NextPageToken] = struct{}{}
		pageToken = page.NextPageToken
	}

	return nil, fmt.Errorf("%w: limite de %d páginas atingido", ErrPaginationLoop, maxPages)
}

func (c *ShopClient) searchPage(ctx context.Context, createTimeGE, createTimeLT int64, pageToken string) (*searchOrdersResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/orders/search")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("create_time_ge", strconv.FormatInt(createTimeGE, 10))
	query.Set("create_time_lt", strconv.FormatInt(createTimeLT, 10))
	query.Set("page_size", strconv.Itoa(pageSize))
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response searchOrdersResponse
	if err := jsoniter.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
