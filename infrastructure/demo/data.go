// Package demo gera a loja de demonstração: produtos, pedidos e registros diários
package demo

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

const (
	ShopName = "Demo Store"

	OrdersSeed   = 42
	ActivitySeed = 99

	orderCount  = 80
	orderWindow = 60
)

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

type variantDef struct {
	name     string
	sku      string
	cogs     float64
	avgPrice float64
}

type productDef struct {
	name     string
	sku      string
	cogs     float64
	avgPrice float64
	category string
	variants []variantDef
}

var productDefs = []productDef{
	{
		name: `LED Ring Light 10"`, sku: "RL-10-001", cogs: 8.50, avgPrice: 29.99, category: "Lighting",
		variants: []variantDef{
			{name: "1 Pack", sku: "RL-10-1PK", cogs: 8.50, avgPrice: 29.99},
			{name: "2 Pack", sku: "RL-10-2PK", cogs: 15.00, avgPrice: 54.99},
			{name: "3 Pack", sku: "RL-10-3PK", cogs: 20.00, avgPrice: 74.99},
		},
	},
	{name: "Portable Phone Tripod", sku: "PT-MINI-02", cogs: 5.20, avgPrice: 19.99, category: "Accessories"},
	{name: "Wireless Lavalier Mic", sku: "WM-LAV-03", cogs: 12.00, avgPrice: 39.99, category: "Audio"},
	{name: "Backdrop Green Screen", sku: "BG-GS-04", cogs: 15.00, avgPrice: 49.99, category: "Backdrops"},
	{name: "Content Planner Notebook", sku: "CP-NB-05", cogs: 3.50, avgPrice: 14.99, category: "Stationery"},
	{name: "USB-C Card Reader", sku: "CR-UC-06", cogs: 4.80, avgPrice: 16.99, category: "Tech"},
	{name: "Clip-On Wide Angle Lens", sku: "CL-WA-07", cogs: 6.00, avgPrice: 24.99, category: "Lenses"},
	{name: "Desktop Softbox Kit", sku: "SB-DK-08", cogs: 22.00, avgPrice: 64.99, category: "Lighting"},
}

// Os primeiros produtos são os mais vendidos
var productWeights = []float64{0.22, 0.18, 0.16, 0.14, 0.10, 0.08, 0.07, 0.05}

var statusWeights = []struct {
	status OrderStatus
	weight float64
}{
	{status: OrderStatusCompleted, weight: 0.65},
	{status: OrderStatusShipped, weight: 0.18},
	{status: OrderStatusCancelled, weight: 0.10},
	{status: OrderStatusRefunded, weight: 0.07},
}

// Order é um pedido individual da loja de demonstração
type Order struct {
	ID                  string
	Date                string
	ProductID           string
	Quantity            int
	UnitPrice           float64
	TotalAmount         float64
	PlatformFeeRate     float64
	PlatformFee         float64
	CommissionRate      float64
	CommissionFee       float64
	ShippingCost        float64
	AffiliateCommission float64
	COGS                float64
	NetProfit           float64
	Status              OrderStatus
}

// Counted indica se o pedido gerou receita ou estorno
func (o *Order) Counted() bool {
	return o.Status != OrderStatusCancelled
}

// Dataset é a loja de demonstração completa
type Dataset struct {
	Products []*domain.Product
	Costs    []*domain.ProductCost
	Orders   []*Order
	Entries  []*domain.Entry
}

func productID(index int) string {
	return fmt.Sprintf("demo-product-%04d", index)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Generate gera a loja de demonstração relativa a now
func Generate(now time.Time) *Dataset {
	products := Products(now)
	orders := GenerateOrders(now)

	return &Dataset{
		Products: products,
		Costs:    Costs(now),
		Orders:   orders,
		Entries:  AggregateEntries(orders, products, now),
	}
}

// Products retorna o catálogo da loja de demonstração
func Products(now time.Time) []*domain.Product {
	createdAt := now.AddDate(0, 0, -90)
	products := make([]*domain.Product, 0, len(productDefs))

	for i, def := range productDefs {
		product := &domain.Product{
			ID:        productID(i),
			Name:      def.name,
			CreatedAt: createdAt,
		}

		for vi, v := range def.variants {
			sku := v.sku
			product.Variants = append(product.Variants, &domain.Variant{
				ID:        fmt.Sprintf("%s-var-%d", product.ID, vi),
				ProductID: product.ID,
				Name:      v.name,
				SKU:       &sku,
				CreatedAt: createdAt,
			})
		}

		products = append(products, product)
	}

	return products
}

// Costs retorna o custo unitário de cada produto ou variante da demonstração
func Costs(now time.Time) []*domain.ProductCost {
	costs := make([]*domain.ProductCost, 0)

	for i, def := range productDefs {
		pid := productID(i)

		if len(def.variants) == 0 {
			costs = append(costs, &domain.ProductCost{
				ID:          fmt.Sprintf("demo-cost-%s", pid),
				ProductID:   pid,
				CostPerUnit: def.cogs,
				UpdatedAt:   now,
			})
			continue
		}

		for vi, v := range def.variants {
			vid := fmt.Sprintf("%s-var-%d", pid, vi)
			costs = append(costs, &domain.ProductCost{
				ID:          fmt.Sprintf("demo-cost-%s", vid),
				ProductID:   pid,
				VariantID:   vid,
				CostPerUnit: v.cogs,
				UpdatedAt:   now,
			})
		}
	}

	return costs
}

func pickStatus(r *rng) OrderStatus {
	n := r.next()
	cumulative := 0.0
	for _, sw := range statusWeights {
		cumulative += sw.weight
		if n < cumulative {
			return sw.status
		}
	}
	return OrderStatusCompleted
}

func pickProduct(r *rng) int {
	n := r.next()
	cumulative := 0.0
	for i, weight := range productWeights {
		cumulative += weight
		if n < cumulative {
			return i
		}
	}
	return 0
}

// GenerateOrders gera os pedidos dos últimos 60 dias, do mais recente para o mais antigo
func GenerateOrders(now time.Time) []*Order {
	r := newRNG(OrdersSeed)
	orders := make([]*Order, 0, orderCount)

	for i := 0; i < orderCount; i++ {
		daysAgo := int(math.Floor(r.next() * orderWindow))
		date := now.AddDate(0, 0, -daysAgo).Format(domain.DateLayout)

		index := pickProduct(r)
		def := productDefs[index]

		quantity := int(math.Floor(r.next()*3)) + 1
		unitPrice := round2(def.avgPrice * (0.9 + r.next()*0.2))
		totalAmount := round2(unitPrice * float64(quantity))

		platformFeeRate := 0.02 + r.next()*0.06
		platformFee := round2(totalAmount * platformFeeRate)

		commissionRate := 0.01 + r.next()*0.04
		commissionFee := round2(totalAmount * commissionRate)

		shippingCost := round2(3 + r.next()*5)

		affiliateRate := 0.0
		if r.next() < 0.4 {
			affiliateRate = 0.05 + r.next()*0.15
		}
		affiliateCommission := round2(totalAmount * affiliateRate)

		cogs := round2(def.cogs * float64(quantity))
		status := pickStatus(r)

		netProfit := 0.0
		switch status {
		case OrderStatusCompleted, OrderStatusShipped:
			netProfit = round2(totalAmount - platformFee - commissionFee - shippingCost - affiliateCommission - cogs)
		case OrderStatusRefunded:
			// Frete e taxa da plataforma não são devolvidos no estorno
			netProfit = round2(-(shippingCost + platformFee))
		}

		orders = append(orders, &Order{
			ID:                  fmt.Sprintf("demo-order-%05d", i),
			Date:                date,
			ProductID:           productID(index),
			Quantity:            quantity,
			UnitPrice:           unitPrice,
			TotalAmount:         totalAmount,
			PlatformFeeRate:     platformFeeRate,
			PlatformFee:         platformFee,
			CommissionRate:      commissionRate,
			CommissionFee:       commissionFee,
			ShippingCost:        shippingCost,
			AffiliateCommission: affiliateCommission,
			COGS:                cogs,
			NetProfit:           netProfit,
			Status:              status,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date > orders[j].Date
	})

	return orders
}

type dailyGroup struct {
	date      string
	productID string
	gmv       float64
	shipping  float64
	affiliate float64
	units     int
}

// AggregateEntries agrupa os pedidos por data e produto em registros diários.
// Pedidos cancelados são ignorados e estornos abatem o GMV mantendo o frete.
func AggregateEntries(orders []*Order, products []*domain.Product, now time.Time) []*domain.Entry {
	groups := make(map[string]*dailyGroup)
	order := make([]*dailyGroup, 0)

	for _, o := range orders {
		if !o.Counted() {
			continue
		}

		key := o.Date + "__" + o.ProductID
		g, ok := groups[key]
		if !ok {
			g = &dailyGroup{date: o.Date, productID: o.ProductID}
			groups[key] = g
			order = append(order, g)
		}

		g.units += o.Quantity
		g.shipping += o.ShippingCost

		if o.Status == OrderStatusRefunded {
			g.gmv -= o.TotalAmount
		} else {
			g.gmv += o.TotalAmount
			g.affiliate += o.AffiliateCommission
		}
	}

	productsByID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	r := newRNG(ActivitySeed)
	entries := make([]*domain.Entry, 0, len(order))

	for i, g := range order {
		ads := 0.0
		if r.next() < 0.6 {
			ads = round2(5 + r.next()*45)
		}

		videosPosted := int(math.Floor(r.next() * 4))
		viewsPerVideo := 500 + int(math.Floor(r.next()*15000))

		product := productsByID[g.productID]

		variantID := ""
		if product != nil && product.HasVariants() {
			variantID = product.Variants[int(math.Floor(r.next()*float64(len(product.Variants))))].ID
		}

		entry := &domain.Entry{
			ID:           fmt.Sprintf("demo-entry-%05d", i),
			ProductID:    g.productID,
			VariantID:    variantID,
			Date:         g.date,
			GMV:          math.Max(0, round2(g.gmv)),
			VideosPosted: videosPosted,
			Views:        videosPosted * viewsPerVideo,
			Shipping:     round2(g.shipping),
			Affiliate:    round2(g.affiliate),
			Ads:          ads,
			UnitsSold:    g.units,
			Source:       domain.EntrySourcePlatform,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if product != nil {
			entry.Product = &domain.Product{ID: product.ID, Name: product.Name, CreatedAt: product.CreatedAt}
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries
}
