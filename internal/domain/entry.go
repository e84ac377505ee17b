package domain

import "time"

// EntrySource indica a origem de um registro diário
type EntrySource string

const (
	EntrySourceManual   EntrySource = "manual"
	EntrySourcePlatform EntrySource = "platform"
)

// Entry representa o desempenho de um produto (ou variante) em um dia
type Entry struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	VariantID    string      `json:"variant_id,omitempty"`
	Date         string      `json:"date"` // Formato yyyy-mm-dd
	GMV          float64     `json:"gmv"`
	VideosPosted int         `json:"videos_posted"`
	Views        int         `json:"views"`
	Shipping     float64     `json:"shipping"`
	Affiliate    float64     `json:"affiliate"`
	Ads          float64     `json:"ads"`
	UnitsSold    int         `json:"units_sold"`
	Source       EntrySource `json:"source"`
	Product      *Product    `json:"product,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProductName retorna o nome usado como chave de agregação.
// Dois produtos com o mesmo nome são agregados juntos.
func (e *Entry) ProductName() string {
	if e.Product == nil || e.Product.Name == "" {
		return UnknownProductName
	}
	return e.Product.Name
}

// EntryPatch contém apenas os campos que devem ser alterados em um registro
type EntryPatch struct {
	ProductID    *string  `json:"product_id"`
	VariantID    *string  `json:"variant_id"`
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	GMV          *float64 `json:"gmv"`
	VideosPosted *int     `json:"videos_posted" validate:"omitempty,gte=0"`
	Views        *int     `json:"views" validate:"omitempty,gte=0"`
	Shipping     *float64 `json:"shipping"`
	Affiliate    *float64 `json:"affiliate"`
	Ads          *float64 `json:"ads"`
	UnitsSold    *int     `json:"units_sold" validate:"omitempty,gte=0"`
}

// IsEmpty indica se nenhum campo foi informado
func (p EntryPatch) IsEmpty() bool {
	return p.ProductID == nil && p.VariantID == nil && p.Date == nil && p.GMV == nil &&
		p.VideosPosted == nil && p.Views == nil && p.Shipping == nil && p.Affiliate == nil &&
		p.Ads == nil && p.UnitsSold == nil
}

// Apply aplica o patch sobre uma cópia do registro
func (p EntryPatch) Apply(entry Entry) Entry {
	if p.ProductID != nil {
		entry.ProductID = *p.ProductID
	}
	if p.VariantID != nil {
		entry.VariantID = *p.VariantID
	}
	if p.Date != nil {
		entry.Date = *p.Date
	}
	if p.GMV != nil {
		entry.GMV = *p.GMV
	}
	if p.VideosPosted != nil {
		entry.VideosPosted = *p.VideosPosted
	}
	if p.Views != nil {
		entry.Views = *p.Views
	}
	if p.Shipping != nil {
		entry.Shipping = *p.Shipping
	}
	if p.Affiliate != nil {
		entry.Affiliate = *p.Affiliate
	}
	if p.Ads != nil {
		entry.Ads = *p.Ads
	}
	if p.UnitsSold != nil {
		entry.UnitsSold = *p.UnitsSold
	}
	return entry
}

// EntryFilters filtra os registros retornados pelo repositório
type EntryFilters struct {
	DateFrom  *string
	DateTo    *string
	ProductID string // vazio ou "all" para todos os produtos
}

// HasProduct indica se o filtro restringe a um produto
func (f EntryFilters) HasProduct() bool {
	return f.ProductID != "" && f.ProductID != AllProducts
}

// Matches verifica se o registro atende aos filtros
func (f EntryFilters) Matches(entry *Entry) bool {
	if f.DateFrom != nil && entry.Date < *f.DateFrom {
		return false
	}
	if f.DateTo != nil && entry.Date > *f.DateTo {
		return false
	}
	if f.HasProduct() && entry.ProductID != f.ProductID {
		return false
	}
	return true
}

// EntryRequest é o payload de criação de um registro
type EntryRequest struct {
	ProductID    string  `json:"product_id" validate:"required"`
	VariantID    string  `json:"variant_id"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	GMV          float64 `json:"gmv"`
	VideosPosted int     `json:"videos_posted" validate:"gte=0"`
	Views        int     `json:"views" validate:"gte=0"`
	Shipping     float64 `json:"shipping"`
	Affiliate    float64 `json:"affiliate"`
	Ads          float64 `json:"ads"`
	UnitsSold    int     `json:"units_sold" validate:"gte=0"`
}

// ToEntry converte o payload em um registro manual
func (r *EntryRequest) ToEntry(id string, now time.Time) *Entry {
	return &Entry{
		ID:           id,
		ProductID:    r.ProductID,
		VariantID:    r.VariantID,
		Date:         r.Date,
		GMV:          r.GMV,
		VideosPosted: r.VideosPosted,
		Views:        r.Views,
		Shipping:     r.Shipping,
		Affiliate:    r.Affiliate,
		Ads:          r.Ads,
		UnitsSold:    r.UnitsSold,
		Source:       EntrySourceManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CalculatedEntry é um registro acompanhado das métricas derivadas
type CalculatedEntry struct {
	*Entry
	Calculations EntryCalculations `json:"calculations"`
	MarginLevel  MarginLevel       `json:"margin_level"`
}

// WithCalculations calcula as métricas de cada registro
func WithCalculations(entries []*Entry, costs CostMap) []*CalculatedEntry {
	result := make([]*CalculatedEntry, 0, len(entries))
	for _, e := range entries {
		calc := CalculateEntry(e, costs)
		result = append(result, &CalculatedEntry{
			Entry:        e,
			Calculations: calc,
			MarginLevel:  GetMarginLevel(calc.MarginPercent),
		})
	}
	return result
}
