package recording

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

// ImportedProductName é usado quando a linha não informa o produto
const ImportedProductName = "Imported"

// minImportValues é o mínimo de colunas para uma linha ser considerada
const minImportValues = 3

// CSVRow é uma linha do arquivo de importação já interpretada
type CSVRow struct {
	Line         int
	Date         string
	ProductName  string
	GMV          float64
	VideosPosted int
	Views        int
	Shipping     float64
	Affiliate    float64
	Ads          float64
	UnitsSold    int
}

// ImportResult resume uma importação de CSV
type ImportResult struct {
	Imported        int      `json:"imported"`
	Skipped         int      `json:"skipped"`
	ProductsCreated []string `json:"products_created"`
	Errors          []string `json:"errors,omitempty"`
}

type csvColumns struct {
	date, product, gmv, videos, views, shipping, affiliate, ads, units int
}

func findColumns(header []string) csvColumns {
	cols := csvColumns{-1, -1, -1, -1, -1, -1, -1, -1, -1}

	for i, h := range header {
		h = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"`))
		switch {
		case h == "date" && cols.date < 0:
			cols.date = i
		case h == "product" && cols.product < 0:
			cols.product = i
		case h == "gmv" && cols.gmv < 0:
			cols.gmv = i
		case strings.Contains(h, "video") && strings.Contains(h, "post") && cols.videos < 0:
			cols.videos = i
		case h == "views" && cols.views < 0:
			cols.views = i
		case h == "shipping" && cols.shipping < 0:
			cols.shipping = i
		case h == "affiliate" && cols.affiliate < 0:
			cols.affiliate = i
		case h == "ads" && cols.ads < 0:
			cols.ads = i
		case (h == "units_sold" || h == "units") && cols.units < 0:
			cols.units = i
		}
	}

	return cols
}

// ParseCSV lê o arquivo de importação. Linhas com menos de três valores são ignoradas,
// números inválidos viram zero e colunas ausentes recebem os valores padrão.
func ParseCSV(r io.Reader, today string) ([]CSVRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []CSVRow{}, 0, nil
		}
		return nil, 0, err
	}

	cols := findColumns(header)
	rows := make([]CSVRow, 0)
	skipped := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		line, _ := reader.FieldPos(0)

		if countValues(record) < minImportValues {
			skipped++
			continue
		}

		row := CSVRow{
			Line:         line,
			Date:         field(record, cols.date),
			ProductName:  field(record, cols.product),
			GMV:          parseFloat(field(record, cols.gmv)),
			VideosPosted: parseInt(field(record, cols.videos)),
			Views:        parseInt(field(record, cols.views)),
			Shipping:     parseFloat(field(record, cols.shipping)),
			Affiliate:    parseFloat(field(record, cols.affiliate)),
			Ads:          parseFloat(field(record, cols.ads)),
			UnitsSold:    parseInt(field(record, cols.units)),
		}

		if row.Date == "" {
			row.Date = today
		}
		if row.ProductName == "" {
			row.ProductName = ImportedProductName
		}

		rows = append(rows, row)
	}

	return rows, skipped, nil
}

// ImportCSV cria os registros do arquivo, cadastrando os produtos que ainda não existem
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	today := utils.Today(s.now(), s.loc)

	rows, skipped, err := ParseCSV(r, today)
	if err != nil {
		return nil, NewEntryError(ErrInvalidCSV, apiErrors.ErrInvalidCSV, err.Error())
	}

	result := &ImportResult{
		Skipped:         skipped,
		ProductsCreated: make([]string, 0),
	}

	products := make(map[string]*domain.Product)
	entries := make([]*domain.Entry, 0, len(rows))
	now := s.now()

	for _, row := range rows {
		if !utils.IsValidDate(row.Date) {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: data inválida %q", row.Line, row.Date))
			continue
		}

		product, ok := products[row.ProductName]
		if !ok {
			var created bool
			product, created, err = s.getOrCreateProduct(ctx, row.ProductName)
			if err != nil {
				return nil, err
			}
			if created {
				result.ProductsCreated = append(result.ProductsCreated, product.Name)
			}
			products[row.ProductName] = product
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o registro")
		}

		entries = append(entries, &domain.Entry{
			ID:           id,
			ProductID:    product.ID,
			Date:         row.Date,
			GMV:          row.GMV,
			VideosPosted: row.VideosPosted,
			Views:        row.Views,
			Shipping:     row.Shipping,
			Affiliate:    row.Affiliate,
			Ads:          row.Ads,
			UnitsSold:    row.UnitsSold,
			Source:       domain.EntrySourceManual,
			Product:      product,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if len(entries) > 0 {
		if err := s.entryRepository.BulkCreate(ctx, entries); err != nil {
			logrus.WithError(err).Error("Erro ao salvar registros importados")
			return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar registros importados")
		}
	}

	result.Imported = len(entries)

	logrus.WithFields(logrus.Fields{
		"imported":         result.Imported,
		"skipped":          result.Skipped,
		"products_created": len(result.ProductsCreated),
	}).Info("Importação de CSV concluída")

	return result, nil
}

func (s *Service) getOrCreateProduct(ctx context.Context, name string) (*domain.Product, bool, error) {
	product, err := s.productRepository.GetByName(ctx, name)
	if err != nil {
		logrus.WithError(err).WithField("product", name).Error("Erro ao buscar produto pelo nome")
		return nil, false, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto no banco de dados")
	}
	if product != nil {
		return product, false, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, false, NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o produto")
	}

	product = &domain.Product{ID: id, Name: name, CreatedAt: s.now()}
	if err := s.productRepository.Create(ctx, product); err != nil {
		logrus.WithError(err).WithField("product", name).Error("Erro ao criar produto")
		return nil, false, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar produto "+name)
	}

	return product, true, nil
}

func countValues(record []string) int {
	if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
		return 0
	}
	return len(record)
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(record[idx]), `"`)
}

func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseInt aceita valores decimais e descarta a parte fracionária
func parseInt(v string) int {
	return int(parseFloat(v))
}
