package reporting

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

// ExportHeader são as colunas do CSV de exportação
var ExportHeader = []string{
	"date", "product", "gmv", "videos_posted", "views",
	"gross_rev_per_video", "cogs_6pct", "shipping", "affiliate", "ads",
	"net_profit_per_video", "total_net_profit", "margin_pct",
}

// ExportFileName é o nome do arquivo sugerido ao navegador
func ExportFileName(now time.Time) string {
	return "shop_pnl_" + now.Format(domain.DateLayout) + ".csv"
}

// ExportCSV escreve os registros filtrados com as métricas calculadas
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, filters domain.EntryFilters) error {
	entries, err := s.listEntries(ctx, filters)
	if err != nil {
		return err
	}

	costs, err := s.costMap(ctx)
	if err != nil {
		return err
	}

	return WriteEntriesCSV(w, entries, costs)
}

// WriteEntriesCSV serializa os registros. Métricas calculadas usam duas casas decimais e a margem uma.
func WriteEntriesCSV(w io.Writer, entries []*domain.Entry, costs domain.CostMap) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ExportHeader); err != nil {
		return err
	}

	for _, e := range entries {
		calc := domain.CalculateEntry(e, costs)
		if err := writer.Write([]string{
			e.Date,
			e.ProductName(),
			formatRaw(e.GMV),
			strconv.Itoa(e.VideosPosted),
			strconv.Itoa(e.Views),
			formatTwoDecimals(calc.GrossRevenuePerVideo),
			formatTwoDecimals(calc.CostOfGoods),
			formatRaw(e.Shipping),
			formatRaw(e.Affiliate),
			formatRaw(e.Ads),
			formatTwoDecimals(calc.NetProfitPerVideo),
			formatTwoDecimals(calc.TotalNetProfit),
			formatOneDecimal(calc.MarginPercent),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Meios arredondam para longe do zero (0.125 vira 0.13)
func formatTwoDecimals(v float64) string {
	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(v), 'f', 2, 64)
}

func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(utils.RoundWithOneDecimalPlace(v), 'f', 1, 64)
}
