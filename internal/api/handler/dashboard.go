package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
)

func optionalQuery(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil
	}
	return &value
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		quickFilter, err := domain.ParseQuickFilter(r.URL.Query().Get("quick_filter"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), reporting.DashboardRequest{
			QuickFilter: quickFilter,
			DateFrom:    optionalQuery(r, "date_from"),
			DateTo:      optionalQuery(r, "date_to"),
			ProductID:   strings.TrimSpace(r.URL.Query().Get("product_id")),
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar painel")
			writeReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	})
}

func GetForecast(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecast, err := service.GetForecast(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular projeção")
			writeReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	})
}

func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, reporting.ErrLoadEntries):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar registros no banco de dados", nil)
	case errors.Is(err, reporting.ErrLoadCosts):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar custos no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao montar relatório", nil)
	}
}
