package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody decodifica o JSON do corpo e responde VAL_001 em caso de erro
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// parseEntryFilters lê date_from, date_to e product_id da query
func parseEntryFilters(r *http.Request) (domain.EntryFilters, error) {
	query := r.URL.Query()
	filters := domain.EntryFilters{ProductID: strings.TrimSpace(query.Get("product_id"))}

	if from := strings.TrimSpace(query.Get("date_from")); from != "" {
		if !utils.IsValidDate(from) {
			return filters, errors.New("date_from deve estar no formato YYYY-MM-DD")
		}
		filters.DateFrom = &from
	}

	if to := strings.TrimSpace(query.Get("date_to")); to != "" {
		if !utils.IsValidDate(to) {
			return filters, errors.New("date_to deve estar no formato YYYY-MM-DD")
		}
		filters.DateTo = &to
	}

	if filters.ProductID == "" {
		filters.ProductID = domain.AllProducts
	}

	return filters, nil
}

func writeEntryError(w http.ResponseWriter, err error) {
	var entryErr *recording.EntryError
	if errors.As(err, &entryErr) {
		var details any
		if entryErr.EntryID != "" {
			details = map[string]any{
				"entry_id":   entryErr.EntryID,
				"error_type": entryErr.Err.Error(),
			}
		}
		apiErrors.WriteError(w, entryErr.Code, entryErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, recording.ErrEntryIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)
	case errors.Is(err, recording.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Registro não encontrado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar registros", nil)
	}
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var catalogErr *cataloging.CatalogError
	if errors.As(err, &catalogErr) {
		var details any
		if catalogErr.ProductID != "" {
			details = map[string]any{
				"product_id": catalogErr.ProductID,
				"error_type": catalogErr.Err.Error(),
			}
		}
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, cataloging.ErrProductIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto é obrigatório", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar produtos", nil)
	}
}
