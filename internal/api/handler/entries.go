package handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
)

// MaxImportSize é o tamanho máximo aceito para o arquivo CSV importado
const MaxImportSize = 10 << 20

type bulkEntriesRequest struct {
	Entries []*domain.EntryRequest `json:"entries"`
}

func ListEntries(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseEntryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entries, err := service.ListEntries(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar registros")
			writeEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	})
}

func CreateEntry(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEntry")

		var request domain.EntryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		entry, err := service.CreateEntry(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar registro")
			writeEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	})
}

func BulkCreateEntries(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BulkCreateEntries")

		var request bulkEntriesRequest
		if !decodeBody(w, r, &request) {
			return
		}

		entries, err := service.BulkCreateEntries(r.Context(), request.Entries)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar registros em lote")
			writeEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entries)
	})
}

func UpdateEntry(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEntry")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patch domain.EntryPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		entry, err := service.UpdateEntry(r.Context(), id, &patch)
		if err != nil {
			logrus.WithError(err).WithField("entry_id", id).Error("Erro ao atualizar registro")
			writeEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	})
}

func DeleteEntry(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEntry")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(r.Context(), id); err != nil {
			logrus.WithError(err).WithField("entry_id", id).Error("Erro ao excluir registro")
			writeEntryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ImportEntries aceita o CSV como upload multipart (campo "file") ou no corpo da requisição
func ImportEntries(service recording.EntryRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportEntries")

		body, cleanup, err := csvBody(r)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCSV, "Arquivo CSV excede o tamanho máximo permitido", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidCSV, "Arquivo CSV não encontrado: "+err.Error(), nil)
			return
		}
		defer cleanup()

		result, err := service.ImportCSV(r.Context(), body)
		if err != nil {
			logrus.WithError(err).Error("Erro ao importar CSV")
			writeEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func csvBody(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return r.Body, func() {}, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, err
	}

	return file, func() { _ = file.Close() }, nil
}

func ExportEntries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportEntries")

		filters, err := parseEntryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var buf bytes.Buffer
		if err := service.ExportCSV(r.Context(), &buf, filters); err != nil {
			logrus.WithError(err).Error("Erro ao exportar CSV")
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+reporting.ExportFileName(time.Now())+`"`)
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao escrever CSV exportado")
		}
	})
}
