package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/internal/scheduler"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypePlatform = "platform"
	CronJobTypeAll      = "all"
)

// PlatformSyncer é o agendador de sincronização com a loja visto pelos handlers
type PlatformSyncer interface {
	TriggerManualSync(days int) error
	GetStatus(ctx context.Context) map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	PlatformSync PlatformSyncer
}

type runCronRequest struct {
	Days int `json:"days"`
}

// RunCronJob dispara manualmente uma cron job
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypePlatform && cronType != CronJobTypeAll {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCronType, "Tipo de cron job inválido. Valores aceitos: platform, all", nil)
			return
		}

		var request runCronRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if request.Days < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days deve ser maior ou igual a zero", nil)
			return
		}

		if services.PlatformSync == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização da loja não disponível", nil)
			return
		}

		if err := services.PlatformSync.TriggerManualSync(request.Days); err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização já em andamento", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar sincronização", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PlatformSync != nil {
			status[CronJobTypePlatform] = services.PlatformSync.GetStatus(r.Context())
		}

		writeJSON(w, http.StatusOK, status)
	})
}
