package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/config"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

// MaxLookbackDays limita a janela de uma sincronização
const MaxLookbackDays = 365

var ErrSyncAlreadyRunning = errors.New("platform sync already running")

// PlatformSyncConfig representa a configuração do agendador de sincronização com a loja
type PlatformSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
	ShopName     string
}

// PlatformSyncService agenda e executa a importação dos pedidos da loja para os registros diários
type PlatformSyncService struct {
	scheduler           *gocron.Scheduler
	config              PlatformSyncConfig
	loc                 *time.Location
	shopService         shop.ShopIntegrator
	cataloger           cataloging.Cataloger
	recorder            recording.EntryRecorder
	syncLogRepo         repository.SyncLogRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPlatformSyncService cria o serviço de sincronização com a loja
func NewPlatformSyncService(
	shopService shop.ShopIntegrator,
	cataloger cataloging.Cataloger,
	recorder recording.EntryRecorder,
	syncLogRepo repository.SyncLogRepository,
	appConfig *config.Config,
) *PlatformSyncService {
	syncConfig := PlatformSyncConfig{
		CronSchedule: appConfig.PlatformSync.CronSchedule,
		LookbackDays: appConfig.PlatformSync.LookbackDays,
		SyncEnabled:  appConfig.PlatformSync.Enabled,
		ShopName:     appConfig.PlatformSync.ShopName,
	}

	loc := appConfig.App.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
		"shop_name":     syncConfig.ShopName,
	}).Info("Configuração do agendador de sincronização da loja carregada")

	return &PlatformSyncService{
		scheduler:   gocron.NewScheduler(loc),
		config:      syncConfig,
		loc:         loc,
		shopService: shopService,
		cataloger:   cataloger,
		recorder:    recorder,
		syncLogRepo: syncLogRepo,
		now:         time.Now,
	}
}

// WithClock substitui o relógio usado para calcular a janela de sincronização
func (s *PlatformSyncService) WithClock(now func() time.Time) *PlatformSyncService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *PlatformSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da loja desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização da loja")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sync(ctx, s.config.LookbackDays); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada da loja")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da loja: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da loja")
		s.scheduler.Stop()
	}()

	return nil
}

// Window calcula as datas de início e fim para a quantidade de dias pedida.
// Valores não positivos usam a janela configurada e o máximo é MaxLookbackDays.
func (s *PlatformSyncService) Window(days int) (startDate, endDate string) {
	if days <= 0 {
		days = s.config.LookbackDays
	}
	if days > MaxLookbackDays {
		days = MaxLookbackDays
	}

	end := utils.InLocation(s.now(), s.loc)
	start := end.AddDate(0, 0, -days)

	return start.Format(domain.DateLayout), end.Format(domain.DateLayout)
}

func (s *PlatformSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *PlatformSyncService) release() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
}

// Sync executa uma sincronização completa e devolve o registro da execução.
// Falhas ao buscar pedidos ou ao gravar um dia deixam a execução como partial;
// a execução só é marcada como failed quando o produto da loja não pode ser resolvido.
func (s *PlatformSyncService) Sync(ctx context.Context, days int) (*domain.SyncLog, error) {
	if !s.acquire() {
		logrus.Info("Sincronização da loja já em andamento, ignorando")
		return nil, ErrSyncAlreadyRunning
	}
	defer s.release()

	startDate, endDate := s.Window(days)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do log de sincronização: %w", err)
	}

	syncLog := &domain.SyncLog{
		ID:        id,
		Status:    domain.SyncStatusRunning,
		DateFrom:  startDate,
		DateTo:    endDate,
		StartedAt: s.now(),
	}
	if err := s.syncLogRepo.Create(ctx, syncLog); err != nil {
		return nil, fmt.Errorf("erro ao registrar início da sincronização: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"sync_id":    syncLog.ID,
		"start_date": startDate,
		"end_date":   endDate,
	}).Info("Iniciando sincronização da loja")

	product, err := s.cataloger.GetOrCreateProduct(ctx, s.config.ShopName)
	if err != nil {
		s.finish(ctx, syncLog, domain.SyncStatusFailed, []string{err.Error()})
		return syncLog, fmt.Errorf("erro ao resolver produto da loja: %w", err)
	}

	syncErrors := make([]string, 0)

	summaries, err := s.shopService.GetDailySummaries(ctx, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos da loja")
		syncErrors = append(syncErrors, fmt.Sprintf("falha ao buscar pedidos da loja: %v", err))
	}

	result := &domain.MergeResult{}
	if len(summaries) > 0 {
		result, err = s.recorder.MergePlatformSummaries(ctx, product.ID, summaries)
		if err != nil {
			s.finish(ctx, syncLog, domain.SyncStatusFailed, append(syncErrors, err.Error()))
			return syncLog, fmt.Errorf("erro ao gravar resumos da loja: %w", err)
		}
	}

	syncErrors = append(syncErrors, result.Errors...)
	result.Errors = syncErrors

	syncLog.EntriesCreated = result.Created
	syncLog.EntriesUpdated = result.Updated
	s.finish(ctx, syncLog, result.Status(), syncErrors)

	logrus.WithFields(logrus.Fields{
		"sync_id": syncLog.ID,
		"status":  syncLog.Status,
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
		"errors":  len(syncErrors),
	}).Info("Sincronização da loja concluída")

	return syncLog, nil
}

func (s *PlatformSyncService) finish(ctx context.Context, syncLog *domain.SyncLog, status domain.SyncStatus, syncErrors []string) {
	completedAt := s.now()
	syncLog.Status = status
	syncLog.CompletedAt = &completedAt

	if len(syncErrors) > 0 {
		message := strings.Join(syncErrors, "; ")
		syncLog.ErrorMessage = &message
	}

	if err := s.syncLogRepo.Finish(ctx, syncLog); err != nil {
		logrus.WithError(err).WithField("sync_id", syncLog.ID).Error("Erro ao registrar fim da sincronização")
	}
}

// TriggerManualSync inicia uma sincronização em segundo plano
func (s *PlatformSyncService) TriggerManualSync(days int) error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização da loja já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando sincronização manual da loja")
	go func() {
		if _, err := s.Sync(context.Background(), days); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual da loja")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador e a última execução registrada
func (s *PlatformSyncService) GetStatus(ctx context.Context) map[string]any {
	s.syncMutex.Lock()
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"shop_name":              s.config.ShopName,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	s.syncMutex.Unlock()

	lastSync, err := s.syncLogRepo.Latest(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar última sincronização")
	}
	status["last_sync"] = lastSync

	return status
}
