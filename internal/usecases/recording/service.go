package recording

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	shopdomain "github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/domain"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type EntryRecorder interface {
	ListEntries(ctx context.Context, filters domain.EntryFilters) ([]*domain.CalculatedEntry, error)
	CreateEntry(ctx context.Context, request *domain.EntryRequest) (*domain.Entry, error)
	BulkCreateEntries(ctx context.Context, requests []*domain.EntryRequest) ([]*domain.Entry, error)
	UpdateEntry(ctx context.Context, id string, patch *domain.EntryPatch) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	MergePlatformSummaries(ctx context.Context, productID string, summaries []shopdomain.DailyOrderSummary) (*domain.MergeResult, error)
}

type Service struct {
	entryRepository   repository.EntryRepository
	productRepository repository.ProductRepository
	costRepository    repository.ProductCostRepository
	validate          *validator.Validate
	loc               *time.Location
	now               func() time.Time
}

func NewService(
	entryRepository repository.EntryRepository,
	productRepository repository.ProductRepository,
	costRepository repository.ProductCostRepository,
	loc *time.Location,
) *Service {
	return &Service{
		entryRepository:   entryRepository,
		productRepository: productRepository,
		costRepository:    costRepository,
		validate:          validator.New(),
		loc:               loc,
		now:               time.Now,
	}
}

// WithClock substitui o relógio usado para datas de criação e para o "hoje" da importação
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ListEntries(ctx context.Context, filters domain.EntryFilters) ([]*domain.CalculatedEntry, error) {
	entries, err := s.entryRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar registros")
		return nil, NewEntryError(ErrFetchEntries, apiErrors.ErrDatabaseOperation, "Falha ao listar registros no banco de dados")
	}

	costs, err := s.costRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar custos dos produtos")
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar custos dos produtos")
	}

	return domain.WithCalculations(entries, domain.BuildCostMap(costs)), nil
}

func (s *Service) CreateEntry(ctx context.Context, request *domain.EntryRequest) (*domain.Entry, error) {
	entries, err := s.BulkCreateEntries(ctx, []*domain.EntryRequest{request})
	if err != nil {
		return nil, err
	}
	return entries[0], nil
}

func (s *Service) BulkCreateEntries(ctx context.Context, requests []*domain.EntryRequest) ([]*domain.Entry, error) {
	if len(requests) == 0 {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Nenhum registro informado")
	}

	products := make(map[string]*domain.Product)
	entries := make([]*domain.Entry, 0, len(requests))
	now := s.now()

	for i, request := range requests {
		if request == nil {
			return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrInvalidRequest, fmt.Sprintf("registro %d vazio", i))
		}

		if err := s.validate.Struct(request); err != nil {
			return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrInvalidFormat, fmt.Sprintf("registro %d: %s", i, err.Error()))
		}

		product, ok := products[request.ProductID]
		if !ok {
			var err error
			if product, err = s.resolveProduct(ctx, request.ProductID, ""); err != nil {
				return nil, err
			}
			products[request.ProductID] = product
		}

		if err := checkVariant(product, request.VariantID); err != nil {
			return nil, err
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o registro")
		}

		entry := request.ToEntry(id, now)
		entry.Product = product
		entries = append(entries, entry)
	}

	if err := s.entryRepository.BulkCreate(ctx, entries); err != nil {
		logrus.WithError(err).Error("Erro ao salvar registros")
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar registros")
	}

	logrus.Infof("%d registros criados", len(entries))

	return entries, nil
}

func (s *Service) UpdateEntry(ctx context.Context, id string, patch *domain.EntryPatch) (*domain.Entry, error) {
	if id == "" {
		return nil, ErrEntryIDRequired
	}

	if patch == nil || patch.IsEmpty() {
		return nil, NewEntryErrorWithID(ErrEmptyPatch, apiErrors.ErrMissingRequiredData, id, "Nenhum campo informado para atualização")
	}

	if err := s.validate.Struct(patch); err != nil {
		return nil, NewEntryErrorWithID(ErrInvalidEntry, apiErrors.ErrInvalidFormat, id, err.Error())
	}

	existing, err := s.entryRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao buscar registro")
		return nil, NewEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar registro no banco de dados")
	}

	if existing == nil {
		return nil, NewEntryErrorWithID(ErrEntryNotFound, apiErrors.ErrEntryNotFound, id, "Registro não encontrado")
	}

	updated := patch.Apply(*existing)

	if patch.ProductID != nil || patch.VariantID != nil {
		product, err := s.resolveProduct(ctx, updated.ProductID, updated.VariantID)
		if err != nil {
			return nil, err
		}
		updated.Product = product
	}

	updated.UpdatedAt = s.now()

	if err := s.entryRepository.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewEntryErrorWithID(ErrEntryNotFound, apiErrors.ErrEntryNotFound, id, "Registro não encontrado")
		}
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao atualizar registro")
		return nil, NewEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar registro no banco de dados")
	}

	return &updated, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return ErrEntryIDRequired
	}

	if err := s.entryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewEntryErrorWithID(ErrEntryNotFound, apiErrors.ErrEntryNotFound, id, "Registro não encontrado")
		}
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao excluir registro")
		return NewEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir registro no banco de dados")
	}

	return nil
}

// MergePlatformSummaries grava os totais diários da loja no registro de origem platform
// do produto. Um registro existente só é alterado nos campos que mudaram; falhas em um
// dia não interrompem os demais.
func (s *Service) MergePlatformSummaries(ctx context.Context, productID string, summaries []shopdomain.DailyOrderSummary) (*domain.MergeResult, error) {
	result := &domain.MergeResult{}

	for _, summary := range summaries {
		existing, err := s.entryRepository.GetPlatformEntry(ctx, productID, summary.Date)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", summary.Date, err))
			continue
		}

		if existing == nil {
			if err := s.createPlatformEntry(ctx, productID, summary); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", summary.Date, err))
				continue
			}
			result.Created++
			continue
		}

		if !mergeSummary(existing, summary) {
			result.Skipped++
			continue
		}

		existing.UpdatedAt = s.now()
		if err := s.entryRepository.Update(ctx, existing); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", summary.Date, err))
			continue
		}
		result.Updated++
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"created":    result.Created,
		"updated":    result.Updated,
		"skipped":    result.Skipped,
		"errors":     len(result.Errors),
	}).Info("Resumos da plataforma mesclados")

	return result, nil
}

func (s *Service) createPlatformEntry(ctx context.Context, productID string, summary shopdomain.DailyOrderSummary) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	now := s.now()
	return s.entryRepository.Create(ctx, &domain.Entry{
		ID:        id,
		ProductID: productID,
		Date:      summary.Date,
		GMV:       summary.TotalAmount,
		Shipping:  summary.ShippingFee,
		Affiliate: summary.AffiliateCommission,
		UnitsSold: summary.UnitsSold,
		Source:    domain.EntrySourcePlatform,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// mergeSummary copia para o registro os valores do resumo que diferem e informa se houve mudança
func mergeSummary(entry *domain.Entry, summary shopdomain.DailyOrderSummary) bool {
	changed := false

	if entry.GMV != summary.TotalAmount {
		entry.GMV = summary.TotalAmount
		changed = true
	}
	if entry.Shipping != summary.ShippingFee {
		entry.Shipping = summary.ShippingFee
		changed = true
	}
	if entry.Affiliate != summary.AffiliateCommission {
		entry.Affiliate = summary.AffiliateCommission
		changed = true
	}
	if entry.UnitsSold != summary.UnitsSold {
		entry.UnitsSold = summary.UnitsSold
		changed = true
	}

	return changed
}

func (s *Service) resolveProduct(ctx context.Context, productID, variantID string) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		logrus.WithError(err).WithField("product_id", productID).Error("Erro ao buscar produto")
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto no banco de dados")
	}

	if product == nil {
		return nil, NewEntryError(ErrProductNotFound, apiErrors.ErrProductNotFound, "Produto "+productID+" não encontrado")
	}

	if err := checkVariant(product, variantID); err != nil {
		return nil, err
	}

	return product, nil
}

func checkVariant(product *domain.Product, variantID string) error {
	if variantID != "" && product.FindVariant(variantID) == nil {
		return NewEntryError(ErrVariantNotFound, apiErrors.ErrVariantNotFound, "Variante "+variantID+" não encontrada")
	}
	return nil
}
