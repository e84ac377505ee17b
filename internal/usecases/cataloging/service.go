package cataloging

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/shop-pnl-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Cataloger interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, request *domain.ProductRequest) (*domain.Product, error)
	GetOrCreateProduct(ctx context.Context, name string) (*domain.Product, error)
	AddVariant(ctx context.Context, productID string, request *domain.VariantRequest) (*domain.Variant, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCosts(ctx context.Context) ([]*domain.ProductCost, error)
	UpsertCost(ctx context.Context, request *domain.ProductCostRequest) (*domain.ProductCost, error)
	CostMap(ctx context.Context) (domain.CostMap, error)
}

type Service struct {
	productRepository repository.ProductRepository
	costRepository    repository.ProductCostRepository
	validate          *validator.Validate
	now               func() time.Time
}

func NewService(productRepository repository.ProductRepository, costRepository repository.ProductCostRepository) *Service {
	return &Service{
		productRepository: productRepository,
		costRepository:    costRepository,
		validate:          validator.New(),
		now:               time.Now,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar produtos")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar produtos no banco de dados")
	}
	return products, nil
}

// CreateProduct cadastra o produto e suas variantes. Nomes são únicos pois agrupam as métricas.
func (s *Service) CreateProduct(ctx context.Context, request *domain.ProductRequest) (*domain.Product, error) {
	if request == nil {
		return nil, NewCatalogError(ErrInvalidProduct, apiErrors.ErrMissingRequiredData, "Produto não informado")
	}

	request.Name = strings.TrimSpace(request.Name)
	if err := s.validate.Struct(request); err != nil {
		return nil, NewCatalogError(ErrInvalidProduct, apiErrors.ErrInvalidFormat, err.Error())
	}

	existing, err := s.productRepository.GetByName(ctx, request.Name)
	if err != nil {
		logrus.WithError(err).WithField("product", request.Name).Error("Erro ao buscar produto pelo nome")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto no banco de dados")
	}
	if existing != nil {
		return nil, NewCatalogErrorWithID(ErrProductAlreadyExists, apiErrors.ErrProductAlreadyExists, existing.ID, "Já existe um produto chamado "+request.Name)
	}

	return s.create(ctx, request)
}

// GetOrCreateProduct devolve o produto com o nome informado, cadastrando-o quando não existe
func (s *Service) GetOrCreateProduct(ctx context.Context, name string) (*domain.Product, error) {
	product, err := s.productRepository.GetByName(ctx, name)
	if err != nil {
		logrus.WithError(err).WithField("product", name).Error("Erro ao buscar produto pelo nome")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto no banco de dados")
	}
	if product != nil {
		return product, nil
	}

	return s.create(ctx, &domain.ProductRequest{Name: name})
}

func (s *Service) create(ctx context.Context, request *domain.ProductRequest) (*domain.Product, error) {
	product, err := s.newProduct(request)
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		logrus.WithError(err).WithField("product", request.Name).Error("Erro ao criar produto")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar produto no banco de dados")
	}

	logrus.WithFields(logrus.Fields{"product_id": product.ID, "variants": len(product.Variants)}).Info("Produto criado")

	return product, nil
}

func (s *Service) newProduct(request *domain.ProductRequest) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o produto")
	}

	now := s.now()
	product := &domain.Product{
		ID:        id,
		Name:      request.Name,
		CreatedAt: now,
	}

	for _, vr := range request.Variants {
		variant, err := s.newVariant(id, vr)
		if err != nil {
			return nil, err
		}
		product.Variants = append(product.Variants, variant)
	}

	return product, nil
}

func (s *Service) newVariant(productID string, request *domain.VariantRequest) (*domain.Variant, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para a variante")
	}

	return &domain.Variant{
		ID:        id,
		ProductID: productID,
		Name:      strings.TrimSpace(request.Name),
		SKU:       request.SKU,
		CreatedAt: s.now(),
	}, nil
}

func (s *Service) AddVariant(ctx context.Context, productID string, request *domain.VariantRequest) (*domain.Variant, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}

	if request == nil {
		return nil, NewCatalogErrorWithID(ErrInvalidProduct, apiErrors.ErrMissingRequiredData, productID, "Variante não informada")
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, NewCatalogErrorWithID(ErrInvalidProduct, apiErrors.ErrInvalidFormat, productID, err.Error())
	}

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant, err := s.newVariant(product.ID, request)
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.AddVariant(ctx, variant); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrProductNotFound, productID, "Produto não encontrado")
		}
		logrus.WithError(err).WithField("product_id", productID).Error("Erro ao adicionar variante")
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, productID, "Falha ao adicionar variante no banco de dados")
	}

	return variant, nil
}

// DeleteProduct remove o produto. Registros e custos do produto são removidos junto.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrProductIDRequired
	}

	if err := s.productRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrProductNotFound, id, "Produto não encontrado")
		}
		logrus.WithError(err).WithField("product_id", id).Error("Erro ao excluir produto")
		return NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir produto no banco de dados")
	}

	logrus.WithField("product_id", id).Info("Produto excluído")

	return nil
}

func (s *Service) ListCosts(ctx context.Context) ([]*domain.ProductCost, error) {
	costs, err := s.costRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar custos")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar custos no banco de dados")
	}
	return costs, nil
}

// UpsertCost grava o custo unitário do produto ou da variante
func (s *Service) UpsertCost(ctx context.Context, request *domain.ProductCostRequest) (*domain.ProductCost, error) {
	if request == nil {
		return nil, NewCatalogError(ErrInvalidCost, apiErrors.ErrMissingRequiredData, "Custo não informado")
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, NewCatalogErrorWithID(ErrInvalidCost, apiErrors.ErrInvalidFormat, request.ProductID, err.Error())
	}

	product, err := s.getProduct(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	if request.VariantID != "" && product.FindVariant(request.VariantID) == nil {
		return nil, NewCatalogErrorWithID(ErrVariantNotFound, apiErrors.ErrVariantNotFound, product.ID, "Variante "+request.VariantID+" não encontrada")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o custo")
	}

	cost := &domain.ProductCost{
		ID:          id,
		ProductID:   request.ProductID,
		VariantID:   request.VariantID,
		CostPerUnit: request.CostPerUnit,
		UpdatedAt:   s.now(),
	}

	if err := s.costRepository.Upsert(ctx, cost); err != nil {
		logrus.WithError(err).WithField("cost_key", cost.Key()).Error("Erro ao gravar custo")
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, product.ID, "Falha ao gravar custo no banco de dados")
	}

	return cost, nil
}

// CostMap monta o mapa de custos a partir dos custos gravados
func (s *Service) CostMap(ctx context.Context) (domain.CostMap, error) {
	costs, err := s.ListCosts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildCostMap(costs), nil
}

func (s *Service) getProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).Error("Erro ao buscar produto")
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar produto no banco de dados")
	}

	if product == nil {
		return nil, NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrProductNotFound, id, "Produto não encontrado")
	}

	return product, nil
}
