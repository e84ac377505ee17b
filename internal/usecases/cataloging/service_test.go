package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockProductRepository, *mocks.MockProductCostRepository) {
	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)
	costs := mocks.NewMockProductCostRepository(ctrl)
	return NewService(products, costs), products, costs
}

func assertCatalogError(t *testing.T, err error, target error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	var catalogErr *CatalogError
	require.True(t, errors.As(err, &catalogErr))
	assert.Equal(t, code, catalogErr.Code)
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.ProductRequest
		setup    func(products *mocks.MockProductRepository)
		wantErr  error
		wantCode string
	}{
		{
			name: "Cria produto com variantes",
			request: &domain.ProductRequest{
				Name:     "  Kit Skincare ",
				Variants: []*domain.VariantRequest{{Name: "Pele seca"}, {Name: "Pele oleosa"}},
			},
			setup: func(products *mocks.MockProductRepository) {
				products.EXPECT().GetByName(gomock.Any(), "Kit Skincare").Return(nil, nil)
				products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) error {
					require.Len(t, p.Variants, 2)
					for _, v := range p.Variants {
						assert.Equal(t, p.ID, v.ProductID)
						assert.NotEmpty(t, v.ID)
					}
					return nil
				})
			},
		},
		{
			name:     "Nome obrigatório",
			request:  &domain.ProductRequest{Name: "   "},
			setup:    func(products *mocks.MockProductRepository) {},
			wantErr:  ErrInvalidProduct,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Variante sem nome",
			request:  &domain.ProductRequest{Name: "Kit", Variants: []*domain.VariantRequest{{Name: ""}}},
			setup:    func(products *mocks.MockProductRepository) {},
			wantErr:  ErrInvalidProduct,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Nome já cadastrado",
			request: &domain.ProductRequest{Name: "Kit"},
			setup: func(products *mocks.MockProductRepository) {
				products.EXPECT().GetByName(gomock.Any(), "Kit").Return(&domain.Product{ID: "p1", Name: "Kit"}, nil)
			},
			wantErr:  ErrProductAlreadyExists,
			wantCode: apiErrors.ErrProductAlreadyExists,
		},
		{
			name:    "Falha ao gravar",
			request: &domain.ProductRequest{Name: "Kit"},
			setup: func(products *mocks.MockProductRepository) {
				products.EXPECT().GetByName(gomock.Any(), "Kit").Return(nil, nil)
				products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, products, _ := newTestService(t)
			tt.setup(products)

			product, err := service.CreateProduct(context.Background(), tt.request)

			if tt.wantErr != nil {
				assert.Nil(t, product)
				assertCatalogError(t, err, tt.wantErr, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, product.ID)
			assert.Equal(t, "Kit Skincare", product.Name)
		})
	}
}

func TestService_GetOrCreateProduct(t *testing.T) {
	t.Run("Produto existente", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().GetByName(gomock.Any(), "Minha Loja").Return(&domain.Product{ID: "p1", Name: "Minha Loja"}, nil)

		product, err := service.GetOrCreateProduct(context.Background(), "Minha Loja")

		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
	})

	t.Run("Produto novo", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().GetByName(gomock.Any(), "Minha Loja").Return(nil, nil)
		products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		product, err := service.GetOrCreateProduct(context.Background(), "Minha Loja")

		require.NoError(t, err)
		assert.Equal(t, "Minha Loja", product.Name)
		assert.NotEmpty(t, product.ID)
	})
}

func TestService_AddVariant(t *testing.T) {
	t.Run("Adiciona variante", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1"}, nil)
		products.EXPECT().AddVariant(gomock.Any(), gomock.Any()).Return(nil)

		sku := "KIT-01"
		variant, err := service.AddVariant(context.Background(), "p1", &domain.VariantRequest{Name: "Azul", SKU: &sku})

		require.NoError(t, err)
		assert.Equal(t, "p1", variant.ProductID)
		assert.Equal(t, "Azul", variant.Name)
		assert.Equal(t, &sku, variant.SKU)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().GetByID(gomock.Any(), "p9").Return(nil, nil)

		_, err := service.AddVariant(context.Background(), "p9", &domain.VariantRequest{Name: "Azul"})

		assertCatalogError(t, err, ErrProductNotFound, apiErrors.ErrProductNotFound)
	})

	t.Run("ID obrigatório", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.AddVariant(context.Background(), "", &domain.VariantRequest{Name: "Azul"})

		assert.ErrorIs(t, err, ErrProductIDRequired)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	t.Run("Exclui produto", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		assert.NoError(t, service.DeleteProduct(context.Background(), "p1"))
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		service, products, _ := newTestService(t)
		products.EXPECT().Delete(gomock.Any(), "p1").Return(repository.ErrNotFound)

		err := service.DeleteProduct(context.Background(), "p1")

		assertCatalogError(t, err, ErrProductNotFound, apiErrors.ErrProductNotFound)
	})
}

func TestService_UpsertCost(t *testing.T) {
	product := &domain.Product{
		ID:       "p1",
		Name:     "Kit",
		Variants: []*domain.Variant{{ID: "v1", ProductID: "p1", Name: "Azul"}},
	}

	tests := []struct {
		name     string
		request  *domain.ProductCostRequest
		setup    func(products *mocks.MockProductRepository, costs *mocks.MockProductCostRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:    "Custo da variante",
			request: &domain.ProductCostRequest{ProductID: "p1", VariantID: "v1", CostPerUnit: 12.5},
			setup: func(products *mocks.MockProductRepository, costs *mocks.MockProductCostRepository) {
				products.EXPECT().GetByID(gomock.Any(), "p1").Return(product, nil)
				costs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.ProductCost) error {
					assert.Equal(t, "p1-v1", c.Key())
					assert.Equal(t, 12.5, c.CostPerUnit)
					return nil
				})
			},
		},
		{
			name:     "Custo negativo",
			request:  &domain.ProductCostRequest{ProductID: "p1", CostPerUnit: -1},
			setup:    func(products *mocks.MockProductRepository, costs *mocks.MockProductCostRepository) {},
			wantErr:  ErrInvalidCost,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Variante desconhecida",
			request: &domain.ProductCostRequest{ProductID: "p1", VariantID: "v9", CostPerUnit: 1},
			setup: func(products *mocks.MockProductRepository, costs *mocks.MockProductCostRepository) {
				products.EXPECT().GetByID(gomock.Any(), "p1").Return(product, nil)
			},
			wantErr:  ErrVariantNotFound,
			wantCode: apiErrors.ErrVariantNotFound,
		},
		{
			name:    "Produto desconhecido",
			request: &domain.ProductCostRequest{ProductID: "p9", CostPerUnit: 1},
			setup: func(products *mocks.MockProductRepository, costs *mocks.MockProductCostRepository) {
				products.EXPECT().GetByID(gomock.Any(), "p9").Return(nil, nil)
			},
			wantErr:  ErrProductNotFound,
			wantCode: apiErrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, products, costs := newTestService(t)
			tt.setup(products, costs)

			cost, err := service.UpsertCost(context.Background(), tt.request)

			if tt.wantErr != nil {
				assert.Nil(t, cost)
				assertCatalogError(t, err, tt.wantErr, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, cost.ID)
		})
	}
}

func TestService_CostMap(t *testing.T) {
	service, _, costs := newTestService(t)
	costs.EXPECT().List(gomock.Any()).Return([]*domain.ProductCost{
		{ProductID: "p1", CostPerUnit: 5},
		{ProductID: "p2", VariantID: "v1", CostPerUnit: 8},
	}, nil)

	costMap, err := service.CostMap(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CostMap{"p1": 5, "p2-v1": 8}, costMap)
}

func TestService_CostMap_ErroNoBanco(t *testing.T) {
	service, _, costs := newTestService(t)
	costs.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	costMap, err := service.CostMap(context.Background())

	assert.Nil(t, costMap)
	assertCatalogError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
}
