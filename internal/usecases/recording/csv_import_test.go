package recording

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRows    []CSVRow
		wantSkipped int
	}{
		{
			name: "Cabeçalho completo com aspas e maiúsculas",
			input: "\"Date\",\"Product\",GMV,Videos Posted,Views,Shipping,Affiliate,Ads,Units_Sold\n" +
				"2024-03-01,\"Sérum\",120.50,3,1500,10,12.5,8,4\n",
			wantRows: []CSVRow{
				{Line: 2, Date: "2024-03-01", ProductName: "Sérum", GMV: 120.5, VideosPosted: 3, Views: 1500, Shipping: 10, Affiliate: 12.5, Ads: 8, UnitsSold: 4},
			},
		},
		{
			name:  "Colunas ausentes usam valores padrão",
			input: "gmv,views,ads\n99,10,1\n",
			wantRows: []CSVRow{
				{Line: 2, Date: "2024-03-10", ProductName: ImportedProductName, GMV: 99, Views: 10, Ads: 1},
			},
		},
		{
			name:  "Números inválidos viram zero e decimais são truncados em inteiros",
			input: "date,product,gmv,videos_posted,views\n2024-03-02,Tônico,abc,2.9,NaN\n",
			wantRows: []CSVRow{
				{Line: 2, Date: "2024-03-02", ProductName: "Tônico", VideosPosted: 2},
			},
		},
		{
			name:        "Linhas com menos de três valores são ignoradas",
			input:       "date,product,gmv\n2024-03-01,Sérum\n\n2024-03-02,Sérum,50\n",
			wantRows:    []CSVRow{{Line: 4, Date: "2024-03-02", ProductName: "Sérum", GMV: 50}},
			wantSkipped: 1,
		},
		{
			name:     "Arquivo vazio",
			input:    "",
			wantRows: []CSVRow{},
		},
		{
			name:     "Somente cabeçalho",
			input:    "date,product,gmv\n",
			wantRows: []CSVRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, skipped, err := ParseCSV(strings.NewReader(tt.input), "2024-03-10")

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestService_ImportCSV(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	input := "date,product,gmv,videos_posted\n" +
		"2024-03-01,Sérum,100,2\n" +
		"2024-03-02,Sérum,80,1\n" +
		"2024-03-02,Máscara,40,1\n" +
		"03/02/2024,Máscara,40,1\n"

	m.products.EXPECT().GetByName(ctx, "Sérum").Return(&domain.Product{ID: "p1", Name: "Sérum"}, nil)
	m.products.EXPECT().GetByName(ctx, "Máscara").Return(nil, nil)
	m.products.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) error {
		assert.Equal(t, "Máscara", p.Name)
		assert.NotEmpty(t, p.ID)
		return nil
	})
	m.entries.EXPECT().BulkCreate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entries []*domain.Entry) error {
		require.Len(t, entries, 3)
		assert.Equal(t, "p1", entries[0].ProductID)
		assert.Equal(t, "p1", entries[1].ProductID)
		assert.Equal(t, "Máscara", entries[2].Product.Name)
		for _, e := range entries {
			assert.Equal(t, domain.EntrySourceManual, e.Source)
		}
		return nil
	})

	result, err := service.ImportCSV(ctx, strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Máscara"}, result.ProductsCreated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "linha 5")
}

func TestService_ImportCSV_SemLinhasValidas(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.ImportCSV(context.Background(), strings.NewReader("date,product,gmv\n"))

	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Empty(t, result.ProductsCreated)
}

func TestService_ImportCSV_FalhaAoCriarProduto(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.products.EXPECT().GetByName(ctx, ImportedProductName).Return(nil, nil)
	m.products.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("violação de chave"))

	_, err := service.ImportCSV(ctx, strings.NewReader("gmv,views,ads\n10,1,1\n"))

	assertEntryError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
}

func TestService_ImportCSV_ArquivoMalFormado(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ImportCSV(context.Background(), strings.NewReader("date,product,gmv\n2024-03-01,Sé\"rum,10\n"))

	assertEntryError(t, err, ErrInvalidCSV, apiErrors.ErrInvalidCSV)
}
