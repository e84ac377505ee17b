package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-pnl-api/internal/api/handler/router"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
	"github.com/vfg2006/shop-pnl-api/internal/scheduler"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
	catalogmocks "github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging/mocks"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	recordingmocks "github.com/vfg2006/shop-pnl-api/internal/usecases/recording/mocks"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/shop-pnl-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/shop-pnl-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	recorder  *recordingmocks.MockEntryRecorder
	cataloger *catalogmocks.MockCataloger
	reporter  *reportingmocks.MockReporter
	syncer    *fakeSyncer
}

type fakeSyncer struct {
	err      error
	lastDays int
	called   bool
}

func (f *fakeSyncer) TriggerManualSync(days int) error {
	f.called = true
	f.lastDays = days
	return f.err
}

func (f *fakeSyncer) GetStatus(ctx context.Context) map[string]any {
	return map[string]any{"sync_running": false}
}

func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	ctrl := gomock.NewController(t)

	m := testMocks{
		recorder:  recordingmocks.NewMockEntryRecorder(ctrl),
		cataloger: catalogmocks.NewMockCataloger(ctrl),
		reporter:  reportingmocks.NewMockReporter(ctrl),
		syncer:    &fakeSyncer{},
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Entries(m.recorder, m.reporter)...),
		router.WithRoutes(Products(m.cataloger)...),
		router.WithRoutes(Dashboard(m.reporter)...),
		router.WithRoutes(CronJobs(CronJobServices{PlatformSync: m.syncer})...),
	)

	return rt, m
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthcheck(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_RotaInexistente(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/v1/nada", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)

	rec = serve(h, http.MethodPut, "/v1/dashboard", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeError(t, rec).Code)
}

func TestListEntries(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(m testMocks)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Lista com filtros",
			target: "/v1/entries?date_from=2024-03-01&date_to=2024-03-10&product_id=p1",
			setup: func(m testMocks) {
				from, to := "2024-03-01", "2024-03-10"
				m.recorder.EXPECT().
					ListEntries(gomock.Any(), domain.EntryFilters{DateFrom: &from, DateTo: &to, ProductID: "p1"}).
					Return([]*domain.CalculatedEntry{{Entry: &domain.Entry{ID: "e1"}}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Produto padrão é all",
			target: "/v1/entries",
			setup: func(m testMocks) {
				m.recorder.EXPECT().
					ListEntries(gomock.Any(), domain.EntryFilters{ProductID: domain.AllProducts}).
					Return([]*domain.CalculatedEntry{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Data inválida",
			target:     "/v1/entries?date_from=10/03/2024",
			setup:      func(m testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Erro no banco",
			target: "/v1/entries",
			setup: func(m testMocks) {
				m.recorder.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
					Return(nil, recording.NewEntryError(recording.ErrFetchEntries, apiErrors.ErrDatabaseOperation, "falha"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestRouter(t)
			tt.setup(m)

			rec := serve(h, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestCreateEntry(t *testing.T) {
	t.Run("Cria registro", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().CreateEntry(gomock.Any(), &domain.EntryRequest{ProductID: "p1", Date: "2024-03-10", GMV: 120}).
			Return(&domain.Entry{ID: "e1", ProductID: "p1", Date: "2024-03-10", GMV: 120}, nil)

		rec := serve(h, http.MethodPost, "/v1/entries", strings.NewReader(`{"product_id":"p1","date":"2024-03-10","gmv":120}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"e1"`)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rec := serve(h, http.MethodPost, "/v1/entries", strings.NewReader(`{"product_id":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Produto inexistente", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
			Return(nil, recording.NewEntryError(recording.ErrProductNotFound, apiErrors.ErrProductNotFound, "Produto p9 não encontrado"))

		rec := serve(h, http.MethodPost, "/v1/entries", strings.NewReader(`{"product_id":"p9","date":"2024-03-10"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrProductNotFound, decodeError(t, rec).Code)
	})
}

func TestBulkCreateEntries(t *testing.T) {
	h, m := newTestRouter(t)
	m.recorder.EXPECT().BulkCreateEntries(gomock.Any(), gomock.Len(2)).
		Return([]*domain.Entry{{ID: "e1"}, {ID: "e2"}}, nil)

	rec := serve(h, http.MethodPost, "/v1/entries/bulk", strings.NewReader(
		`{"entries":[{"product_id":"p1","date":"2024-03-10"},{"product_id":"p1","date":"2024-03-11"}]}`,
	))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateEntry(t *testing.T) {
	t.Run("Atualiza campos informados", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().UpdateEntry(gomock.Any(), "e1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch *domain.EntryPatch) (*domain.Entry, error) {
				require.NotNil(t, patch.GMV)
				assert.Equal(t, 99.5, *patch.GMV)
				assert.Nil(t, patch.Ads)
				return &domain.Entry{ID: "e1", GMV: 99.5}, nil
			})

		rec := serve(h, http.MethodPatch, "/v1/entries/e1", strings.NewReader(`{"gmv":99.5}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Registro inexistente", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().UpdateEntry(gomock.Any(), "e9", gomock.Any()).
			Return(nil, recording.NewEntryErrorWithID(recording.ErrEntryNotFound, apiErrors.ErrEntryNotFound, "e9", "Registro não encontrado"))

		rec := serve(h, http.MethodPatch, "/v1/entries/e9", strings.NewReader(`{"gmv":1}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrEntryNotFound, body.Code)
		assert.Equal(t, map[string]any{"entry_id": "e9", "error_type": recording.ErrEntryNotFound.Error()}, body.Details)
	})
}

func TestDeleteEntry(t *testing.T) {
	h, m := newTestRouter(t)
	m.recorder.EXPECT().DeleteEntry(gomock.Any(), "e1").Return(nil)

	rec := serve(h, http.MethodDelete, "/v1/entries/e1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestImportEntries(t *testing.T) {
	const csvContent = "date,product,gmv\n2024-03-10,Kit,100\n"

	t.Run("CSV no corpo", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r io.Reader) (*recording.ImportResult, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, csvContent, string(content))
				return &recording.ImportResult{Imported: 1}, nil
			})

		rec := serve(h, http.MethodPost, "/v1/entries/import", strings.NewReader(csvContent))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imported":1`)
	})

	t.Run("CSV em upload multipart", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r io.Reader) (*recording.ImportResult, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, csvContent, string(content))
				return &recording.ImportResult{Imported: 1}, nil
			})

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "registros.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(csvContent))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/entries/import", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CSV malformado", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.recorder.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).
			Return(nil, recording.NewEntryError(recording.ErrInvalidCSV, apiErrors.ErrInvalidCSV, "aspas inválidas"))

		rec := serve(h, http.MethodPost, "/v1/entries/import", strings.NewReader(`a,"b`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCSV, decodeError(t, rec).Code)
	})
}

func TestExportEntries(t *testing.T) {
	h, m := newTestRouter(t)
	m.reporter.EXPECT().ExportCSV(gomock.Any(), gomock.Any(), domain.EntryFilters{ProductID: "p1"}).
		DoAndReturn(func(_ context.Context, w io.Writer, _ domain.EntryFilters) error {
			_, err := io.WriteString(w, "date,product\n")
			return err
		})

	rec := serve(h, http.MethodGet, "/v1/entries/export?product_id=p1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="shop_pnl_`)
	assert.Equal(t, "date,product\n", rec.Body.String())
}

func TestProducts(t *testing.T) {
	t.Run("Cria produto", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().CreateProduct(gomock.Any(), &domain.ProductRequest{Name: "Kit"}).
			Return(&domain.Product{ID: "p1", Name: "Kit"}, nil)

		rec := serve(h, http.MethodPost, "/v1/products", strings.NewReader(`{"name":"Kit"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Produto duplicado", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			Return(nil, cataloging.NewCatalogError(cataloging.ErrProductAlreadyExists, apiErrors.ErrProductAlreadyExists, "Produto já cadastrado"))

		rec := serve(h, http.MethodPost, "/v1/products", strings.NewReader(`{"name":"Kit"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Adiciona variante", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().AddVariant(gomock.Any(), "p1", &domain.VariantRequest{Name: "Azul"}).
			Return(&domain.Variant{ID: "v1", ProductID: "p1", Name: "Azul"}, nil)

		rec := serve(h, http.MethodPost, "/v1/products/p1/variants", strings.NewReader(`{"name":"Azul"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Exclui produto", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil)

		rec := serve(h, http.MethodDelete, "/v1/products/p1", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Lista produtos", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().ListProducts(gomock.Any()).Return([]*domain.Product{{ID: "p1", Name: "Kit"}}, nil)

		rec := serve(h, http.MethodGet, "/v1/products", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Kit"`)
	})
}

func TestCosts(t *testing.T) {
	t.Run("Salva custo", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().UpsertCost(gomock.Any(), &domain.ProductCostRequest{ProductID: "p1", CostPerUnit: 12.5}).
			Return(&domain.ProductCost{ID: "c1", ProductID: "p1", CostPerUnit: 12.5}, nil)

		rec := serve(h, http.MethodPut, "/v1/costs", strings.NewReader(`{"product_id":"p1","cost_per_unit":12.5}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Lista custos", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.cataloger.EXPECT().ListCosts(gomock.Any()).Return([]*domain.ProductCost{}, nil)

		rec := serve(h, http.MethodGet, "/v1/costs", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetDashboard(t *testing.T) {
	t.Run("Converte os parâmetros", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.reporter.EXPECT().GetDashboard(gomock.Any(), reporting.DashboardRequest{
			QuickFilter: domain.QuickFilter(7),
			ProductID:   "p1",
		}).Return(&reporting.Dashboard{Filters: reporting.AppliedFilters{QuickFilter: "7", ProductID: "p1"}}, nil)

		rec := serve(h, http.MethodGet, "/v1/dashboard?quick_filter=7&product_id=p1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quick_filter":"7"`)
	})

	t.Run("Período customizado", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.reporter.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request reporting.DashboardRequest) (*reporting.Dashboard, error) {
				assert.Equal(t, domain.QuickFilterCustom, request.QuickFilter)
				require.NotNil(t, request.DateFrom)
				assert.Equal(t, "2024-03-01", *request.DateFrom)
				assert.Nil(t, request.DateTo)
				return &reporting.Dashboard{}, nil
			})

		rec := serve(h, http.MethodGet, "/v1/dashboard?date_from=2024-03-01", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Atalho inválido", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rec := serve(h, http.MethodGet, "/v1/dashboard?quick_filter=semana", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Período invertido", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.reporter.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrInvalidPeriod)

		rec := serve(h, http.MethodGet, "/v1/dashboard?date_from=2024-03-10&date_to=2024-03-01", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Erro no banco", func(t *testing.T) {
		h, m := newTestRouter(t)
		m.reporter.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrLoadEntries)

		rec := serve(h, http.MethodGet, "/v1/dashboard?quick_filter=all", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})
}

func TestGetForecast(t *testing.T) {
	h, m := newTestRouter(t)
	m.reporter.EXPECT().GetForecast(gomock.Any()).Return(&domain.Forecast{Month: "2024-03", DaysInMonth: 31}, nil)

	rec := serve(h, http.MethodGet, "/v1/dashboard/forecast", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"month":"2024-03"`)
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		syncErr    error
		wantStatus int
		wantCode   string
		wantDays   int
	}{
		{name: "Dispara sincronização", target: "/v1/cron/platform/run", body: `{"days":30}`, wantStatus: http.StatusAccepted, wantDays: 30},
		{name: "Corpo vazio usa a janela padrão", target: "/v1/cron/all/run", wantStatus: http.StatusAccepted},
		{name: "Tipo desconhecido", target: "/v1/cron/meta/run", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrUnknownCronType},
		{name: "Dias negativos", target: "/v1/cron/platform/run", body: `{"days":-1}`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{
			name:       "Sincronização em andamento",
			target:     "/v1/cron/platform/run",
			syncErr:    scheduler.ErrSyncAlreadyRunning,
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrSyncAlreadyRunning,
		},
		{
			name:       "Falha inesperada",
			target:     "/v1/cron/platform/run",
			syncErr:    errors.New("agendador parado"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestRouter(t)
			m.syncer.err = tt.syncErr

			rec := serve(h, http.MethodPost, tt.target, strings.NewReader(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.True(t, m.syncer.called)
			assert.Equal(t, tt.wantDays, m.syncer.lastDays)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/v1/cron/status", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"platform":{"sync_running":false}}`, rec.Body.String())
}
