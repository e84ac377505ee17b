package handler

import (
	"net/http"

	"github.com/vfg2006/shop-pnl-api/internal/api/handler/router"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-pnl-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Entries(recorder recording.EntryRecorder, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/entries",
			Method:  http.MethodGet,
			Handler: ListEntries(recorder),
		},
		{
			Path:    "/v1/entries",
			Method:  http.MethodPost,
			Handler: CreateEntry(recorder),
		},
		{
			Path:    "/v1/entries/bulk",
			Method:  http.MethodPost,
			Handler: BulkCreateEntries(recorder),
		},
		{
			Path:        "/v1/entries/import",
			Method:      http.MethodPost,
			Handler:     ImportEntries(recorder),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(MaxImportSize)},
		},
		{
			Path:    "/v1/entries/export",
			Method:  http.MethodGet,
			Handler: ExportEntries(reporter),
		},
		{
			Path:    "/v1/entries/:id",
			Method:  http.MethodPatch,
			Handler: UpdateEntry(recorder),
		},
		{
			Path:    "/v1/entries/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEntry(recorder),
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id/variants",
			Method:  http.MethodPost,
			Handler: AddVariant(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/costs",
			Method:  http.MethodGet,
			Handler: ListCosts(service),
		},
		{
			Path:    "/v1/costs",
			Method:  http.MethodPut,
			Handler: UpsertCost(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
