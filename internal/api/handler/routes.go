package handler

import (
	"net/http"

	"github.com/vfg2006/ads-finance-api/internal/api/handler/router"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/scheduler"
	"github.com/vfg2006/ads-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-finance-api/internal/usecases/entries"
	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
	"github.com/vfg2006/ads-finance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-finance-api/internal/usecases/products"
	"github.com/vfg2006/ads-finance-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-finance-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Ingestion é a rota do exportador headless: fora do JWT, autenticada pelo
// token de ingestão validado no handler
func Ingestion(service ingesting.Ingester, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/ingest",
			Method:  http.MethodPost,
			Handler: IngestMetrics(service, cfg),
		},
	}
}

func Products(service products.ProductService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Entries(service entries.EntryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     SaveManualEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetDailyMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/costs",
			Method:      http.MethodPost,
			Handler:     CreateAdditionalCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/costs",
			Method:      http.MethodGet,
			Handler:     ListAdditionalCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/costs/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAdditionalCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:month",
			Method:      http.MethodPut,
			Handler:     SaveGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:month",
			Method:      http.MethodGet,
			Handler:     GetGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/dre",
			Method:      http.MethodGet,
			Handler:     IncomeReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/accumulated",
			Method:      http.MethodGet,
			Handler:     AccumulatedReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(service *scheduler.ExchangeRateSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/exchange-rate",
			Method:      http.MethodPost,
			Handler:     RunExchangeRateSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Rates(service exchanging.RateManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rates",
			Method:      http.MethodGet,
			Handler:     GetRates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rates/revenue",
			Method:      http.MethodPut,
			Handler:     SetRevenueRate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
