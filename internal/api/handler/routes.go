package handler

import (
	"net/http"

	"github.com/portalcondominio/clube-api/internal/api/handler/router"
	"github.com/portalcondominio/clube-api/internal/usecases/advertising"
	"github.com/portalcondominio/clube-api/internal/usecases/authenticating"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/internal/usecases/dashboard"
	"github.com/portalcondominio/clube-api/pkg/middleware"
)

var clubManager = []func(http.Handler) http.Handler{middleware.ClubManagerOnly()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Authentication(authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(authenticator),
		},
	}
}

// PublicAdvertisers são as rotas da vitrine do clube, abertas aos moradores
func PublicAdvertisers(service advertising.AdvertisingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clube/anunciantes",
			Method:  http.MethodGet,
			Handler: ListAdvertisers(service),
		},
		{
			Path:    "/v1/clube/anunciantes/:id",
			Method:  http.MethodGet,
			Handler: GetAdvertiser(service),
		},
		{
			Path:    "/v1/clube/anunciantes/:id/visualizacao",
			Method:  http.MethodPost,
			Handler: TrackAdvertiserView(service),
		},
		{
			Path:    "/v1/clube/anunciantes/:id/clique",
			Method:  http.MethodPost,
			Handler: TrackAdvertiserClick(service),
		},
	}
}

func AdminAdvertisers(service advertising.AdvertisingService, billingService billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/clube/anunciantes",
			Method:      http.MethodPost,
			Handler:     CreateAdvertiser(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/anunciantes/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdvertiser(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/anunciantes/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAdvertiser(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/anunciantes/:id/sincronizar",
			Method:      http.MethodPost,
			Handler:     SyncAdvertiserBilling(billingService),
			Middlewares: clubManager,
		},
	}
}

func Billing(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/clube/financeiro/gerar",
			Method:      http.MethodPost,
			Handler:     GenerateBilling(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/financeiro/atualizar-atrasados",
			Method:      http.MethodPost,
			Handler:     MarkOverdueBilling(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/financeiro/mes-atual",
			Method:      http.MethodGet,
			Handler:     ListCurrentMonthBilling(service),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/clube/financeiro/registros/:id/pagamento",
			Method:      http.MethodPost,
			Handler:     RegisterPayment(service),
			Middlewares: clubManager,
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/clube/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardMetrics(service),
			Middlewares: clubManager,
		},
	}
}

func CronJobs(controller CronController) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(controller),
			Middlewares: clubManager,
		},
		{
			Path:        "/v1/admin/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(controller),
			Middlewares: clubManager,
		},
	}
}
