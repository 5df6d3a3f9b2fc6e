package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/oficina-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/oficina-dashboard-api/internal/usecases/projecting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Overview(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
	}
}

func Dashboard(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/years",
			Method:  http.MethodGet,
			Handler: GetAvailableYears(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/series",
			Method:  http.MethodGet,
			Handler: GetDashboardSeries(service),
		},
		{
			Path:    "/v1/dashboard/comparison",
			Method:  http.MethodGet,
			Handler: GetDashboardComparison(service),
		},
		{
			Path:    "/v1/dashboard/table",
			Method:  http.MethodGet,
			Handler: GetDashboardTable(service),
		},
		{
			Path:    "/v1/dashboard/classify",
			Method:  http.MethodGet,
			Handler: ClassifyMargin(service),
		},
	}
}
