package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
	"github.com/vfg2006/oficina-dashboard-api/internal/recordstore"
	"github.com/vfg2006/oficina-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/oficina-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/oficina-dashboard-api/pkg/log"
)

const (
	selectionParam = "ano"
	marginParam    = "margin"
)

type marginClassResponse struct {
	Margin float64            `json:"margin"`
	Class  domain.MarginClass `json:"class"`
}

// selectionFromRequest lê o parâmetro "ano" e responde 400 quando ele é
// malformado ou aponta para um ano sem registros
func selectionFromRequest(w http.ResponseWriter, r *http.Request, service projecting.Projector) (domain.Selection, bool) {
	logger := log.ForContext(r.Context())
	raw := r.URL.Query().Get(selectionParam)

	selection, err := domain.ParseSelection(raw)
	if err != nil {
		logger.WithError(err).Warn("Parâmetro de ano inválido")
		apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidFormat)
		apiErrors.WriteError(w, apiErr.Code, "Parâmetro 'ano' deve ser 'todos' ou um ano com 4 dígitos",
			map[string]string{selectionParam: raw})
		return domain.Selection{}, false
	}

	if err := service.ValidateSelection(selection); err != nil {
		code := apiErrors.ErrInternalServer
		if errors.Is(err, recordstore.ErrUnknownYearSelection) {
			code = apiErrors.ErrUnknownYear
		}

		logger.WithError(err).Warn("Ano selecionado sem registros")
		apiErrors.WriteError(w, code, "Ano sem registros", map[string]any{
			selectionParam:     raw,
			"anos_disponiveis": service.AvailableYears().Years,
		})
		return domain.Selection{}, false
	}

	return selection, true
}

// GetDashboard retorna os quatro artefatos do dashboard para a seleção
func GetDashboard(service projecting.Projector) http.Handler {
	return dashboardPart(service, func(d *domain.Dashboard) any { return d })
}

func GetDashboardSummary(service projecting.Projector) http.Handler {
	return dashboardPart(service, func(d *domain.Dashboard) any { return d.Summary })
}

func GetDashboardSeries(service projecting.Projector) http.Handler {
	return dashboardPart(service, func(d *domain.Dashboard) any { return d.Series })
}

func GetDashboardComparison(service projecting.Projector) http.Handler {
	return dashboardPart(service, func(d *domain.Dashboard) any { return d.Comparison })
}

func GetDashboardTable(service projecting.Projector) http.Handler {
	return dashboardPart(service, func(d *domain.Dashboard) any { return d.Table })
}

func dashboardPart(service projecting.Projector, pick func(*domain.Dashboard) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selection, ok := selectionFromRequest(w, r, service)
		if !ok {
			return
		}

		dashboard := service.Dashboard(selection)
		log.ForContext(r.Context()).
			WithField("selection", selection.String()).
			WithField("dashboard_rows", len(dashboard.Table.Rows)).
			Debug("Dashboard projetado")

		writeJSON(w, r, http.StatusOK, pick(dashboard))
	})
}

// GetAvailableYears retorna as opções do seletor de ano
func GetAvailableYears(service projecting.Projector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.AvailableYears())
	})
}

// GetOverview retorna o resumo de todo o histórico
func GetOverview(service projecting.Projector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Overview())
	})
}

// ClassifyMargin classifica uma margem percentual informada em ?margin=
func ClassifyMargin(service projecting.Projector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get(marginParam))
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro 'margin' é obrigatório", nil)
			return
		}

		margin, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Margem inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'margin' deve ser numérico",
				map[string]string{marginParam: raw})
			return
		}

		writeJSON(w, r, http.StatusOK, marginClassResponse{
			Margin: margin.InexactFloat64(),
			Class:  service.Classify(margin),
		})
	})
}
