// Package projecting monta as saídas do dashboard a partir do conjunto de registros.
package projecting

import (
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
	"github.com/vfg2006/oficina-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/oficina-dashboard-api/pkg/format"
)

// Colunas da tabela detalhada, na ordem de exibição
var tableColumns = []domain.TableColumn{
	{ID: "period", Name: "Período", Type: "text"},
	{ID: "revenue", Name: "Receita", Type: "text"},
	{ID: "expenses", Name: "Despesas", Type: "text"},
	{ID: "profit", Name: "Lucro", Type: "text"},
	{ID: "margin", Name: "Margem (%)", Type: "numeric"},
}

// Service implementa Projector. Não guarda estado entre chamadas:
// a mesma seleção sempre produz o mesmo resultado.
type Service struct {
	store     RecordReader
	formatter format.Formatter
	options   Options
}

func NewService(store RecordReader, formatter format.Formatter, options Options) Projector {
	return &Service{
		store:     store,
		formatter: formatter,
		options:   options,
	}
}

// Project calcula todas as saídas sobre os registros filtrados pela seleção
func (s *Service) Project(selection domain.Selection) *domain.AggregateResult {
	records := s.store.Filter(selection)

	return &domain.AggregateResult{
		Selection:  selection,
		Summary:    aggregating.Summarize(records),
		Series:     aggregating.TimeSeries(records),
		Comparison: aggregating.GroupedComparison(records, selection),
		TableRows:  s.tableRows(records),
	}
}

// tableRows mantém a ordem cronológica; a reordenação fica com quem exibe
func (s *Service) tableRows(records []domain.Record) []domain.TableRow {
	rows := make([]domain.TableRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.TableRow{
			Period:        record.PeriodLabel,
			PeriodStart:   record.PeriodStart,
			Revenue:       s.formatter.Currency(record.Revenue),
			Expenses:      s.formatter.Currency(record.Expenses),
			Profit:        s.formatter.Currency(record.Profit),
			MarginPercent: aggregating.MarginPercent(record.Revenue, record.Profit),
		})
	}
	return rows
}

func (s *Service) Classify(margin decimal.Decimal) domain.MarginClass {
	switch {
	case margin.GreaterThan(s.options.FavorableThreshold):
		return domain.MarginFavorable
	case margin.LessThan(s.options.UnfavorableThreshold):
		return domain.MarginUnfavorable
	default:
		return domain.MarginNeutral
	}
}

func (s *Service) ValidateSelection(selection domain.Selection) error {
	return s.store.ValidateSelection(selection)
}

// Dashboard converte o resultado agregado nos payloads de renderização
func (s *Service) Dashboard(selection domain.Selection) *domain.Dashboard {
	result := s.Project(selection)
	periodTitle := periodTitle(selection)

	return &domain.Dashboard{
		Selection:  selection.String(),
		Summary:    s.summaryPayload(result.Summary, periodTitle),
		Series:     seriesPayload(result.Series, periodTitle),
		Comparison: comparisonPayload(result.Comparison, selection),
		Table:      s.tablePayload(result.TableRows),
	}
}

func (s *Service) summaryPayload(summary domain.Summary, title string) domain.SummaryPayload {
	return domain.SummaryPayload{
		Title: title,
		Metrics: []domain.SummaryMetric{
			{
				Key:       "revenue",
				Label:     "Receita Total",
				Value:     summary.TotalRevenue.InexactFloat64(),
				Formatted: s.formatter.Currency(summary.TotalRevenue),
			},
			{
				Key:       "expenses",
				Label:     "Despesas Totais",
				Value:     summary.TotalExpenses.InexactFloat64(),
				Formatted: s.formatter.Currency(summary.TotalExpenses),
			},
			{
				Key:       "profit",
				Label:     "Lucro Total",
				Value:     summary.TotalProfit.InexactFloat64(),
				Formatted: s.formatter.Currency(summary.TotalProfit),
			},
			{
				Key:       "average_margin",
				Label:     "Margem Média",
				Value:     summary.AverageMarginPercent.InexactFloat64(),
				Formatted: s.formatter.Percentage(summary.AverageMarginPercent, s.options.PercentDigits),
			},
		},
	}
}

func seriesPayload(series []domain.SeriesPoint, title string) domain.SeriesPayload {
	points := make([]domain.SeriesPointPayload, 0, len(series))
	for _, point := range series {
		points = append(points, domain.SeriesPointPayload{
			Date:     point.PeriodStart.Format(time.DateOnly),
			Revenue:  point.Revenue.InexactFloat64(),
			Expenses: point.Expenses.InexactFloat64(),
			Profit:   point.Profit.InexactFloat64(),
		})
	}

	return domain.SeriesPayload{
		Title:  "Evolução Mensal - " + title,
		Points: points,
	}
}

func comparisonPayload(groups []domain.ComparisonGroup, selection domain.Selection) domain.ComparisonPayload {
	categories := make([]domain.ComparisonCategory, 0, len(groups))
	for _, group := range groups {
		categories = append(categories, domain.ComparisonCategory{
			Label:    group.Label,
			Revenue:  group.Revenue.InexactFloat64(),
			Expenses: group.Expenses.InexactFloat64(),
			Profit:   group.Profit.InexactFloat64(),
		})
	}

	payload := domain.ComparisonPayload{
		Title:      "Comparativo por Ano",
		Mode:       domain.ComparisonYearly,
		Categories: categories,
	}
	if year, single := selection.Year(); single {
		payload.Title = "Comparativo Mensal - " + strconv.Itoa(year)
		payload.Mode = domain.ComparisonMonthly
	}
	return payload
}

func (s *Service) tablePayload(rows []domain.TableRow) domain.TablePayload {
	payloadRows := make([]domain.TableRowPayload, 0, len(rows))
	for _, row := range rows {
		payloadRows = append(payloadRows, domain.TableRowPayload{
			Period:      row.Period,
			Revenue:     row.Revenue,
			Expenses:    row.Expenses,
			Profit:      row.Profit,
			Margin:      row.MarginPercent.InexactFloat64(),
			MarginClass: s.Classify(row.MarginPercent),
		})
	}

	return domain.TablePayload{
		Columns: slices.Clone(tableColumns),
		Rows:    payloadRows,
	}
}

// AvailableYears retorna "Todos os Anos" seguido de cada ano em ordem crescente
func (s *Service) AvailableYears() *domain.AvailableYears {
	years := s.store.DistinctYears()

	options := make([]domain.SelectionOption, 0, len(years)+1)
	options = append(options, domain.SelectionOption{
		Label: domain.SelectionAllLabel,
		Value: domain.SelectionAllValue,
	})
	for _, year := range years {
		value := strconv.Itoa(year)
		options = append(options, domain.SelectionOption{Label: value, Value: value})
	}

	return &domain.AvailableYears{
		Options: options,
		Years:   years,
		Default: domain.SelectionAllValue,
	}
}

// Overview resume todo o histórico, independente de filtro
func (s *Service) Overview() *domain.Overview {
	summary := aggregating.Summarize(s.store.Filter(domain.AllYears()))

	return &domain.Overview{
		TotalRevenue:          summary.TotalRevenue.InexactFloat64(),
		TotalRevenueFormatted: s.formatter.Currency(summary.TotalRevenue),
		TotalProfit:           summary.TotalProfit.InexactFloat64(),
		TotalProfitFormatted:  s.formatter.Currency(summary.TotalProfit),
		Months:                s.store.Len(),
		MarginPercent:         summary.AverageMarginPercent.InexactFloat64(),
		MarginFormatted:       s.formatter.Percentage(summary.AverageMarginPercent, s.options.PercentDigits),
	}
}

func periodTitle(selection domain.Selection) string {
	if year, single := selection.Year(); single {
		return "Ano " + strconv.Itoa(year)
	}
	return domain.SelectionAllLabel
}
