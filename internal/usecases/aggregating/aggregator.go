// Package aggregating contém as funções puras que derivam totais, séries e
// comparativos a partir de uma lista de registros.
package aggregating

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// MarginPlaces é a precisão da margem por linha
const MarginPlaces int32 = 1

var hundred = decimal.NewFromInt(100)

// Summarize soma receita, despesas e lucro e calcula a margem sobre os totais.
// Sem receita a margem é 0, inclusive para uma lista vazia.
func Summarize(records []domain.Record) domain.Summary {
	var summary domain.Summary
	for _, record := range records {
		summary.TotalRevenue = summary.TotalRevenue.Add(record.Revenue)
		summary.TotalExpenses = summary.TotalExpenses.Add(record.Expenses)
		summary.TotalProfit = summary.TotalProfit.Add(record.Profit)
	}

	summary.AverageMarginPercent = ratioPercent(summary.TotalRevenue, summary.TotalProfit)
	return summary
}

// TimeSeries retorna um ponto por registro, na ordem recebida.
// Meses ausentes não são preenchidos.
func TimeSeries(records []domain.Record) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, len(records))
	for _, record := range records {
		points = append(points, domain.SeriesPoint{
			PeriodStart: record.PeriodStart,
			Revenue:     record.Revenue,
			Expenses:    record.Expenses,
			Profit:      record.Profit,
		})
	}
	return points
}

// GroupedComparison agrupa por ano quando a seleção é de todos os anos e por
// mês quando um ano está selecionado.
func GroupedComparison(records []domain.Record, selection domain.Selection) []domain.ComparisonGroup {
	if selection.IsAllYears() {
		return groupBy(records,
			func(r domain.Record) int { return r.Year },
			func(r domain.Record) string { return strconv.Itoa(r.Year) },
		)
	}

	return groupBy(records,
		func(r domain.Record) int { return r.MonthIndex },
		func(r domain.Record) string { return domain.ShortMonthLabel(r.MonthName) },
	)
}

// MarginPercent é lucro / receita * 100 com uma casa decimal; 0 quando não há receita
func MarginPercent(revenue, profit decimal.Decimal) decimal.Decimal {
	return ratioPercent(revenue, profit).Round(MarginPlaces)
}

func ratioPercent(revenue, profit decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred)
}

// groupBy soma os campos por chave e ordena as categorias pela chave.
// O rótulo vem do primeiro registro de cada grupo.
func groupBy(
	records []domain.Record,
	keyOf func(domain.Record) int,
	labelOf func(domain.Record) string,
) []domain.ComparisonGroup {
	groups := make(map[int]*domain.ComparisonGroup)
	keys := make([]int, 0)

	for _, record := range records {
		key := keyOf(record)
		group, ok := groups[key]
		if !ok {
			group = &domain.ComparisonGroup{Label: labelOf(record)}
			groups[key] = group
			keys = append(keys, key)
		}

		group.Revenue = group.Revenue.Add(record.Revenue)
		group.Expenses = group.Expenses.Add(record.Expenses)
		group.Profit = group.Profit.Add(record.Profit)
	}

	sort.Ints(keys)

	result := make([]domain.ComparisonGroup, 0, len(keys))
	for _, key := range keys {
		result = append(result, *groups[key])
	}
	return result
}
