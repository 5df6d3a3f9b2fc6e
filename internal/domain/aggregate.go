package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginClass é a classificação de uma margem para destaque na tabela
type MarginClass string

const (
	MarginFavorable   MarginClass = "favorable"
	MarginNeutral     MarginClass = "neutral"
	MarginUnfavorable MarginClass = "unfavorable"
)

// Summary contém os totais do conjunto filtrado.
// AverageMarginPercent é calculada sobre os totais, não como média das margens mensais.
type Summary struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	AverageMarginPercent decimal.Decimal `json:"average_margin_percent"`
}

type SeriesPoint struct {
	PeriodStart time.Time       `json:"period_start"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	Profit      decimal.Decimal `json:"profit"`
}

// ComparisonGroup é uma categoria do comparativo (um ano ou um mês)
type ComparisonGroup struct {
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// TableRow é a projeção de um registro para a tabela detalhada
type TableRow struct {
	Period        string          `json:"period"`
	PeriodStart   time.Time       `json:"period_start"`
	Revenue       string          `json:"revenue"`
	Expenses      string          `json:"expenses"`
	Profit        string          `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"` // Uma casa decimal
}

// AggregateResult é o resultado derivado de uma seleção, recalculado a cada requisição
type AggregateResult struct {
	Selection  Selection         `json:"-"`
	Summary    Summary           `json:"summary"`
	Series     []SeriesPoint     `json:"series"`
	Comparison []ComparisonGroup `json:"comparison"`
	TableRows  []TableRow        `json:"table_rows"`
}
