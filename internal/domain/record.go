// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthValues são os valores brutos de um mês, como chegam da fonte de dados
type MonthValues struct {
	Revenue  decimal.Decimal `mapstructure:"receita" json:"receita"`
	Expenses decimal.Decimal `mapstructure:"despesas" json:"despesas"`
	Profit   decimal.Decimal `mapstructure:"lucro" json:"lucro"`
}

// RawDataset é o mapeamento aninhado ano -> nome do mês -> valores
type RawDataset map[string]map[string]MonthValues

// Record representa o fechamento financeiro de um mês
type Record struct {
	PeriodStart time.Time       `json:"period_start"` // Primeiro dia do mês, UTC
	Year        int             `json:"year"`
	MonthIndex  int             `json:"month_index"` // 1-12
	MonthName   string          `json:"month_name"`
	MonthLabel  string          `json:"month_label"`  // Ex: "Mar"
	PeriodLabel string          `json:"period_label"` // Ex: "Mar/2024"
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	Profit      decimal.Decimal `json:"profit"`
}

// ShortMonthLabel retorna os três primeiros caracteres do nome do mês
func ShortMonthLabel(monthName string) string {
	runes := []rune(monthName)
	if len(runes) <= 3 {
		return monthName
	}
	return string(runes[:3])
}
