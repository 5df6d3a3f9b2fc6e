package projecting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/projector.go -package=mocks

// RecordReader é a visão somente leitura do conjunto de registros
type RecordReader interface {
	// Filter retorna os registros da seleção em ordem cronológica
	Filter(selection domain.Selection) []domain.Record

	// DistinctYears retorna os anos presentes em ordem crescente
	DistinctYears() []int

	// ValidateSelection rejeita anos ausentes do conjunto
	ValidateSelection(selection domain.Selection) error

	Len() int
}

// Projector monta as saídas do dashboard para uma seleção
type Projector interface {
	// Project calcula totais, série, comparativo e linhas da tabela
	Project(selection domain.Selection) *domain.AggregateResult

	// Dashboard retorna os quatro artefatos prontos para renderização
	Dashboard(selection domain.Selection) *domain.Dashboard

	// AvailableYears retorna as opções do seletor de ano
	AvailableYears() *domain.AvailableYears

	// Overview retorna o resumo de todo o histórico
	Overview() *domain.Overview

	// Classify classifica uma margem como favorável, neutra ou desfavorável
	Classify(margin decimal.Decimal) domain.MarginClass

	// ValidateSelection verifica se o ano selecionado existe
	ValidateSelection(selection domain.Selection) error
}
