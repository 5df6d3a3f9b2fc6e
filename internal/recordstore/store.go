// Package recordstore mantém o conjunto imutável de registros mensais.
package recordstore

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// ProfitTolerance é a diferença máxima aceita entre lucro e receita - despesas
var ProfitTolerance = decimal.New(1, -2)

// Store contém os registros ordenados por período, únicos por (ano, mês).
// Escrito uma vez na construção e somente lido depois, pode ser
// compartilhado entre goroutines sem trava.
type Store struct {
	records []domain.Record
	years   []int
	byYear  map[int][]domain.Record
}

// ProfitMismatch descreve um registro cujo lucro armazenado diverge de receita - despesas
type ProfitMismatch struct {
	Record   domain.Record
	Expected decimal.Decimal
	Diff     decimal.Decimal
}

type periodKey struct {
	year  int
	month int
}

// Build normaliza o mapeamento ano -> mês -> valores em registros ordenados.
// Qualquer chave inválida interrompe a construção e nenhum store parcial é retornado.
func Build(raw domain.RawDataset, months *MonthTable) (*Store, error) {
	if months == nil {
		months = DefaultMonthTable()
	}

	records := make([]domain.Record, 0, len(raw)*12)
	seen := make(map[periodKey]struct{})

	// Chaves ordenadas só para que o erro reportado seja determinístico
	for _, yearKey := range sortedKeys(raw) {
		year, err := strconv.Atoi(strings.TrimSpace(yearKey))
		if err != nil || year < 1 || year > 9999 {
			return nil, newBuildError(ErrInvalidYear, yearKey, "")
		}

		monthValues := raw[yearKey]
		for _, monthKey := range sortedKeys(monthValues) {
			index, ok := months.Index(monthKey)
			if !ok {
				return nil, newBuildError(ErrInvalidMonthName, yearKey, monthKey)
			}

			key := periodKey{year: year, month: index}
			if _, exists := seen[key]; exists {
				return nil, newBuildError(ErrDuplicatePeriod, yearKey, monthKey)
			}
			seen[key] = struct{}{}

			values := monthValues[monthKey]
			if values.Revenue.IsNegative() || values.Expenses.IsNegative() {
				return nil, newBuildError(ErrNegativeAmount, yearKey, monthKey)
			}

			records = append(records, newRecord(year, index, months.Name(index), values))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].PeriodStart.Before(records[j].PeriodStart)
	})

	return newStore(records), nil
}

func newRecord(year, index int, monthName string, values domain.MonthValues) domain.Record {
	label := domain.ShortMonthLabel(monthName)
	return domain.Record{
		PeriodStart: time.Date(year, time.Month(index), 1, 0, 0, 0, 0, time.UTC),
		Year:        year,
		MonthIndex:  index,
		MonthName:   monthName,
		MonthLabel:  label,
		PeriodLabel: label + "/" + strconv.Itoa(year),
		Revenue:     values.Revenue,
		Expenses:    values.Expenses,
		Profit:      values.Profit,
	}
}

func newStore(records []domain.Record) *Store {
	store := &Store{
		records: records,
		byYear:  make(map[int][]domain.Record),
	}

	start := 0
	for i := 1; i <= len(records); i++ {
		if i == len(records) || records[i].Year != records[start].Year {
			year := records[start].Year
			store.years = append(store.years, year)
			store.byYear[year] = records[start:i:i]
			start = i
		}
	}

	return store
}

// Records retorna uma cópia de todos os registros em ordem cronológica
func (s *Store) Records() []domain.Record {
	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	return len(s.records)
}

// DistinctYears retorna os anos presentes em ordem crescente
func (s *Store) DistinctYears() []int {
	return slices.Clone(s.years)
}

func (s *Store) HasYear(year int) bool {
	_, ok := s.byYear[year]
	return ok
}

// Filter retorna os registros da seleção em ordem cronológica.
// Um ano ausente resulta em uma lista vazia, não em erro.
func (s *Store) Filter(selection domain.Selection) []domain.Record {
	year, single := selection.Year()
	if !single {
		return s.Records()
	}

	records, ok := s.byYear[year]
	if !ok {
		return []domain.Record{}
	}
	return slices.Clone(records)
}

// ValidateSelection rejeita anos que não existem no store.
// Filter continua permissivo; a validação fica a cargo da camada de transporte.
func (s *Store) ValidateSelection(selection domain.Selection) error {
	year, single := selection.Year()
	if !single || s.HasYear(year) {
		return nil
	}
	return errors.Wrapf(ErrUnknownYearSelection, "ano %d", year)
}

// ProfitMismatches lista os registros cujo lucro diverge de receita - despesas
// além de ProfitTolerance. Os valores armazenados nunca são corrigidos.
func (s *Store) ProfitMismatches() []ProfitMismatch {
	var mismatches []ProfitMismatch
	for _, record := range s.records {
		expected := record.Revenue.Sub(record.Expenses)
		diff := record.Profit.Sub(expected).Abs()
		if diff.GreaterThan(ProfitTolerance) {
			mismatches = append(mismatches, ProfitMismatch{
				Record:   record,
				Expected: expected,
				Diff:     diff,
			})
		}
	}
	return mismatches
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
