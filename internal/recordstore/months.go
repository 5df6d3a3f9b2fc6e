package recordstore

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// PortugueseMonths é a tabela canônica padrão, na ordem do calendário
var PortugueseMonths = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthTable mapeia nomes de mês para o índice 1-12.
// A busca ignora caixa e forma de normalização Unicode ("março", "MARÇO").
type MonthTable struct {
	names   [12]string
	indexes map[string]int
}

func NewMonthTable(names []string) (*MonthTable, error) {
	if len(names) != 12 {
		return nil, ErrInvalidMonthList
	}

	table := &MonthTable{indexes: make(map[string]int, 12)}
	for i, name := range names {
		key := normalizeMonthKey(name)
		if key == "" {
			return nil, ErrInvalidMonthList
		}
		if _, exists := table.indexes[key]; exists {
			return nil, ErrInvalidMonthList
		}
		table.names[i] = norm.NFC.String(strings.TrimSpace(name))
		table.indexes[key] = i + 1
	}

	return table, nil
}

// DefaultMonthTable retorna a tabela com os meses em português
func DefaultMonthTable() *MonthTable {
	table, err := NewMonthTable(PortugueseMonths)
	if err != nil {
		panic(err)
	}
	return table
}

// MonthTableFor usa os nomes configurados ou, sem nenhum, a tabela padrão
func MonthTableFor(names []string) (*MonthTable, error) {
	if len(names) == 0 {
		return DefaultMonthTable(), nil
	}
	return NewMonthTable(names)
}

// Index retorna o índice 1-12 do mês
func (t *MonthTable) Index(name string) (int, bool) {
	index, ok := t.indexes[normalizeMonthKey(name)]
	return index, ok
}

// Name retorna o nome canônico do mês; vazio para índices fora de 1-12
func (t *MonthTable) Name(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return t.names[index-1]
}

func normalizeMonthKey(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}
