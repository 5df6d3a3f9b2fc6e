package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// SelectionAllValue é o valor do filtro que representa todos os anos
	SelectionAllValue = "todos"
	// SelectionAllLabel é o rótulo exibido para a opção de todos os anos
	SelectionAllLabel = "Todos os Anos"
)

// ErrInvalidSelection indica um valor de filtro que não é "todos" nem um ano
var ErrInvalidSelection = errors.New("invalid year selection")

// Selection é o estado do filtro: todos os anos ou um ano específico.
// O valor zero representa todos os anos.
type Selection struct {
	single bool
	year   int
}

func AllYears() Selection {
	return Selection{}
}

func Year(y int) Selection {
	return Selection{single: true, year: y}
}

func (s Selection) IsAllYears() bool {
	return !s.single
}

// Year retorna o ano selecionado e false quando a seleção é de todos os anos
func (s Selection) Year() (int, bool) {
	return s.year, s.single
}

func (s Selection) String() string {
	if !s.single {
		return SelectionAllValue
	}
	return strconv.Itoa(s.year)
}

// ParseSelection interpreta o parâmetro de filtro recebido pela camada de transporte.
// Vazio ou "todos" resulta em todos os anos; um ano deve ter quatro dígitos.
func ParseSelection(raw string) (Selection, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, SelectionAllValue) {
		return AllYears(), nil
	}

	if len(value) != 4 {
		return Selection{}, errors.Wrapf(ErrInvalidSelection, "ano %q deve ter quatro dígitos", value)
	}

	year, err := strconv.Atoi(value)
	if err != nil || year <= 0 {
		return Selection{}, errors.Wrapf(ErrInvalidSelection, "ano %q não é numérico", value)
	}

	return Year(year), nil
}
