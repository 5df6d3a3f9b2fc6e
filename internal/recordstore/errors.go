package recordstore

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros de construção do store; todos abortam a inicialização
var (
	ErrInvalidMonthName = errors.New("invalid month name")
	ErrInvalidYear      = errors.New("invalid year")
	ErrNegativeAmount   = errors.New("negative amount")
	ErrDuplicatePeriod  = errors.New("duplicate period")
	ErrInvalidMonthList = errors.New("month table must have 12 distinct names")
)

// ErrUnknownYearSelection indica um ano ausente do conjunto de registros
var ErrUnknownYearSelection = errors.New("unknown year selection")

// BuildError é um erro de construção com o ano e mês envolvidos
type BuildError struct {
	Err   error  // Erro base
	Year  string // Chave de ano como recebida
	Month string // Chave de mês como recebida (quando aplicável)
}

func (e *BuildError) Error() string {
	if e.Month != "" {
		return fmt.Sprintf("%s: ano %q, mês %q", e.Err.Error(), e.Year, e.Month)
	}
	return fmt.Sprintf("%s: ano %q", e.Err.Error(), e.Year)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func newBuildError(err error, year, month string) error {
	return errors.WithStack(&BuildError{Err: err, Year: year, Month: month})
}
