// Package format converte valores monetários e percentuais em texto para exibição.
package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PercentageDefaultDigits é o número de casas usado nas margens exibidas
const PercentageDefaultDigits int32 = 1

// Formatter aplica a convenção de separadores de um locale.
// É um valor imutável; configure uma vez e compartilhe.
type Formatter struct {
	ThousandsSeparator string
	DecimalSeparator   string
	CurrencyPrefix     string
}

// Default retorna a convenção brasileira: "R$ 1.234,50"
func Default() Formatter {
	return Formatter{
		ThousandsSeparator: ".",
		DecimalSeparator:   ",",
		CurrencyPrefix:     "R$ ",
	}
}

func (f Formatter) Validate() error {
	if f.DecimalSeparator == "" {
		return errors.New("format: decimal separator is required")
	}
	if f.ThousandsSeparator == f.DecimalSeparator {
		return errors.Errorf("format: thousands and decimal separators must differ (%q)", f.DecimalSeparator)
	}
	return nil
}

// Currency retorna o valor com duas casas e prefixo monetário (ex: "-R$ 1.234,56").
// O sinal negativo vem antes do prefixo.
func (f Formatter) Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	formatted := f.Number(rounded.Abs(), 2)
	if rounded.IsNegative() {
		return "-" + f.CurrencyPrefix + formatted
	}
	return f.CurrencyPrefix + formatted
}

// Number retorna o valor com separadores de milhar e decimal, sem prefixo
func (f Formatter) Number(amount decimal.Decimal, places int32) string {
	if places < 0 {
		places = 0
	}

	sign := ""
	rounded := amount.Round(places)
	if rounded.IsNegative() {
		sign = "-"
	}

	parts := strings.SplitN(rounded.Abs().StringFixed(places), ".", 2)
	intPart := groupThousands(parts[0], f.ThousandsSeparator)
	if len(parts) == 1 {
		return sign + intPart
	}
	return sign + intPart + f.DecimalSeparator + parts[1]
}

// Percentage retorna uma razão já na escala 0-100 com casas fixas e "%" ao final.
// Quem chama garante que o valor é definido (margens com receita zero valem 0).
func (f Formatter) Percentage(ratio decimal.Decimal, digits int32) string {
	if digits < 0 {
		digits = 0
	}
	return ratio.StringFixed(digits) + "%"
}

func groupThousands(intPart, separator string) string {
	if len(intPart) <= 3 || separator == "" {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteString(separator)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
