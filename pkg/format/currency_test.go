package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Currency(t *testing.T) {
	f := Default()

	tests := []struct {
		name     string
		input    decimal.Decimal
		expected string
	}{
		{"Milhar com centavos", decimal.NewFromFloat(1234.5), "R$ 1.234,50"},
		{"Zero", decimal.Zero, "R$ 0,00"},
		{"Abaixo de mil", decimal.NewFromFloat(999.99), "R$ 999,99"},
		{"Milhões", decimal.NewFromFloat(1234567.891), "R$ 1.234.567,89"},
		{"Negativo", decimal.NewFromFloat(-1234.56), "-R$ 1.234,56"},
		{"Arredonda para cima no meio", decimal.RequireFromString("0.125"), "R$ 0,13"},
		{"Negativo que arredonda para zero", decimal.RequireFromString("-0.001"), "R$ 0,00"},
		{"Total do histórico", decimal.RequireFromString("344932.97"), "R$ 344.932,97"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Currency(tt.input))
		})
	}
}

func TestFormatter_CurrencyCustomSeparators(t *testing.T) {
	f := Formatter{ThousandsSeparator: ",", DecimalSeparator: ".", CurrencyPrefix: "$"}

	assert.Equal(t, "$1,234.50", f.Currency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "-$12,345,678.00", f.Currency(decimal.NewFromInt(-12345678)))
}

func TestFormatter_Percentage(t *testing.T) {
	f := Default()

	tests := []struct {
		name     string
		input    decimal.Decimal
		digits   int32
		expected string
	}{
		{"Uma casa", decimal.NewFromFloat(33.333), PercentageDefaultDigits, "33.3%"},
		{"Setenta", decimal.NewFromInt(70), PercentageDefaultDigits, "70.0%"},
		{"Zero", decimal.Zero, PercentageDefaultDigits, "0.0%"},
		{"Duas casas", decimal.NewFromFloat(12.345), 2, "12.35%"},
		{"Sem casas", decimal.NewFromFloat(49.6), 0, "50%"},
		{"Negativo", decimal.NewFromFloat(-5.25), PercentageDefaultDigits, "-5.3%"},
		{"Casas negativas viram zero", decimal.NewFromFloat(10.4), -1, "10%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Percentage(tt.input, tt.digits))
		})
	}
}

func TestFormatter_Number(t *testing.T) {
	f := Default()

	assert.Equal(t, "1.000", f.Number(decimal.NewFromInt(1000), 0))
	assert.Equal(t, "-1.000,5", f.Number(decimal.NewFromFloat(-1000.5), 1))
}

func TestFormatter_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Error(t, Formatter{ThousandsSeparator: ".", DecimalSeparator: "."}.Validate())
	assert.Error(t, Formatter{ThousandsSeparator: "."}.Validate())
}
