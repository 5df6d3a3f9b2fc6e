package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Selection
		wantErr bool
	}{
		{name: "vazio representa todos os anos", raw: "", want: AllYears()},
		{name: "todos", raw: "todos", want: AllYears()},
		{name: "todos com caixa e espaços", raw: "  TODOS ", want: AllYears()},
		{name: "ano válido", raw: "2024", want: Year(2024)},
		{name: "ano com dois dígitos", raw: "24", wantErr: true},
		{name: "texto qualquer", raw: "abcd", wantErr: true},
		{name: "ano zero", raw: "0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSelection))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelection_ZeroValueIsAllYears(t *testing.T) {
	var s Selection
	assert.True(t, s.IsAllYears())
	assert.Equal(t, "todos", s.String())

	year, ok := Year(2023).Year()
	assert.True(t, ok)
	assert.Equal(t, 2023, year)
	assert.Equal(t, "2023", Year(2023).String())
}

func TestShortMonthLabel(t *testing.T) {
	assert.Equal(t, "Mar", ShortMonthLabel("Março"))
	assert.Equal(t, "Jan", ShortMonthLabel("Janeiro"))
	assert.Equal(t, "Mai", ShortMonthLabel("Mai"))
}
