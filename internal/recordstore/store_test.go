package recordstore

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

func values(revenue, expenses, profit float64) domain.MonthValues {
	return domain.MonthValues{
		Revenue:  decimal.NewFromFloat(revenue),
		Expenses: decimal.NewFromFloat(expenses),
		Profit:   decimal.NewFromFloat(profit),
	}
}

func sampleDataset() domain.RawDataset {
	return domain.RawDataset{
		"2024": {
			"Março":     values(8721.7, 3137.77, 5583.93),
			"Janeiro":   values(14106.28, 5292.41, 8813.87),
			"Fevereiro": values(13418.1, 6024.92, 7393.18),
		},
		"2023": {
			"Dezembro": values(10743.76, 4540.9, 6202.86),
			"Janeiro":  values(15600.96, 9140.9, 6460.06),
		},
	}
}

func TestBuild_SortsAndNormalizes(t *testing.T) {
	store, err := Build(sampleDataset(), nil)
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 5)

	expected := []string{"Jan/2023", "Dez/2023", "Jan/2024", "Fev/2024", "Mar/2024"}
	for i, record := range records {
		assert.Equal(t, expected[i], record.PeriodLabel)
		if i > 0 {
			assert.True(t, records[i-1].PeriodStart.Before(record.PeriodStart))
		}
	}

	march := records[4]
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), march.PeriodStart)
	assert.Equal(t, 2024, march.Year)
	assert.Equal(t, 3, march.MonthIndex)
	assert.Equal(t, "Março", march.MonthName)
	assert.Equal(t, "Mar", march.MonthLabel)
	assert.True(t, march.Profit.Equal(decimal.NewFromFloat(5583.93)))
}

func TestBuild_MonthLookupIgnoresCaseAndNormalization(t *testing.T) {
	decomposed := "marc\u0327o"
	raw := domain.RawDataset{
		"2024": {
			"MARÇO":        values(10, 5, 5),
			decomposed:     values(0, 0, 0),
			" fevereiro  ": values(20, 5, 15),
		},
	}

	_, err := Build(raw, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePeriod))

	delete(raw["2024"], decomposed)
	store, err := Build(raw, nil)
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Fevereiro", records[0].MonthName)
	assert.Equal(t, "Março", records[1].MonthName)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     domain.RawDataset
		wantErr error
		year    string
		month   string
	}{
		{
			name:    "Mês inválido",
			raw:     domain.RawDataset{"2024": {"Janeiro": values(1, 1, 0), "Janvier": values(1, 1, 0)}},
			wantErr: ErrInvalidMonthName,
			year:    "2024",
			month:   "Janvier",
		},
		{
			name:    "Ano não numérico",
			raw:     domain.RawDataset{"dois mil": {"Janeiro": values(1, 1, 0)}},
			wantErr: ErrInvalidYear,
			year:    "dois mil",
		},
		{
			name:    "Receita negativa",
			raw:     domain.RawDataset{"2024": {"Abril": values(-1, 1, -2)}},
			wantErr: ErrNegativeAmount,
			year:    "2024",
			month:   "Abril",
		},
		{
			name:    "Despesa negativa",
			raw:     domain.RawDataset{"2024": {"Abril": values(1, -1, 2)}},
			wantErr: ErrNegativeAmount,
			year:    "2024",
			month:   "Abril",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Build(tt.raw, nil)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.True(t, errors.Is(err, tt.wantErr))

			var buildErr *BuildError
			require.True(t, errors.As(err, &buildErr))
			assert.Equal(t, tt.year, buildErr.Year)
			assert.Equal(t, tt.month, buildErr.Month)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	store, err := Build(domain.RawDataset{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.DistinctYears())
	assert.Empty(t, store.Filter(domain.AllYears()))
}

func TestStore_DistinctYearsAndFilter(t *testing.T) {
	store, err := Build(sampleDataset(), nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2024}, store.DistinctYears())
	assert.Len(t, store.Filter(domain.AllYears()), 5)

	year2024 := store.Filter(domain.Year(2024))
	require.Len(t, year2024, 3)
	for i, record := range year2024 {
		assert.Equal(t, 2024, record.Year)
		assert.Equal(t, i+1, record.MonthIndex)
	}

	absent := store.Filter(domain.Year(1999))
	assert.NotNil(t, absent)
	assert.Empty(t, absent)
}

func TestStore_FilterReturnsCopies(t *testing.T) {
	store, err := Build(sampleDataset(), nil)
	require.NoError(t, err)

	filtered := store.Filter(domain.Year(2023))
	filtered[0].Revenue = decimal.NewFromInt(-1)

	again := store.Filter(domain.Year(2023))
	assert.True(t, again[0].Revenue.Equal(decimal.NewFromFloat(15600.96)))

	years := store.DistinctYears()
	years[0] = 1900
	assert.Equal(t, []int{2023, 2024}, store.DistinctYears())
}

func TestStore_ValidateSelection(t *testing.T) {
	store, err := Build(sampleDataset(), nil)
	require.NoError(t, err)

	assert.NoError(t, store.ValidateSelection(domain.AllYears()))
	assert.NoError(t, store.ValidateSelection(domain.Year(2023)))

	err = store.ValidateSelection(domain.Year(2030))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownYearSelection))
}

func TestStore_ProfitMismatches(t *testing.T) {
	raw := domain.RawDataset{
		"2024": {
			"Janeiro":   values(100, 40, 60),
			"Fevereiro": values(100, 40, 60.01),
			"Março":     values(100, 40, 50),
		},
	}

	store, err := Build(raw, nil)
	require.NoError(t, err)

	mismatches := store.ProfitMismatches()
	require.Len(t, mismatches, 1)
	assert.Equal(t, 3, mismatches[0].Record.MonthIndex)
	assert.True(t, mismatches[0].Expected.Equal(decimal.NewFromInt(60)))
	assert.True(t, mismatches[0].Diff.Equal(decimal.NewFromInt(10)))

	// o valor armazenado é preservado
	assert.True(t, store.Filter(domain.Year(2024))[2].Profit.Equal(decimal.NewFromInt(50)))
}
