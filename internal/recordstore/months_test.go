package recordstore

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

func TestDefaultMonthTable(t *testing.T) {
	table := DefaultMonthTable()

	for i, name := range PortugueseMonths {
		index, ok := table.Index(name)
		require.True(t, ok, name)
		assert.Equal(t, i+1, index)
		assert.Equal(t, name, table.Name(i+1))
	}

	_, ok := table.Index("January")
	assert.False(t, ok)
	assert.Equal(t, "", table.Name(0))
	assert.Equal(t, "", table.Name(13))
}

func TestNewMonthTable_Invalid(t *testing.T) {
	_, err := NewMonthTable([]string{"Janeiro"})
	assert.True(t, errors.Is(err, ErrInvalidMonthList))

	names := append([]string{}, PortugueseMonths...)
	names[11] = "janeiro"
	_, err = NewMonthTable(names)
	assert.True(t, errors.Is(err, ErrInvalidMonthList))
}

func TestBuild_CustomMonthTable(t *testing.T) {
	table, err := NewMonthTable([]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	})
	require.NoError(t, err)

	store, err := Build(domain.RawDataset{"2024": {"march": values(1, 0, 1)}}, table)
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "March", records[0].MonthName)
	assert.Equal(t, "Mar/2024", records[0].PeriodLabel)

	_, err = Build(domain.RawDataset{"2024": {"Março": values(1, 0, 1)}}, table)
	assert.True(t, errors.Is(err, ErrInvalidMonthName))
}

func TestMonthTableFor(t *testing.T) {
	table, err := MonthTableFor(nil)
	require.NoError(t, err)
	assert.Equal(t, "Março", table.Name(3))

	table, err = MonthTableFor([]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	})
	require.NoError(t, err)
	assert.Equal(t, "March", table.Name(3))

	_, err = MonthTableFor([]string{"Janeiro", "Fevereiro"})
	assert.True(t, errors.Is(err, ErrInvalidMonthList))
}
