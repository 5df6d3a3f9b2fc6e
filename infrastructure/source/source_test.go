package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
	"github.com/vfg2006/oficina-dashboard-api/internal/recordstore"
)

func TestEmbeddedSource_SeedInvariants(t *testing.T) {
	raw, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	store, err := recordstore.Build(raw, recordstore.DefaultMonthTable())
	require.NoError(t, err)

	assert.Equal(t, 31, store.Len())
	assert.Equal(t, []int{2023, 2024, 2025}, store.DistinctYears())
	assert.Empty(t, store.ProfitMismatches())

	revenue := decimal.Zero
	profit := decimal.Zero
	for _, record := range store.Records() {
		revenue = revenue.Add(record.Revenue)
		profit = profit.Add(record.Profit)
	}
	assert.Equal(t, "303941.62", revenue.StringFixed(2))
	assert.Equal(t, "147442.18", profit.StringFixed(2))

	jan := raw["2023"]["Janeiro"]
	assert.Equal(t, "15600.96", jan.Revenue.StringFixed(2))
	assert.Equal(t, "9140.90", jan.Expenses.StringFixed(2))
	assert.Equal(t, "6460.06", jan.Profit.StringFixed(2))
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{
		"2024": {
			"Janeiro": {"receita": 100.10, "despesas": "40", "lucro": 60.1}
		}
	}`)

	raw, err := DecodeJSON(data)
	require.NoError(t, err)

	values := raw["2024"]["Janeiro"]
	assert.True(t, values.Revenue.Equal(decimal.RequireFromString("100.10")))
	assert.True(t, values.Expenses.Equal(decimal.NewFromInt(40)))
	assert.True(t, values.Profit.Equal(decimal.RequireFromString("60.1")))
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"2024": `},
		{name: "missing field", data: `{"2024": {"Janeiro": {"receita": 1, "despesas": 1}}}`},
		{name: "unknown field", data: `{"2024": {"Janeiro": {"receita": 1, "despesas": 1, "lucro": 0, "impostos": 2}}}`},
		{name: "non numeric amount", data: `{"2024": {"Janeiro": {"receita": "muito", "despesas": 1, "lucro": 0}}}`},
		{name: "month is not an object", data: `{"2024": {"Janeiro": 10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeJSON([]byte(tt.data))
			assert.Error(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestDecimalHookFunc(t *testing.T) {
	hook := DecimalHookFunc()
	target := decimalType

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "float64", input: 12.5, want: "12.5"},
		{name: "int", input: 7, want: "7"},
		{name: "int64", input: int64(9), want: "9"},
		{name: "string with spaces", input: " 3.25 ", want: "3.25"},
		{name: "decimal", input: decimal.RequireFromString("1.01"), want: "1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := hook(nil, target, tt.input)
			require.NoError(t, err)
			require.IsType(t, decimal.Decimal{}, out)
			assert.True(t, out.(decimal.Decimal).Equal(decimal.RequireFromString(tt.want)))
		})
	}

	t.Run("other target types pass through", func(t *testing.T) {
		out, err := hook(nil, nil, "Janeiro")
		require.NoError(t, err)
		assert.Equal(t, "Janeiro", out)
	})
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oficina.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2025": {"Julho": {"receita": 10, "despesas": 4, "lucro": 6}}}`), 0o600))

	src := NewFileSource(path)
	assert.Equal(t, "file:"+path, src.Name())

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, raw, "2025")
	assert.True(t, raw["2025"]["Julho"].Profit.Equal(decimal.NewFromInt(6)))

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew(t *testing.T) {
	src, err := New(config.Seed{Source: config.SeedSourceEmbedded})
	require.NoError(t, err)
	assert.Equal(t, config.SeedSourceEmbedded, src.Name())

	src, err = New(config.Seed{Source: config.SeedSourceFile, File: "/tmp/x.json"})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = New(config.Seed{Source: config.SeedSourcePostgres})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

type stubLoader struct {
	deadline bool
	err      error
}

func (s *stubLoader) LoadAll(ctx context.Context) (domain.RawDataset, error) {
	_, s.deadline = ctx.Deadline()
	if s.err != nil {
		return nil, s.err
	}
	return domain.RawDataset{"2024": {}}, nil
}

func TestDatabaseSource(t *testing.T) {
	loader := &stubLoader{}
	src := NewDatabaseSource(loader, time.Second)

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, raw, "2024")
	assert.True(t, loader.deadline)
	assert.Equal(t, config.SeedSourcePostgres, src.Name())

	failing := &stubLoader{err: errors.New("timeout")}
	_, err = NewDatabaseSource(failing, 0).Load(context.Background())
	assert.ErrorContains(t, err, "timeout")
	assert.False(t, failing.deadline)
}
