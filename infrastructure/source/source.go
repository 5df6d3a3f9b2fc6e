// Package source carrega o mapeamento bruto de registros na inicialização.
package source

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// ErrUnknownKind indica um tipo de fonte não suportado
var ErrUnknownKind = errors.New("unknown record source")

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

// RecordSource fornece o mapeamento ano -> mês -> valores, lido uma única vez
type RecordSource interface {
	Load(ctx context.Context) (domain.RawDataset, error)
	Name() string
}

// New cria a fonte de arquivo ou a embutida.
// A fonte postgres depende de uma conexão e é criada com NewDatabaseSource.
func New(cfg config.Seed) (RecordSource, error) {
	switch cfg.Source {
	case config.SeedSourceEmbedded, "":
		return NewEmbeddedSource(), nil
	case config.SeedSourceFile:
		return NewFileSource(cfg.File), nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "source: %q", cfg.Source)
}

// Números são lidos como json.Number para não perder precisão nos centavos
var jsonDecoder = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var decimalType = reflect.TypeOf(decimal.Decimal{})

// DecodeJSON interpreta um documento JSON no formato ano -> mês -> {receita, despesas, lucro}
func DecodeJSON(data []byte) (domain.RawDataset, error) {
	var raw map[string]any
	if err := jsonDecoder.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "source: invalid json document")
	}
	return Decode(raw)
}

// Decode converte um mapa genérico em RawDataset.
// Campos desconhecidos ou ausentes são rejeitados.
func Decode(raw map[string]any) (domain.RawDataset, error) {
	dataset := domain.RawDataset{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  DecimalHookFunc(),
		ErrorUnused: true,
		ErrorUnset:  true,
		Result:      &dataset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "source: error creating decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "source: error decoding records")
	}

	return dataset, nil
}

// DecimalHookFunc converte números, textos e json.Number em decimal.Decimal
func DecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch value := data.(type) {
		case decimal.Decimal:
			return value, nil
		case json.Number:
			return decimal.NewFromString(value.String())
		case string:
			return decimal.NewFromString(strings.TrimSpace(value))
		case float64:
			return decimal.NewFromFloat(value), nil
		case float32:
			return decimal.NewFromFloat32(value), nil
		case int:
			return decimal.NewFromInt(int64(value)), nil
		case int64:
			return decimal.NewFromInt(value), nil
		case int32:
			return decimal.NewFromInt32(value), nil
		}

		return data, nil
	}
}
