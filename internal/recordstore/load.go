package recordstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// Loader fornece o mapeamento bruto ano -> mês -> valores
type Loader interface {
	Load(ctx context.Context) (domain.RawDataset, error)
}

// Load lê o conjunto de dados uma única vez e constrói o Store.
// Qualquer falha aborta a inicialização.
func Load(ctx context.Context, loader Loader, months *MonthTable) (*Store, error) {
	raw, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "recordstore: error loading dataset")
	}

	return Build(raw, months)
}
