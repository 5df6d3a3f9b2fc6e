package source

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// DatasetLoader é implementado pelo repositório de registros mensais
type DatasetLoader interface {
	LoadAll(ctx context.Context) (domain.RawDataset, error)
}

// DatabaseSource lê os registros mensais do banco uma única vez na inicialização
type DatabaseSource struct {
	loader  DatasetLoader
	timeout time.Duration
}

func NewDatabaseSource(loader DatasetLoader, timeout time.Duration) *DatabaseSource {
	return &DatabaseSource{
		loader:  loader,
		timeout: timeout,
	}
}

func (s *DatabaseSource) Name() string {
	return config.SeedSourcePostgres
}

func (s *DatabaseSource) Load(ctx context.Context) (domain.RawDataset, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	dataset, err := s.loader.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "source: error loading records from database")
	}

	return dataset, nil
}
