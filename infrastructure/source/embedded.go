package source

import (
	"context"
	_ "embed"

	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

//go:embed seed/oficina.json
var oficinaSeed []byte

// EmbeddedSource lê o conjunto de dados da oficina embutido no binário
type EmbeddedSource struct{}

func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Name() string {
	return config.SeedSourceEmbedded
}

func (s *EmbeddedSource) Load(_ context.Context) (domain.RawDataset, error) {
	return DecodeJSON(oficinaSeed)
}
