package source

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

// FileSource lê o conjunto de dados de um arquivo JSON local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return config.SeedSourceFile + ":" + s.path
}

func (s *FileSource) Load(_ context.Context) (domain.RawDataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: error reading %s", s.path)
	}
	return DecodeJSON(data)
}
