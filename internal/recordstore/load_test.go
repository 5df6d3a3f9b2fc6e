package recordstore

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/source/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRecordSource(ctrl)

	src.EXPECT().Load(gomock.Any()).Return(sampleDataset(), nil)

	store, err := Load(context.Background(), src, DefaultMonthTable())
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, []int{2023, 2024}, store.DistinctYears())
}

func TestLoad_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRecordSource(ctrl)

	sourceErr := errors.New("connection refused")
	src.EXPECT().Load(gomock.Any()).Return(nil, sourceErr)

	store, err := Load(context.Background(), src, DefaultMonthTable())
	assert.ErrorIs(t, err, sourceErr)
	assert.Nil(t, store)
}

func TestLoad_BuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRecordSource(ctrl)

	raw := sampleDataset()
	raw["2024"]["Marco Zero"] = values(1, 1, 0)
	src.EXPECT().Load(gomock.Any()).Return(raw, nil)

	store, err := Load(context.Background(), src, DefaultMonthTable())
	assert.ErrorIs(t, err, ErrInvalidMonthName)
	assert.Nil(t, store)
}
