package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repse-simulator/internal/kvstore"
	"repse-simulator/internal/model"
)

func result(id string, score int) *model.SimulationResult {
	return &model.SimulationResult{
		ID:             id,
		Date:           time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		InspectionType: model.InspectionScheduled,
		Profile:        model.ProfileContractor,
		Score:          score,
		Infractions:    []model.Infraction{},
	}
}

func TestLoadEmpty(t *testing.T) {
	s := New(kvstore.NewMemory(), nil)
	list := s.Load(context.Background())
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestAppendMostRecentFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	s := New(kvstore.NewMemory(), nil)
	for i := 0; i < Limit+3; i++ {
		require.NoError(t, s.Append(ctx, result(fmt.Sprintf("r%d", i), i)))
	}

	list := s.Load(ctx)
	require.Len(t, list, Limit)
	assert.Equal(t, "r12", list[0].ID)
	assert.Equal(t, "r3", list[Limit-1].ID)
	assert.Equal(t, 12, list[0].Score)
	assert.True(t, list[0].Date.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestLoadCorruptYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, Key, "{not json"))
	s := New(kv, nil)

	assert.Empty(t, s.Load(ctx))
	require.NoError(t, s.Append(ctx, result("fresh", 50)))
	list := s.Load(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "fresh", list[0].ID)
}

type failingStore struct{ kvstore.Store }

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("boom") }
func (failingStore) Set(context.Context, string, string) error   { return errors.New("boom") }

func TestReadFailureIsSwallowed(t *testing.T) {
	s := New(failingStore{}, nil)
	assert.Empty(t, s.Load(context.Background()))
	assert.Error(t, s.Append(context.Background(), result("x", 1)))
}
