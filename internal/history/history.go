package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"repse-simulator/internal/kvstore"
	"repse-simulator/internal/model"
)

const (
	// Key is the storage key of the serialized history list.
	Key = "simulator_history"
	// Limit caps the number of retained results.
	Limit = 10
)

// Store keeps the most recent simulation results, newest first.
type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
	mu     sync.Mutex
}

func New(kv kvstore.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the stored history. Missing or unreadable data yields an
// empty list; failures are logged, never returned.
func (s *Store) Load(ctx context.Context) []model.SimulationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) []model.SimulationResult {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("Failed to read history", zap.Error(err))
		}
		return []model.SimulationResult{}
	}
	var list []model.SimulationResult
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("Discarding corrupt history", zap.Error(err))
		return []model.SimulationResult{}
	}
	if list == nil {
		list = []model.SimulationResult{}
	}
	return list
}

// Append prepends result and truncates to Limit entries.
func (s *Store) Append(ctx context.Context, result *model.SimulationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append([]model.SimulationResult{*result}, s.load(ctx)...)
	if len(list) > Limit {
		list = list[:Limit]
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	s.logger.Debug("Saved result to history",
		zap.String("id", result.ID),
		zap.Int("entries", len(list)))
	return nil
}
