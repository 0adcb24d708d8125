package ledger

import (
	"errors"
	"time"
)

type StoreMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// ObservedStore reports every read to StoreMetrics. Absent keys are part of
// normal operation and are recorded as successes.
type ObservedStore struct {
	store   Store
	metrics StoreMetrics
}

func NewObservedStore(store Store, metrics StoreMetrics) *ObservedStore {
	return &ObservedStore{
		store:   store,
		metrics: metrics,
	}
}

func (s *ObservedStore) Get(key []byte) (value []byte, err error) {
	started := time.Now()
	defer func() {
		observed := err
		if errors.Is(err, ErrNotFound) {
			observed = nil
		}
		s.metrics.Observe("get", observed, started)
	}()
	return s.store.Get(key)
}
