package storage

import (
	"github.com/maypok86/otter/v2"
	"time"
)

// SeenStore keeps identities of already-posted messages for the lifetime of
// the process. It lives in memory only; a restart starts from an empty set.
// Capacity and TTL are optional bounds for very long uptimes, zero keeps the
// set unbounded.
type SeenStore struct {
	outer *otter.Cache[string, struct{}]
}

func NewSeenStore(capacity int, ttl time.Duration) *SeenStore {
	opts := &otter.Options[string, struct{}]{}
	if capacity > 0 {
		opts.MaximumSize = capacity
	}
	if ttl > 0 {
		opts.ExpiryCalculator = otter.ExpiryCreating[string, struct{}](ttl)
	}

	return &SeenStore{outer: otter.Must(opts)}
}

func (s *SeenStore) Add(key string) {
	s.outer.Set(key, struct{}{})
}

func (s *SeenStore) Has(key string) bool {
	_, ok := s.outer.GetIfPresent(key)
	return ok
}

func (s *SeenStore) Len() int {
	return s.outer.EstimatedSize()
}
