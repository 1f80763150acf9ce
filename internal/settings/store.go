package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Store owns the user settings: it loads the durable blob once at startup,
// persists every change back under the same key and fans changes out to
// subscribers. Readers only ever see value snapshots.
type Store struct {
	cache    cache
	strategy retry.Strategy
	key      string

	mu      sync.RWMutex
	current Settings
	subs    []func(Settings)
}

// NewStore creates a settings store backed by the given cache under a fixed key.
func NewStore(cache cache, strategy retry.Strategy, key string) *Store {
	return &Store{
		cache:    cache,
		strategy: strategy,
		key:      key,
		current:  Defaults(),
	}
}

// Load reads the stored blob and merges it over the defaults, so that keys
// missing from older blobs fall back silently. A missing key means first run
// and leaves the defaults in place. A corrupt blob is logged and discarded.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.cache.GetWithRetry(ctx, s.strategy, s.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}

		return err
	}

	merged := Defaults()
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		zlog.Logger.Warn().Err(err).Msg("stored settings blob is corrupt, using defaults")
		return nil
	}

	s.mu.Lock()
	s.current = merged
	s.mu.Unlock()

	return nil
}

// Snapshot returns the current settings by value.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Subscribe registers fn to be called with the new snapshot after every
// change. Subscribers must be registered before the workers start.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Update applies mutate to a copy of the current settings, makes the result
// current, persists it and notifies subscribers. The updated snapshot is
// returned. Persistence failures are logged, not surfaced: the in-memory
// settings stay authoritative for the running session.
func (s *Store) Update(ctx context.Context, mutate func(*Settings)) Settings {
	s.mu.Lock()
	next := s.current
	mutate(&next)
	s.current = next
	subs := make([]func(Settings), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(ctx, next)

	for _, fn := range subs {
		fn(next)
	}

	return next
}

// Reset restores the defaults, persists them and notifies subscribers.
func (s *Store) Reset(ctx context.Context) Settings {
	return s.Update(ctx, func(st *Settings) {
		*st = Defaults()
	})
}

func (s *Store) persist(ctx context.Context, st Settings) {
	body, err := json.Marshal(st)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to marshal settings")
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, s.key, string(body)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to persist settings")
	}
}
