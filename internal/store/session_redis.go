package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/co-script/internal/logger"
)

const revokedSessionPrefix = "coscript:revoked:"

type redisSessionStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionStore connects to the Redis instance at url
// (redis://[user:pass@]host:port/db).
func NewRedisSessionStore(ctx context.Context, url string, log *logger.Logger) (SessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSessionStore").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("func", "NewRedisSessionStore").Msg("connected to redis successfully")

	return &redisSessionStore{client: client, logger: log}, nil
}

// Revoke marks sessionID as logged out for ttl. Non-positive ttl means the
// token is already expired and nothing is stored.
func (s *redisSessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedSessionPrefix+sessionID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Revoke").Msg("error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedSessionPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("error checking revoked session: %w", err)
	}
	return n > 0, nil
}

func (s *redisSessionStore) Close() error {
	return s.client.Close()
}

// memorySessionStore keeps revocations in process memory. It is used when no
// Redis URL is configured.
type memorySessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memorySessionStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
	s.revoked[sessionID] = now.Add(ttl)
	return nil
}

func (s *memorySessionStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[sessionID]
	return ok && s.now().Before(until), nil
}

func (s *memorySessionStore) Close() error {
	return nil
}
