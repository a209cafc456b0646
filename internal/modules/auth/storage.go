package auth

import (
	"context"
	"sync"
	"time"

	redispkg "github.com/dailyexamresult/admin/internal/pkg/redis"
)

// Storage is a string key/value space scoped by browser session id.
type Storage interface {
	Get(ctx context.Context, sid, key string) (string, bool, error)
	Set(ctx context.Context, sid, key, value string) error
	Del(ctx context.Context, sid string, keys ...string) error
}

// MemoryStorage keeps sessions in process memory. Values live until deleted.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, sid, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[sid][key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, sid, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.data[sid]
	if !ok {
		bucket = make(map[string]string)
		m.data[sid] = bucket
	}
	bucket[key] = value
	return nil
}

func (m *MemoryStorage) Del(_ context.Context, sid string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket, ok := m.data[sid]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(bucket, k)
	}
	if len(bucket) == 0 {
		delete(m.data, sid)
	}
	return nil
}

// RedisStorage keeps sessions in Redis under admin:session:<sid>:<key>.
type RedisStorage struct {
	client *redispkg.Client
	ttl    time.Duration
}

// NewRedisStorage returns a Redis backed Storage. ttl <= 0 disables expiry.
func NewRedisStorage(client *redispkg.Client, ttl time.Duration) *RedisStorage {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStorage{client: client, ttl: ttl}
}

func redisKey(sid, key string) string { return "admin:session:" + sid + ":" + key }

func (r *RedisStorage) Get(ctx context.Context, sid, key string) (string, bool, error) {
	return r.client.Get(ctx, redisKey(sid, key))
}

func (r *RedisStorage) Set(ctx context.Context, sid, key, value string) error {
	return r.client.Set(ctx, redisKey(sid, key), value, r.ttl)
}

func (r *RedisStorage) Del(ctx context.Context, sid string, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = redisKey(sid, k)
	}
	return r.client.Del(ctx, full...)
}
