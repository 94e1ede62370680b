package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/JC2405/medicitas-client/models"
)

// RedisConfig holds the configuration for the Redis-backed session store.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string        // namespace for the session keys (default "medicitas")
	TTL       time.Duration // 0 means the session entries never expire
}

// RedisStore keeps the session entries in Redis, for host apps that share
// session state with other processes instead of the local filesystem.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis and pings it to ensure the connection is
// established.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return NewRedisStoreWithClient(client, cfg), nil
}

// NewRedisStoreWithClient wraps an already-connected client.
func NewRedisStoreWithClient(client *redis.Client, cfg RedisConfig) *RedisStore {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "medicitas"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: cfg.TTL}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) SaveToken(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key(TokenKey), token, s.ttl).Err()
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key(TokenKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return token, err
}

func (s *RedisStore) SaveUser(ctx context.Context, user *models.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(UserKey), data, s.ttl).Err()
}

func (s *RedisStore) User(ctx context.Context) (*models.UserProfile, error) {
	data, err := s.client.Get(ctx, s.key(UserKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var user models.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key(TokenKey), s.key(UserKey)).Err()
}

// Close releases the underlying client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
