package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/item"
)

// keyPrefix namespaces slot keys in a shared Redis instance.
const keyPrefix = "framecraft:"

// RedisSlot persists the composition as a single Redis string key.
// Redis serializes concurrent SETs on one key, so overlapping saves
// degrade to last-write-wins, which the persistence contract permits.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// RedisConfig configures a Redis-backed slot.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
	Slot     string // slot name, DefaultSlot if empty
}

// NewRedisSlot connects to Redis and verifies the connection.
func NewRedisSlot(ctx context.Context, cfg RedisConfig) (*RedisSlot, error) {
	slot := cfg.Slot
	if slot == "" {
		slot = DefaultSlot
	}
	if err := apperrors.ValidateSlotName(slot); err != nil {
		return nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &RedisSlot{client: client, key: keyPrefix + slot}, nil
}

// Save overwrites the slot key with the encoded composition.
// No TTL: the slot lives until explicitly overwritten or deleted.
func (s *RedisSlot) Save(ctx context.Context, items []item.Item) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	return nil
}

// Load reads the slot key. A missing key or an unparseable payload reads
// as "no composition".
func (s *RedisSlot) Load(ctx context.Context) ([]item.Item, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", s.key, err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

// Close closes the underlying Redis client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}

var _ Slot = (*RedisSlot)(nil)
