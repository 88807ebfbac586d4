package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// RedisStore keeps overrides in one hash, field = week key, value = person id.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Get(ctx context.Context, week entity.WeekKey) (int, bool, error) {
	value, err := s.client.HGet(ctx, s.key, string(week)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get override: %w", err)
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

func (s *RedisStore) Set(ctx context.Context, week entity.WeekKey, personID int) error {
	if err := s.client.HSet(ctx, s.key, string(week), strconv.Itoa(personID)).Err(); err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}
	return nil
}

// SetMany writes the whole batch with a single HSET.
func (s *RedisStore) SetMany(ctx context.Context, overrides map[entity.WeekKey]int) error {
	if len(overrides) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(overrides)*2)
	for week, id := range overrides {
		values = append(values, string(week), strconv.Itoa(id))
	}
	if err := s.client.HSet(ctx, s.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to import overrides: %w", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, week entity.WeekKey) error {
	if err := s.client.HDel(ctx, s.key, string(week)).Err(); err != nil {
		return fmt.Errorf("failed to remove override: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) (map[entity.WeekKey]int, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	overrides := make(map[entity.WeekKey]int, len(raw))
	for week, value := range raw {
		if id, err := strconv.Atoi(value); err == nil {
			overrides[entity.WeekKey(week)] = id
		}
	}
	return overrides, nil
}
