package cart

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix is the fixed key namespace carts live under.
const keyPrefix = "canteen:cart:"

// RedisStore keeps carts in Redis as JSON blobs, one key per user.
// Last writer wins; concurrent sessions are not coordinated.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

func (s *RedisStore) Get(ctx context.Context, userID uint) (Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(data), nil
}

func (s *RedisStore) Set(ctx context.Context, userID uint, c Cart) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(userID), data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, cartKey(userID)).Err()
}
