package redis

import (
	"github.com/cafebazaar/majority-vote/pkg/majority"

	"github.com/go-redis/redis"
)

type redisSource struct {
	client  *redis.Client
	address string
}

func New(client *redis.Client, address string) majority.Source {
	return &redisSource{
		client:  client,
		address: address,
	}
}

func (r *redisSource) Address() string {
	return r.address
}

func (r *redisSource) Sequence(key string) ([][]byte, error) {
	if r.client == nil {
		return nil, majority.ErrClosed
	}

	exists, err := r.client.Exists(key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, majority.ErrNotFound
	}

	values, err := r.client.LRange(key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	result := make([][]byte, len(values))
	for i, value := range values {
		result[i] = []byte(value)
	}

	return result, nil
}

func (r *redisSource) Len(key string) (int64, error) {
	if r.client == nil {
		return 0, majority.ErrClosed
	}

	exists, err := r.client.Exists(key).Result()
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		return 0, majority.ErrNotFound
	}

	return r.client.LLen(key).Result()
}

func (r *redisSource) Close() error {
	if r.client != nil {
		err := r.client.Close()
		r.client = nil

		return err
	}

	return nil
}
