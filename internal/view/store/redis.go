package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/lookup"
	"cnpj-lookup/internal/view"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON document under prefix+id with a
// sliding TTL.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (view.State, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return view.State{}, errors.NewSessionNotFoundError(id)
		}
		return view.State{}, errors.NewSessionStoreError(err)
	}

	var s view.State
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return view.State{}, errors.NewSessionStoreError(fmt.Errorf("decode session %s: %w", id, err))
	}
	if s.Shareholders == nil {
		s.Shareholders = []lookup.Shareholder{}
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, s view.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.NewSessionStoreError(fmt.Errorf("encode session %s: %w", id, err))
	}
	if err := r.client.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}
