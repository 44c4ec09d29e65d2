// pkg/idempotency/store.go
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pending marks a key whose first request has not finished yet.
const Pending = "pending"

type Store struct {
	rdb        *redis.Client
	pendingTTL time.Duration
	ttl        time.Duration
	prefix     string
}

// NewStore keeps claims for pendingTTL until they complete, and completed results
// for ttl.
func NewStore(rdb *redis.Client, pendingTTL, ttl time.Duration, prefix string) *Store {
	return &Store{rdb: rdb, pendingTTL: pendingTTL, ttl: ttl, prefix: prefix}
}

func (s *Store) Key(key string) string {
	return fmt.Sprintf("idem:%s:%s", s.prefix, key)
}

// Claim reserves key for the caller. When the key is already taken it returns the
// stored value: Pending while the first request runs, its result afterwards.
func (s *Store) Claim(ctx context.Context, key string) (existing string, claimed bool, err error) {
	ok, err := s.rdb.SetNX(ctx, s.Key(key), Pending, s.pendingTTL).Result()
	if err != nil {
		return "", false, err
	}
	if ok {
		return "", true, nil
	}

	value, err := s.rdb.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return Pending, false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, false, nil
}

// Complete records the result of the request that claimed key.
func (s *Store) Complete(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.Key(key), value, s.ttl).Err()
}

// Release drops a claim so the client can retry after a failure.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.Key(key)).Err()
}

func IsPending(value string) bool {
	return value == "" || value == Pending
}
