// pkg/idempotency/store_test.go
package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	s := NewStore(redis.NewClient(&redis.Options{Addr: "localhost:0"}), time.Minute, time.Hour, "order")
	assert.Equal(t, "idem:order:abc-123", s.Key("abc-123"))
}

func TestIsPending(t *testing.T) {
	assert.True(t, IsPending(""))
	assert.True(t, IsPending(Pending))
	assert.False(t, IsPending("665f1c2e8b3e4a0012345678"))
}

func TestClaimUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	s := NewStore(rdb, time.Minute, time.Hour, "order")

	existing, claimed, err := s.Claim(context.Background(), "abc-123")
	assert.Error(t, err)
	assert.False(t, claimed)
	assert.Empty(t, existing)
}
