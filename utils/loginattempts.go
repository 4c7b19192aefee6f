package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginAttemptStore tracks failed logins in Redis with a TTL, so the
// counter survives restarts and is shared across instances.
type LoginAttemptStore struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginAttemptStore connects to Redis at addr. Five failures within
// fifteen minutes lock the account out until the window expires.
func NewLoginAttemptStore(addr string) *LoginAttemptStore {
	return &LoginAttemptStore{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		maxAttempts: 5,
		window:      15 * time.Minute,
	}
}

func (s *LoginAttemptStore) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// Allowed reports whether the account may attempt a login. Redis being
// down fails open: a broken limiter must not lock everyone out.
func (s *LoginAttemptStore) Allowed(ctx context.Context, email string) bool {
	count, err := s.client.Get(ctx, s.key(email)).Int()
	if err != nil {
		return true
	}
	return count < s.maxAttempts
}

// RecordFailure counts one failed login and refreshes the window
func (s *LoginAttemptStore) RecordFailure(ctx context.Context, email string) error {
	key := s.key(email)
	if err := s.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.window).Err()
}

// Reset clears the counter after a successful login
func (s *LoginAttemptStore) Reset(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.key(email)).Err()
}
