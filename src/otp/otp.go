// Package otp issues and checks one-time email verification codes kept in Redis.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrExpired          = errors.New("verification code expired or not requested")
	ErrMismatch         = errors.New("verification code does not match")
	ErrTooManyAttempts  = errors.New("too many attempts, request a new code")
	ErrStoreUnavailable = errors.New("verification store unavailable")
)

type Store struct {
	rdb         redis.Cmdable
	ttl         time.Duration
	maxAttempts int64
	generate    func() (string, error)
}

func NewStore(rdb *redis.Client, ttl time.Duration, maxAttempts int) *Store {
	s := &Store{ttl: ttl, maxAttempts: int64(maxAttempts), generate: Generate}
	if rdb != nil {
		s.rdb = rdb
	}
	return s
}

func codeKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

func attemptsKey(email string) string {
	return codeKey(email) + ":attempts"
}

// Generate returns a uniformly random 6-digit code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue stores a fresh code for email, replacing any previous one and resetting attempts.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	if s.rdb == nil {
		return "", ErrStoreUnavailable
	}
	code, err := s.generate()
	if err != nil {
		return "", err
	}
	pipe := s.rdb.TxPipeline()
	pipe.SetEx(ctx, codeKey(email), code, s.ttl)
	pipe.Del(ctx, attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return code, nil
}

// Verify consumes the code on success. Each failure counts toward maxAttempts, after
// which the code is deleted.
func (s *Store) Verify(ctx context.Context, email, code string) error {
	if s.rdb == nil {
		return ErrStoreUnavailable
	}
	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrExpired
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1 {
		s.rdb.Del(ctx, codeKey(email), attemptsKey(email))
		return nil
	}
	attempts, err := s.rdb.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if attempts == 1 {
		s.rdb.Expire(ctx, attemptsKey(email), s.ttl)
	}
	if attempts >= s.maxAttempts {
		s.rdb.Del(ctx, codeKey(email), attemptsKey(email))
		return ErrTooManyAttempts
	}
	return ErrMismatch
}
