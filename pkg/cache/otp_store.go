package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix = "juntaplay:otp:"
	otpTTL       = 15 * time.Minute
)

var ErrOTPNotFound = errors.New("otp not found or expired")

// OTPStore keeps short-lived verification codes. Redis-backed when a client
// is available, otherwise an in-process map (single instance only).
type OTPStore struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]localOTP
}

type localOTP struct {
	code      string
	expiresAt time.Time
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{
		rdb:   rdb,
		local: make(map[string]localOTP),
	}
}

func (s *OTPStore) Put(ctx context.Context, email, code string) error {
	if s.rdb != nil {
		return s.rdb.Set(ctx, otpKeyPrefix+email, code, otpTTL).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[email] = localOTP{code: code, expiresAt: time.Now().Add(otpTTL)}
	return nil
}

// Verify checks the code and consumes it on success.
func (s *OTPStore) Verify(ctx context.Context, email, code string) error {
	if s.rdb != nil {
		stored, err := s.rdb.Get(ctx, otpKeyPrefix+email).Result()
		if err == redis.Nil {
			return ErrOTPNotFound
		}
		if err != nil {
			return err
		}
		if stored != code {
			return ErrOTPNotFound
		}
		return s.rdb.Del(ctx, otpKeyPrefix+email).Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.local[email]
	if !ok || time.Now().After(entry.expiresAt) || entry.code != code {
		return ErrOTPNotFound
	}
	delete(s.local, email)
	return nil
}
