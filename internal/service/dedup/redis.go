package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	drepo "DartWatch/internal/domain/repository"
	applogger "DartWatch/pkg/logger"
)

const keyPrefix = "dartwatch:processed:"

// RedisStore is the durable ProcessedStore backend for cross-invocation
// deduplication. Store errors fail open: a receipt that cannot be checked
// is treated as unseen, trading a possible duplicate alert for never
// silently dropping one.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	l      *applogger.Logger
}

// NewRedisStore connects to Redis and returns a ProcessedStore.
func NewRedisStore(addr, password string, db int, ttl time.Duration, l *applogger.Logger) (drepo.ProcessedStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl, l: l}, nil
}

func (s *RedisStore) Seen(ctx context.Context, receiptNo string) bool {
	n, err := s.client.Exists(ctx, keyPrefix+receiptNo).Result()
	if err != nil {
		if s.l != nil {
			s.l.Error("redis seen check failed", applogger.String("rcept_no", receiptNo), applogger.Error(err))
		}
		return false
	}
	return n > 0
}

func (s *RedisStore) Mark(ctx context.Context, receiptNo string) {
	if err := s.client.Set(ctx, keyPrefix+receiptNo, 1, s.ttl).Err(); err != nil {
		if s.l != nil {
			s.l.Error("redis mark failed", applogger.String("rcept_no", receiptNo), applogger.Error(err))
		}
	}
}

func (s *RedisStore) Count(ctx context.Context) int {
	var count int
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		if s.l != nil {
			s.l.Error("redis count scan failed", applogger.Error(err))
		}
	}
	return count
}
