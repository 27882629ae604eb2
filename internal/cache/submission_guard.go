package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "local-events/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// pendingMarker is stored under a claimed key until the event id is known.
const pendingMarker = "pending"

type SubmissionGuard interface {
	// Claim reserves key for a new submission. When key was already claimed it
	// returns the event id recorded for it, or ErrSubmissionInProgress if the
	// first submission has not completed yet.
	Claim(ctx context.Context, key string) (eventID string, claimed bool, err error)
	// Complete records the event created for a claimed key.
	Complete(ctx context.Context, key string, eventID string) error
	// Release drops a claim whose submission did not produce an event.
	Release(ctx context.Context, key string) error
}

type RedisSubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSubmissionGuard(client *redis.Client, ttl time.Duration) SubmissionGuard {
	return &RedisSubmissionGuard{
		client: client,
		ttl:    ttl,
	}
}

func (g *RedisSubmissionGuard) getKey(key string) string {
	return fmt.Sprintf("submission:%s", key)
}

// claimScript sets the pending marker if the key is free, otherwise returns
// what is already stored.
var claimScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[1])
	if current then
		return {0, current}
	end
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
	return {1, ''}
`)

func (g *RedisSubmissionGuard) Claim(ctx context.Context, key string) (string, bool, error) {
	result, err := claimScript.Run(ctx, g.client, []string{g.getKey(key)}, pendingMarker, g.ttl.Milliseconds()).Result()
	if err != nil {
		return "", false, err
	}

	resSlice, ok := result.([]interface{})
	if !ok || len(resSlice) != 2 {
		return "", false, errors.New("unexpected claim result")
	}
	code, _ := resSlice[0].(int64)
	current, _ := resSlice[1].(string)

	switch {
	case code == 1:
		return "", true, nil
	case current == pendingMarker:
		return "", false, apperrors.ErrSubmissionInProgress
	default:
		return current, false, nil
	}
}

func (g *RedisSubmissionGuard) Complete(ctx context.Context, key string, eventID string) error {
	return g.client.Set(ctx, g.getKey(key), eventID, g.ttl).Err()
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.getKey(key)).Err()
}

// NoopSubmissionGuard lets every submission through.
type NoopSubmissionGuard struct{}

func NewNoopSubmissionGuard() SubmissionGuard {
	return NoopSubmissionGuard{}
}

func (NoopSubmissionGuard) Claim(context.Context, string) (string, bool, error) {
	return "", true, nil
}

func (NoopSubmissionGuard) Complete(context.Context, string, string) error { return nil }

func (NoopSubmissionGuard) Release(context.Context, string) error { return nil }
