// Package idempotency stores booking submission outcomes in Redis so a
// retried request replays its original result instead of double-booking.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    cfg.KeyTTL,
	}
}

func (s *RedisStore) Begin(ctx context.Context, key uuid.UUID, requestHash string) (*commands.IdempotencyState, error) {
	fresh := commands.IdempotencyState{
		Status:      commands.IdempotencyProcessing,
		RequestHash: requestHash,
	}
	payload, err := json.Marshal(fresh)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode idempotency state", err, infra.KindCacheFailure)
	}

	claimed, err := s.client.SetNX(ctx, s.key(key), payload, s.ttl).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim idempotency key", err, infra.KindCacheFailure)
	}
	if claimed {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Key expired between SetNX and Get; treat as a fresh claim.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read idempotency state", err, infra.KindCacheFailure)
	}

	var state commands.IdempotencyState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, infra.WrapRepoErr("failed to decode idempotency state", err, infra.KindCacheFailure)
	}
	return &state, nil
}

func (s *RedisStore) Complete(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return infra.WrapRepoErr("failed to read idempotency state", err, infra.KindCacheFailure)
	}

	var state commands.IdempotencyState
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &state); err != nil {
			return infra.WrapRepoErr("failed to decode idempotency state", err, infra.KindCacheFailure)
		}
	}
	state.Status = commands.IdempotencyCompleted
	state.BookingID = &bookingID

	payload, err := json.Marshal(state)
	if err != nil {
		return infra.WrapRepoErr("failed to encode idempotency state", err, infra.KindCacheFailure)
	}
	var ttl time.Duration = redis.KeepTTL
	if len(raw) == 0 {
		ttl = s.ttl
	}
	if err := s.client.Set(ctx, s.key(key), payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store idempotency state", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisStore) key(key uuid.UUID) string {
	return "admission:idempotency:" + key.String()
}
