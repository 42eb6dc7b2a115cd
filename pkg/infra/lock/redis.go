package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

const (
	defaultLockTTL   = 30 * time.Second
	defaultRetryWait = 50 * time.Millisecond
	keyPrefix        = "refacto:"
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every replica using the same Redis.
type RedisLocker struct {
	client    redis.UniversalClient
	ttl       time.Duration
	retryWait time.Duration
}

var _ interfaces.Locker = (*RedisLocker)(nil)

type RedisOption func(*RedisLocker)

// WithLockTTL sets how long a lock survives a crashed holder.
func WithLockTTL(ttl time.Duration) RedisOption {
	return func(x *RedisLocker) {
		x.ttl = ttl
	}
}

func WithRetryWait(wait time.Duration) RedisOption {
	return func(x *RedisLocker) {
		x.retryWait = wait
	}
}

func NewRedisLocker(client redis.UniversalClient, options ...RedisOption) *RedisLocker {
	locker := &RedisLocker{
		client:    client,
		ttl:       defaultLockTTL,
		retryWait: defaultRetryWait,
	}
	for _, opt := range options {
		opt(locker)
	}
	return locker
}

func (x *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := keyPrefix + "lock:" + key
	token := uuid.NewString()

	for {
		ok, err := x.client.SetNX(ctx, lockKey, token, x.ttl).Result()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to acquire lock", goerr.V("key", key))
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "gave up waiting for lock", goerr.V("key", key))
		case <-time.After(x.retryWait):
		}
	}

	return func() {
		// Release must run even if the caller's context is already done.
		releaseCtx := context.WithoutCancel(ctx)
		if err := releaseScript.Run(releaseCtx, x.client, []string{lockKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			logging.From(ctx).Warn("failed to release lock", "key", key, "error", err)
		}
	}, nil
}

// RedisDeliveryGuard claims delivery IDs with SET NX EX.
type RedisDeliveryGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ interfaces.DeliveryGuard = (*RedisDeliveryGuard)(nil)

func NewRedisDeliveryGuard(client redis.UniversalClient, ttl time.Duration) *RedisDeliveryGuard {
	return &RedisDeliveryGuard{client: client, ttl: ttl}
}

func deliveryKey(id types.DeliveryID) string {
	return keyPrefix + "delivery:" + string(id)
}

func (x *RedisDeliveryGuard) Claim(ctx context.Context, id types.DeliveryID) (bool, error) {
	ok, err := x.client.SetNX(ctx, deliveryKey(id), "1", x.ttl).Result()
	if err != nil {
		return false, goerr.Wrap(err, "failed to claim delivery", goerr.V("deliveryID", id))
	}
	return ok, nil
}

func (x *RedisDeliveryGuard) Release(ctx context.Context, id types.DeliveryID) error {
	if err := x.client.Del(ctx, deliveryKey(id)).Err(); err != nil {
		return goerr.Wrap(err, "failed to release delivery", goerr.V("deliveryID", id))
	}
	return nil
}
