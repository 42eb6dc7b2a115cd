package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/m-mizutani/gt"
	"github.com/redis/go-redis/v9"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/infra/lock"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

// testMutualExclusion checks that at most one holder is inside the critical
// section at any time.
func testMutualExclusion(t *testing.T, locker interfaces.Locker) {
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		inside  atomic.Int32
		maxSeen atomic.Int32
		counter atomic.Int32
	)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "account/repo/main")
			if err != nil {
				t.Error(err)
				return
			}
			defer unlock()

			n := inside.Add(1)
			for {
				cur := maxSeen.Load()
				if n <= cur || maxSeen.CompareAndSwap(cur, n) {
					break
				}
			}
			counter.Add(1)
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	gt.V(t, maxSeen.Load()).Equal(int32(1))
	gt.V(t, counter.Load()).Equal(int32(10))
}

func testContextCancel(t *testing.T, locker interfaces.Locker) {
	unlock := gt.R1(locker.Lock(context.Background(), "busy")).NoError(t)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := locker.Lock(ctx, "busy")
	gt.Error(t, err)

	// Other keys are independent
	other := gt.R1(locker.Lock(context.Background(), "idle")).NoError(t)
	other()
}

func TestKeyedMutex(t *testing.T) {
	t.Run("mutual exclusion", func(t *testing.T) {
		testMutualExclusion(t, lock.NewKeyedMutex())
	})

	t.Run("context cancel", func(t *testing.T) {
		testContextCancel(t, lock.NewKeyedMutex())
	})

	t.Run("entries are released", func(t *testing.T) {
		m := lock.NewKeyedMutex()
		unlock := gt.R1(m.Lock(context.Background(), "k")).NoError(t)
		gt.V(t, m.LenForTest()).Equal(1)
		unlock()
		unlock()
		gt.V(t, m.LenForTest()).Equal(0)
	})
}

func TestRedisLocker(t *testing.T) {
	t.Run("mutual exclusion", func(t *testing.T) {
		_, client := newRedis(t)
		testMutualExclusion(t, lock.NewRedisLocker(client, lock.WithRetryWait(time.Millisecond)))
	})

	t.Run("context cancel", func(t *testing.T) {
		_, client := newRedis(t)
		testContextCancel(t, lock.NewRedisLocker(client, lock.WithRetryWait(time.Millisecond)))
	})

	t.Run("release keeps a lock taken over by another holder", func(t *testing.T) {
		srv, client := newRedis(t)
		locker := lock.NewRedisLocker(client, lock.WithLockTTL(time.Second))

		unlock := gt.R1(locker.Lock(context.Background(), "k")).NoError(t)
		srv.FastForward(2 * time.Second)

		second := gt.R1(locker.Lock(context.Background(), "k")).NoError(t)
		unlock()
		gt.True(t, srv.Exists("refacto:lock:k"))
		second()
		gt.False(t, srv.Exists("refacto:lock:k"))
	})
}

func TestMemoryDeliveryGuard(t *testing.T) {
	ctx := context.Background()
	guard := lock.NewMemoryDeliveryGuard(time.Hour)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	guard.SetClockForTest(func() time.Time { return now })

	gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
	gt.False(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
	gt.True(t, gt.R1(guard.Claim(ctx, "d-2")).NoError(t))

	now = now.Add(time.Hour)
	gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
}

func TestRedisDeliveryGuard(t *testing.T) {
	ctx := context.Background()
	srv, client := newRedis(t)
	guard := lock.NewRedisDeliveryGuard(client, time.Hour)

	gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
	gt.False(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))

	srv.FastForward(time.Hour + time.Second)
	gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
}

func TestDeliveryGuardRelease(t *testing.T) {
	_, client := newRedis(t)
	guards := map[string]interfaces.DeliveryGuard{
		"memory": lock.NewMemoryDeliveryGuard(time.Hour),
		"redis":  lock.NewRedisDeliveryGuard(client, time.Hour),
	}

	for name, guard := range guards {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
			gt.NoError(t, guard.Release(ctx, "d-1"))
			gt.True(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))
			gt.False(t, gt.R1(guard.Claim(ctx, "d-1")).NoError(t))

			// releasing an unknown id is not an error
			gt.NoError(t, guard.Release(ctx, "d-unknown"))
		})
	}
}
