package lock

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

// DeliveryTTL is how long a claimed delivery ID is remembered.
const DeliveryTTL = 24 * time.Hour

// KeyedMutex is an in-process Locker. Entries are dropped once no holder or
// waiter remains.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.Locker = (*KeyedMutex)(nil)

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

func (x *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	x.mu.Lock()
	entry, ok := x.locks[key]
	if !ok {
		entry = &keyedEntry{ch: make(chan struct{}, 1)}
		x.locks[key] = entry
	}
	entry.refs++
	x.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		x.release(key, entry, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { x.release(key, entry, true) })
	}, nil
}

func (x *KeyedMutex) release(key string, entry *keyedEntry, held bool) {
	if held {
		<-entry.ch
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(x.locks, key)
	}
}

// MemoryDeliveryGuard remembers delivery IDs in process for ttl.
type MemoryDeliveryGuard struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	seen map[types.DeliveryID]time.Time
}

var _ interfaces.DeliveryGuard = (*MemoryDeliveryGuard)(nil)

func NewMemoryDeliveryGuard(ttl time.Duration) *MemoryDeliveryGuard {
	return &MemoryDeliveryGuard{
		ttl:  ttl,
		now:  time.Now,
		seen: make(map[types.DeliveryID]time.Time),
	}
}

func (x *MemoryDeliveryGuard) Claim(ctx context.Context, id types.DeliveryID) (bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := x.now()
	for k, expires := range x.seen {
		if !now.Before(expires) {
			delete(x.seen, k)
		}
	}

	if _, ok := x.seen[id]; ok {
		return false, nil
	}
	x.seen[id] = now.Add(x.ttl)
	return true, nil
}

func (x *MemoryDeliveryGuard) Release(ctx context.Context, id types.DeliveryID) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.seen, id)
	return nil
}
