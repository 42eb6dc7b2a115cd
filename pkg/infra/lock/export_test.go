package lock

import "time"

func (x *MemoryDeliveryGuard) SetClockForTest(now func() time.Time) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.now = now
}

func (x *KeyedMutex) LenForTest() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.locks)
}
