package util

import (
	"sync"

	"github.com/dchest/siphash"
)

const DefaultStripes = 256

// fixed keys: stripe placement only needs to be stable within a process
const (
	stripe_k0 = 0x736f6d6570736575
	stripe_k1 = 0x646f72616e646f6d
)

func LockUnlock(lock sync.Locker) (unlock func()) {
	lock.Lock()
	return lock.Unlock
}

// StripedMutex serializes work per key with a bounded number of mutexes.
// Distinct keys may share a stripe, equal keys always do.
type StripedMutex struct {
	stripes []sync.Mutex
}

func NewStripedMutex(stripes int) *StripedMutex {
	return &StripedMutex{stripes: make([]sync.Mutex, Max(1, stripes))}
}

func (self *StripedMutex) For(key string) sync.Locker {
	h := siphash.Hash(stripe_k0, stripe_k1, []byte(key))
	return &self.stripes[h%uint64(len(self.stripes))]
}

func (self *StripedMutex) Len() int {
	return len(self.stripes)
}
