package clock

import (
	"sync/atomic"
	"time"
)

// Clock is the ledger time source, in seconds.
type Clock interface {
	Now() uint64
}

type System struct{}

func (System) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Manual only moves when told to.
type Manual struct {
	now uint64
}

func NewManual(now uint64) *Manual {
	return &Manual{now: now}
}

func (self *Manual) Now() uint64 {
	return atomic.LoadUint64(&self.now)
}

func (self *Manual) Set(now uint64) {
	atomic.StoreUint64(&self.now, now)
}

func (self *Manual) Advance(d uint64) uint64 {
	return atomic.AddUint64(&self.now, d)
}
