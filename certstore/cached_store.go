package certstore

import (
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/util"
	lru "github.com/hashicorp/golang-lru"
)

// CachedStore is a write-through LRU cache of decoded certificates. Only
// present records are cached; misses always reach the backing store.
// Filling the cache after a miss and writing through are serialized per id,
// so a fill never replaces a record written after its read.
type CachedStore struct {
	inner certs.RecordStore
	cache *lru.Cache
	locks *util.StripedMutex
}

func NewCachedStore(inner certs.RecordStore, size int) (*CachedStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, cache: cache, locks: util.NewStripedMutex(util.DefaultStripes)}, nil
}

func (this *CachedStore) Has(id string) (bool, error) {
	if this.cache.Contains(id) {
		return true, nil
	}
	return this.inner.Has(id)
}

func (this *CachedStore) Get(id string) (certs.Certificate, bool, error) {
	if cached, ok := this.cache.Get(id); ok {
		return cached.(certs.Certificate).Copy(), true, nil
	}
	defer util.LockUnlock(this.locks.For(id))()
	if cached, ok := this.cache.Get(id); ok {
		return cached.(certs.Certificate).Copy(), true, nil
	}
	cert, found, err := this.inner.Get(id)
	if err == nil && found {
		this.cache.Add(id, cert.Copy())
	}
	return cert, found, err
}

func (this *CachedStore) Set(cert certs.Certificate) error {
	defer util.LockUnlock(this.locks.For(cert.ID))()
	if err := this.inner.Set(cert); err != nil {
		this.cache.Remove(cert.ID)
		return err
	}
	this.cache.Add(cert.ID, cert.Copy())
	return nil
}

func (this *CachedStore) Len() int {
	return this.cache.Len()
}
