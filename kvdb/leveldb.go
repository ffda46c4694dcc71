package kvdb

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	minCache   = 16
	minHandles = 16
)

type LDBDatabase struct {
	file string
	db   *leveldb.DB
	log  log.Logger
}

// NewLDBDatabase opens (creating if missing) a LevelDB database at file.
// cache is in megabytes, handles bounds open table files.
func NewLDBDatabase(file string, cache int, handles int) (*LDBDatabase, error) {
	logger := log.New("database", file)
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	logger.Debug("Opening leveldb", "cache", cache, "handles", handles)
	db, err := leveldb.OpenFile(file, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		logger.Warn("Recovering corrupted leveldb")
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &LDBDatabase{file: file, db: db, log: logger}, nil
}

func (this *LDBDatabase) Path() string {
	return this.file
}

func (this *LDBDatabase) Put(key []byte, value []byte) error {
	return this.db.Put(key, value, nil)
}

func (this *LDBDatabase) Has(key []byte) (bool, error) {
	return this.db.Has(key, nil)
}

func (this *LDBDatabase) Get(key []byte) ([]byte, error) {
	ret, err := this.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return ret, err
}

func (this *LDBDatabase) Delete(key []byte) error {
	return this.db.Delete(key, nil)
}

// Keys returns the keys starting with prefix in ascending order.
func (this *LDBDatabase) Keys(prefix []byte) (ret [][]byte, err error) {
	it := this.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()
	for it.Next() {
		ret = append(ret, append([]byte(nil), it.Key()...))
	}
	return ret, it.Error()
}

func (this *LDBDatabase) Close() error {
	if err := this.db.Close(); err != nil {
		this.log.Error("Failed to close leveldb", "err", err)
		return err
	}
	this.log.Debug("Leveldb closed")
	return nil
}
