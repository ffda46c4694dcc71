//go:build rocksdb
// +build rocksdb

package kvdb

import (
	"github.com/Taraxa-project/taraxa-certs/util"
	"github.com/tecbot/gorocksdb"
)

func init() {
	FactoryRegistry["rocksdb"] = func() Factory {
		return new(RocksDBFactory)
	}
}

type RocksDBFactory struct {
	File                string `json:"file"`
	ReadOnly            bool   `json:"readOnly"`
	ErrorIfExists       bool   `json:"errorIfExists"`
	DontCreateIfMissing bool   `json:"dontCreateIfMissing"`
	MaxOpenFiles        int    `json:"maxOpenFiles"`
	BloomFilterCapacity int    `json:"bloomFilterCapacity"`
	BlockCacheSize      uint64 `json:"blockCacheSize"`
	WriteBufferSize     int    `json:"writeBufferSize"`
	Parallelism         int    `json:"parallelism"`
}

func (this *RocksDBFactory) NewDB() (Database, error) {
	opts := gorocksdb.NewDefaultOptions()
	blockOpts := gorocksdb.NewDefaultBlockBasedTableOptions()
	blockOpts.SetFilterPolicy(gorocksdb.NewBloomFilter(util.Max(10, this.BloomFilterCapacity)))
	if this.BlockCacheSize > 0 {
		blockOpts.SetBlockCache(gorocksdb.NewLRUCache(this.BlockCacheSize))
	}
	opts.SetBlockBasedTableFactory(blockOpts)
	if this.WriteBufferSize > 0 {
		opts.SetWriteBufferSize(this.WriteBufferSize)
	}
	if this.MaxOpenFiles > 0 {
		opts.SetMaxOpenFiles(this.MaxOpenFiles)
	}
	if this.Parallelism > 0 {
		opts.IncreaseParallelism(this.Parallelism)
	}
	opts.SetErrorIfExists(this.ErrorIfExists)
	opts.SetCreateIfMissing(!this.DontCreateIfMissing)
	ret, err := &RocksDatabase{
		writeOpts: gorocksdb.NewDefaultWriteOptions(),
		readOpts:  gorocksdb.NewDefaultReadOptions(),
	}, error(nil)
	if this.ReadOnly {
		ret.db, err = gorocksdb.OpenDbForReadOnly(opts, this.File, this.ErrorIfExists)
	} else {
		ret.db, err = gorocksdb.OpenDb(opts, this.File)
	}
	if err != nil {
		ret.writeOpts.Destroy()
		ret.readOpts.Destroy()
		blockOpts.Destroy()
		opts.Destroy()
		return nil, err
	}
	return ret, nil
}

type RocksDatabase struct {
	writeOpts *gorocksdb.WriteOptions
	readOpts  *gorocksdb.ReadOptions
	db        *gorocksdb.DB
}

func (this *RocksDatabase) Put(key []byte, value []byte) error {
	return this.db.Put(this.writeOpts, key, value)
}

func (this *RocksDatabase) Delete(key []byte) error {
	return this.db.Delete(this.writeOpts, key)
}

func (this *RocksDatabase) Get(key []byte) ([]byte, error) {
	ret, err := this.db.GetBytes(this.readOpts, key)
	if err == nil && ret == nil {
		return nil, ErrNotFound
	}
	return ret, err
}

func (this *RocksDatabase) Has(key []byte) (bool, error) {
	ret, err := this.db.GetBytes(this.readOpts, key)
	return ret != nil, err
}

func (this *RocksDatabase) Keys(prefix []byte) (ret [][]byte, err error) {
	it := this.db.NewIterator(this.readOpts)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		k := it.Key()
		ret = append(ret, append([]byte(nil), k.Data()...))
		k.Free()
	}
	return ret, it.Err()
}

func (this *RocksDatabase) Close() error {
	this.db.Close()
	this.writeOpts.Destroy()
	this.readOpts.Destroy()
	return nil
}
