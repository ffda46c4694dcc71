// Package certstore implements certs.RecordStore on top of kvdb databases.
package certstore

import (
	"fmt"

	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/kvdb"
	"github.com/ethereum/go-ethereum/rlp"
)

var keyPrefix = []byte("cert/")

func Key(id string) []byte {
	return append(append(make([]byte, 0, len(keyPrefix)+len(id)), keyPrefix...), id...)
}

// KVStore keeps RLP-encoded certificates under "cert/" + id.
type KVStore struct {
	db kvdb.Database
}

func NewKVStore(db kvdb.Database) *KVStore {
	return &KVStore{db: db}
}

func (this *KVStore) Has(id string) (bool, error) {
	return this.db.Has(Key(id))
}

func (this *KVStore) Get(id string) (ret certs.Certificate, found bool, err error) {
	enc, err := this.db.Get(Key(id))
	if err == kvdb.ErrNotFound {
		return ret, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	if err = rlp.DecodeBytes(enc, &ret); err != nil {
		return certs.Certificate{}, false, fmt.Errorf("corrupt certificate record %q: %w", id, err)
	}
	return ret, true, nil
}

func (this *KVStore) Set(cert certs.Certificate) error {
	enc, err := rlp.EncodeToBytes(&cert)
	if err != nil {
		return err
	}
	return this.db.Put(Key(cert.ID), enc)
}

// IDs lists stored certificate ids in key order. The database must
// implement kvdb.Lister.
func (this *KVStore) IDs() ([]string, error) {
	lister, ok := this.db.(kvdb.Lister)
	if !ok {
		return nil, fmt.Errorf("database %T cannot list keys", this.db)
	}
	keys, err := lister.Keys(keyPrefix)
	if err != nil {
		return nil, err
	}
	ret := make([]string, len(keys))
	for i, k := range keys {
		ret[i] = string(k[len(keyPrefix):])
	}
	return ret, nil
}
