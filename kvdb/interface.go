package kvdb

import "github.com/Taraxa-project/taraxa-certs/util"

const ErrNotFound = util.ErrorString("kvdb: not found")

type Reader interface {
	Has(key []byte) (bool, error)
	// Get returns ErrNotFound when the key is absent.
	Get(key []byte) ([]byte, error)
}

type Writer interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
}

type Database interface {
	Reader
	Writer
	Close() error
}

// Lister is implemented by databases that can enumerate keys by prefix.
type Lister interface {
	Keys(prefix []byte) ([][]byte, error)
}
