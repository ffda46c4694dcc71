package merkle

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Hasher is the one-way primitive H used to fold proofs.
type Hasher interface {
	Hash(data ...[]byte) common.Hash
}

type pooledHasher struct {
	pool sync.Pool
}

func newPooledHasher(newHash func() hash.Hash) *pooledHasher {
	return &pooledHasher{pool: sync.Pool{New: func() interface{} { return newHash() }}}
}

// Hash digests the concatenation of data.
func (self *pooledHasher) Hash(data ...[]byte) (ret common.Hash) {
	h := self.pool.Get().(hash.Hash)
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(ret[:0])
	h.Reset()
	self.pool.Put(h)
	return
}

var (
	SHA256    Hasher = newPooledHasher(sha256.New)
	Keccak256 Hasher = newPooledHasher(sha3.NewLegacyKeccak256)
)

func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", "sha256":
		return SHA256, nil
	case "keccak256":
		return Keccak256, nil
	}
	return nil, fmt.Errorf("unknown hash: %q", name)
}
