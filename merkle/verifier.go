// Package merkle verifies batches of Merkle inclusion proofs.
//
// A proof is a leaf digest plus the sibling digests on the path to the root,
// bottom to top. Folding computes H(hash || sibling) for each sibling in
// order, so the caller encodes left/right placement through sibling order
// alone: there are no position markers, and a misordered path yields a
// different root rather than an error.
package merkle

import (
	"github.com/Taraxa-project/taraxa-certs/batch"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/metrics"
)

var (
	valid_cnt   = metrics.NewRegisteredCounter("merkle/proofs/valid", nil)
	invalid_cnt = metrics.NewRegisteredCounter("merkle/proofs/invalid", nil)
)

type Proof struct {
	Leaf     common.Hash   `json:"leaf"`
	Siblings []common.Hash `json:"siblings"`
}

type Result struct {
	Leaf    common.Hash `json:"leaf"`
	IsValid bool        `json:"isValid"`
}

type Verifier struct {
	hasher Hasher
}

func NewVerifier(hasher Hasher) *Verifier {
	return &Verifier{hasher: hasher}
}

// Fold recomputes the root implied by leaf and siblings.
func (self *Verifier) Fold(leaf common.Hash, siblings []common.Hash) common.Hash {
	hash := leaf
	for i := range siblings {
		hash = self.hasher.Hash(hash[:], siblings[i][:])
	}
	return hash
}

func (self *Verifier) Verify(root common.Hash, proof Proof) bool {
	return self.Fold(proof.Leaf, proof.Siblings) == root
}

// VerifyBatch checks every proof against root independently; results are
// in input order. Batches above batch.MaxSize are rejected outright.
func (self *Verifier) VerifyBatch(root common.Hash, proofs []Proof) ([]Result, error) {
	if err := batch.Check(len(proofs)); err != nil {
		return nil, err
	}
	ret := make([]Result, len(proofs))
	for i, proof := range proofs {
		ret[i] = Result{Leaf: proof.Leaf, IsValid: self.Verify(root, proof)}
		if ret[i].IsValid {
			valid_cnt.Inc(1)
		} else {
			invalid_cnt.Inc(1)
		}
	}
	return ret, nil
}
