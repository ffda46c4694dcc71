package certs

import (
	"github.com/Taraxa-project/taraxa-certs/batch"
)

const (
	BaseVerificationCost uint64 = 10
	CostPerCertificate   uint64 = 5
)

// Cost is the flat accounting figure charged for verifying n certificates.
// Empty batches are free.
func Cost(n int) uint64 {
	if n == 0 {
		return 0
	}
	return BaseVerificationCost + CostPerCertificate*uint64(n)
}

// Verifier classifies certificate ids without modifying the store.
type Verifier struct {
	store RecordReader
}

func NewVerifier(store RecordReader) *Verifier {
	return &Verifier{store: store}
}

// VerifyBatch reports on every id in input order. Batches above
// batch.MaxSize are rejected before any lookup.
func (this *Verifier) VerifyBatch(ids []string) (BatchVerificationResult, error) {
	if err := batch.Check(len(ids)); err != nil {
		return BatchVerificationResult{}, err
	}
	ret := BatchVerificationResult{Results: make([]SingleVerificationResult, 0, len(ids))}
	for _, id := range ids {
		status, err := this.status(id)
		if err != nil {
			return BatchVerificationResult{}, err
		}
		ret.add(SingleVerificationResult{ID: id, Status: status})
	}
	ret.TotalCost = Cost(len(ids))
	if len(ids) != 0 {
		batch_verify_cnt.Inc(1)
		verified_valid_cnt.Inc(int64(ret.Successful))
		verified_fail_cnt.Inc(int64(ret.Failed))
	}
	return ret, nil
}

func (this *Verifier) status(id string) (Status, error) {
	cert, found, err := this.store.Get(id)
	if err != nil || !found {
		return StatusNotFound, err
	}
	return StatusOf(&cert), nil
}
