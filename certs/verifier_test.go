package certs_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/batch"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyBatchEmpty(t *testing.T) {
	assert := assert.New(t)
	l := newTestLedger(auth.AllowAll{})
	for _, ids := range [][]string{nil, {}} {
		report, err := l.verifier.VerifyBatch(ids)
		require.NoError(t, err)
		assert.Equal(certs.BatchVerificationResult{Results: []certs.SingleVerificationResult{}}, report)
	}
}

func TestVerifyBatchTooLarge(t *testing.T) {
	assert := assert.New(t)
	l := newTestLedger(auth.AllowAll{})
	ids := make([]string, batch.MaxSize+1)
	for i := range ids {
		ids[i] = "cert-" + strconv.Itoa(i)
	}
	report, err := l.verifier.VerifyBatch(ids)
	assert.True(errors.Is(err, certs.ErrBatchTooLarge))
	assert.Equal(certs.BatchVerificationResult{}, report)

	report, err = l.verifier.VerifyBatch(ids[:batch.MaxSize])
	assert.NoError(err)
	assert.Equal(uint32(batch.MaxSize), report.Failed)
	assert.Equal(certs.BaseVerificationCost+certs.CostPerCertificate*batch.MaxSize, report.TotalCost)
}

func TestVerifyBatchPartialFailureAndCost(t *testing.T) {
	assert := assert.New(t)
	l := newTestLedger(auth.AllowAll{})
	for _, id := range []string{"cert-1", "cert-2", "cert-3"} {
		require.NoError(t, l.Issue(id, issuer, owner, "ipfs://meta", auth.Credential{}))
	}
	require.NoError(t, l.Revoke("cert-2", "policy", auth.Credential{}))

	report, err := l.verifier.VerifyBatch([]string{"cert-1", "cert-2", "cert-3", "missing-cert"})
	require.NoError(t, err)

	assert.Equal(uint32(4), report.Total)
	assert.Equal(uint32(2), report.Successful)
	assert.Equal(uint32(2), report.Failed)
	assert.Equal(uint64(30), report.TotalCost)
	assert.Equal([]certs.SingleVerificationResult{
		{ID: "cert-1", Status: certs.StatusValid},
		{ID: "cert-2", Status: certs.StatusRevoked},
		{ID: "cert-3", Status: certs.StatusValid},
		{ID: "missing-cert", Status: certs.StatusNotFound},
	}, report.Results)

	r := report.Results[1]
	assert.True(r.Status.Exists())
	assert.True(r.Status.Revoked())
	assert.Equal("Certificate is revoked", r.Status.Message())
	r = report.Results[3]
	assert.False(r.Status.Exists())
	assert.False(r.Status.Revoked())
	assert.Equal("Certificate not found", r.Status.Message())
	assert.Equal("Certificate is valid", report.Results[0].Status.Message())
}

func TestVerifyBatchRepeatedIds(t *testing.T) {
	assert := assert.New(t)
	l := newTestLedger(auth.AllowAll{})
	require.NoError(t, l.Issue("a", issuer, owner, "", auth.Credential{}))

	report, err := l.verifier.VerifyBatch([]string{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(uint32(3), report.Total)
	assert.Equal(uint32(2), report.Successful)
	assert.Equal(certs.Cost(3), report.TotalCost)
}

type brokenStore struct{}

func (brokenStore) Has(string) (bool, error) { return false, util.ErrorString("io") }
func (brokenStore) Get(string) (certs.Certificate, bool, error) {
	return certs.Certificate{}, false, util.ErrorString("io")
}

func TestVerifyBatchStoreErrorAborts(t *testing.T) {
	report, err := certs.NewVerifier(brokenStore{}).VerifyBatch([]string{"a"})
	assert.EqualError(t, err, "io")
	assert.Equal(t, certs.BatchVerificationResult{}, report)
}

func TestCost(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(0), certs.Cost(0))
	assert.Equal(uint64(15), certs.Cost(1))
	assert.Equal(uint64(260), certs.Cost(50))
}
