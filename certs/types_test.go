package certs

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateJSON(t *testing.T) {
	assert := assert.New(t)
	cert := Certificate{
		ID:          "cert-1",
		Issuer:      common.HexToAddress("0x01"),
		Owner:       common.HexToAddress("0x02"),
		MetadataURI: "ipfs://meta",
		IssuedAt:    7,
	}
	raw, err := json.Marshal(cert)
	require.NoError(t, err)
	assert.JSONEq(`{
		"id": "cert-1",
		"issuer": "0x0000000000000000000000000000000000000001",
		"owner": "0x0000000000000000000000000000000000000002",
		"metadataUri": "ipfs://meta",
		"issuedAt": 7,
		"revoked": false
	}`, string(raw))

	cert.Revocation = &Revocation{Reason: "policy", RevokedAt: 9, RevokedBy: cert.Issuer}
	raw, err = json.Marshal(cert)
	require.NoError(t, err)
	var decoded Certificate
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(cert, decoded)
}

func TestCertificateJSONRejectsPartialRevocation(t *testing.T) {
	var cert Certificate
	assert.Error(t, json.Unmarshal([]byte(`{"id":"a","revoked":true,"revocationReason":"x"}`), &cert))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"a","revoked":false,"revokedAt":3}`), &cert))
}

func TestSingleVerificationResultJSON(t *testing.T) {
	assert := assert.New(t)
	for _, status := range []Status{StatusNotFound, StatusRevoked, StatusValid} {
		r := SingleVerificationResult{ID: "x", Status: status}
		raw, err := json.Marshal(r)
		require.NoError(t, err)
		var decoded SingleVerificationResult
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(r, decoded)
	}
	raw, _ := json.Marshal(SingleVerificationResult{ID: "x", Status: StatusRevoked})
	assert.JSONEq(`{"id":"x","exists":true,"revoked":true,"message":"Certificate is revoked"}`, string(raw))
}

func TestBatchResultPartition(t *testing.T) {
	assert := assert.New(t)
	var report BatchVerificationResult
	for _, s := range []Status{StatusValid, StatusNotFound, StatusRevoked, StatusValid} {
		report.add(SingleVerificationResult{Status: s})
	}
	assert.Equal(uint32(4), report.Total)
	assert.Equal(report.Total, report.Successful+report.Failed)
	assert.Equal(int(report.Total), len(report.Results))
	assert.Equal(uint32(2), report.Successful)
}

func TestCopyIsDeep(t *testing.T) {
	cert := Certificate{ID: "a", Revocation: &Revocation{Reason: "r"}}
	cp := cert.Copy()
	cp.Revocation.Reason = "changed"
	assert.Equal(t, "r", cert.Revocation.Reason)
}
