package rpc

import (
	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/merkle"
	"github.com/ethereum/go-ethereum/common"
)

// Backend is the set of ledger operations served over RPC.
type Backend interface {
	Issue(id string, issuer, owner common.Address, metadataURI string, cred auth.Credential) error
	Revoke(id, reason string, cred auth.Credential) error
	IsRevoked(id string) (bool, error)
	Get(id string) (certs.Certificate, error)
	VerifyCertificates(ids []string) (certs.BatchVerificationResult, error)
	VerifyMerkle(root common.Hash, proofs []merkle.Proof) ([]merkle.Result, error)
}

type Empty struct{}

type IssueRequest struct {
	ID          string          `json:"id"`
	Issuer      common.Address  `json:"issuer"`
	Owner       common.Address  `json:"owner"`
	MetadataURI string          `json:"metadataUri"`
	Credential  auth.Credential `json:"credential"`
}

type RevokeRequest struct {
	ID         string          `json:"id"`
	Reason     string          `json:"reason"`
	Credential auth.Credential `json:"credential"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type BoolResponse struct {
	Value bool `json:"value"`
}

type VerifyCertificatesRequest struct {
	IDs []string `json:"ids"`
}

type VerifyMerkleRequest struct {
	Root   common.Hash    `json:"root"`
	Proofs []merkle.Proof `json:"proofs"`
}

type VerifyMerkleResponse struct {
	Results []merkle.Result `json:"results"`
}
