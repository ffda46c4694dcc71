package certs

import (
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// Certificate is the persisted ledger record. Field order is the RLP layout.
type Certificate struct {
	ID          string
	Issuer      common.Address
	Owner       common.Address
	MetadataURI string
	IssuedAt    uint64
	// nil until revoked, never cleared afterwards
	Revocation *Revocation `rlp:"nil"`
}

type Revocation struct {
	Reason    string
	RevokedAt uint64
	RevokedBy common.Address
}

func (self *Certificate) Revoked() bool {
	return self.Revocation != nil
}

type certificateJSON struct {
	ID               string          `json:"id"`
	Issuer           common.Address  `json:"issuer"`
	Owner            common.Address  `json:"owner"`
	MetadataURI      string          `json:"metadataUri"`
	IssuedAt         uint64          `json:"issuedAt"`
	Revoked          bool            `json:"revoked"`
	RevocationReason *string         `json:"revocationReason,omitempty"`
	RevokedAt        *uint64         `json:"revokedAt,omitempty"`
	RevokedBy        *common.Address `json:"revokedBy,omitempty"`
}

func (self Certificate) MarshalJSON() ([]byte, error) {
	enc := certificateJSON{
		ID:          self.ID,
		Issuer:      self.Issuer,
		Owner:       self.Owner,
		MetadataURI: self.MetadataURI,
		IssuedAt:    self.IssuedAt,
		Revoked:     self.Revoked(),
	}
	if r := self.Revocation; r != nil {
		enc.RevocationReason, enc.RevokedAt, enc.RevokedBy = &r.Reason, &r.RevokedAt, &r.RevokedBy
	}
	return json.Marshal(&enc)
}

func (self *Certificate) UnmarshalJSON(input []byte) error {
	var dec certificateJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*self = Certificate{
		ID:          dec.ID,
		Issuer:      dec.Issuer,
		Owner:       dec.Owner,
		MetadataURI: dec.MetadataURI,
		IssuedAt:    dec.IssuedAt,
	}
	set := dec.RevocationReason != nil && dec.RevokedAt != nil && dec.RevokedBy != nil
	unset := dec.RevocationReason == nil && dec.RevokedAt == nil && dec.RevokedBy == nil
	switch {
	case dec.Revoked && set:
		self.Revocation = &Revocation{*dec.RevocationReason, *dec.RevokedAt, *dec.RevokedBy}
	case !dec.Revoked && unset:
	default:
		return errors.New("certificate: revocation fields must be set together with revoked")
	}
	return nil
}

// Status is the outcome of verifying a single certificate id.
type Status uint8

const (
	StatusNotFound Status = iota
	StatusRevoked
	StatusValid
)

func StatusOf(cert *Certificate) Status {
	switch {
	case cert == nil:
		return StatusNotFound
	case cert.Revoked():
		return StatusRevoked
	default:
		return StatusValid
	}
}

func (s Status) Exists() bool     { return s != StatusNotFound }
func (s Status) Revoked() bool    { return s == StatusRevoked }
func (s Status) Successful() bool { return s == StatusValid }

func (s Status) Message() string {
	switch s {
	case StatusNotFound:
		return "Certificate not found"
	case StatusRevoked:
		return "Certificate is revoked"
	default:
		return "Certificate is valid"
	}
}

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not-found"
	case StatusRevoked:
		return "revoked"
	default:
		return "valid"
	}
}

type SingleVerificationResult struct {
	ID     string
	Status Status
}

type singleVerificationResultJSON struct {
	ID      string `json:"id"`
	Exists  bool   `json:"exists"`
	Revoked bool   `json:"revoked"`
	Message string `json:"message"`
}

func (self SingleVerificationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(&singleVerificationResultJSON{
		ID:      self.ID,
		Exists:  self.Status.Exists(),
		Revoked: self.Status.Revoked(),
		Message: self.Status.Message(),
	})
}

func (self *SingleVerificationResult) UnmarshalJSON(input []byte) error {
	var dec singleVerificationResultJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	self.ID = dec.ID
	switch {
	case !dec.Exists && !dec.Revoked:
		self.Status = StatusNotFound
	case dec.Exists && dec.Revoked:
		self.Status = StatusRevoked
	case dec.Exists:
		self.Status = StatusValid
	default:
		return errors.New("verification result: revoked without exists")
	}
	return nil
}

// BatchVerificationResult keeps Total == Successful+Failed == len(Results);
// results are only ever appended through add.
type BatchVerificationResult struct {
	Results    []SingleVerificationResult `json:"results"`
	Total      uint32                     `json:"total"`
	Successful uint32                     `json:"successful"`
	Failed     uint32                     `json:"failed"`
	TotalCost  uint64                     `json:"totalCost"`
}

func (self *BatchVerificationResult) add(result SingleVerificationResult) {
	self.Results = append(self.Results, result)
	self.Total++
	if result.Status.Successful() {
		self.Successful++
	} else {
		self.Failed++
	}
}

// Copy returns a certificate that shares no memory with self.
func (self Certificate) Copy() Certificate {
	if self.Revocation != nil {
		r := *self.Revocation
		self.Revocation = &r
	}
	return self
}
