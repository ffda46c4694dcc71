package certs

import (
	"fmt"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/clock"
	"github.com/Taraxa-project/taraxa-certs/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

const (
	IssueMethod  = "issue_certificate"
	RevokeMethod = "revoke_certificate"
)

// IssueOperation is the digest an issuer authorizes to issue a certificate.
func IssueOperation(id string, issuer, owner common.Address, metadataURI string) common.Hash {
	return auth.OperationDigest(IssueMethod, id, issuer, owner, metadataURI)
}

// RevokeOperation is the digest the recorded issuer authorizes to revoke.
func RevokeOperation(id, reason string) common.Hash {
	return auth.OperationDigest(RevokeMethod, id, reason)
}

// Manager issues and revokes certificates. Issue and Revoke hold a
// per-id lock across their check-then-write, so an id is issued at most
// once and revoked at most once even under concurrent calls.
type Manager struct {
	store      RecordStore
	authorizer auth.Authorizer
	clock      clock.Clock
	locks      *util.StripedMutex
	log        log.Logger
}

func NewManager(store RecordStore, authorizer auth.Authorizer, clk clock.Clock) *Manager {
	return &Manager{
		store:      store,
		authorizer: authorizer,
		clock:      clk,
		locks:      util.NewStripedMutex(util.DefaultStripes),
		log:        log.New("module", "certs"),
	}
}

func (this *Manager) Issue(id string, issuer, owner common.Address, metadataURI string, cred auth.Credential) error {
	if err := this.authorizer.RequireAuth(cred, issuer, IssueOperation(id, issuer, owner, metadataURI)); err != nil {
		return err
	}
	defer util.LockUnlock(this.locks.For(id))()
	exists, err := this.store.Has(id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, id)
	}
	cert := Certificate{
		ID:          id,
		Issuer:      issuer,
		Owner:       owner,
		MetadataURI: metadataURI,
		IssuedAt:    this.clock.Now(),
	}
	if err := this.store.Set(cert); err != nil {
		this.log.Error("Failed to store certificate", "id", id, "err", err)
		return err
	}
	issued_cnt.Inc(1)
	this.log.Debug("Certificate issued", "id", id, "issuer", issuer, "owner", owner)
	return nil
}

// Revoke is authorized against the issuer on record, not the caller's claim.
func (this *Manager) Revoke(id, reason string, cred auth.Credential) error {
	defer util.LockUnlock(this.locks.For(id))()
	cert, err := this.get(id)
	if err != nil {
		return err
	}
	if err := this.authorizer.RequireAuth(cred, cert.Issuer, RevokeOperation(id, reason)); err != nil {
		return err
	}
	if cert.Revoked() {
		return fmt.Errorf("%w: %s", ErrAlreadyRevoked, id)
	}
	cert.Revocation = &Revocation{
		Reason:    reason,
		RevokedAt: this.clock.Now(),
		RevokedBy: cert.Issuer,
	}
	if err := this.store.Set(cert); err != nil {
		this.log.Error("Failed to store revocation", "id", id, "err", err)
		return err
	}
	revoked_cnt.Inc(1)
	this.log.Debug("Certificate revoked", "id", id, "reason", reason)
	return nil
}

func (this *Manager) IsRevoked(id string) (bool, error) {
	cert, err := this.get(id)
	if err != nil {
		return false, err
	}
	return cert.Revoked(), nil
}

func (this *Manager) Get(id string) (Certificate, error) {
	return this.get(id)
}

func (this *Manager) get(id string) (Certificate, error) {
	cert, found, err := this.store.Get(id)
	if err != nil {
		return Certificate{}, err
	}
	if !found {
		return Certificate{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cert, nil
}
