// Package ledger assembles the certificate ledger from configuration.
package ledger

import (
	"errors"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/certstore"
	"github.com/Taraxa-project/taraxa-certs/clock"
	"github.com/Taraxa-project/taraxa-certs/config"
	"github.com/Taraxa-project/taraxa-certs/kvdb"
	"github.com/Taraxa-project/taraxa-certs/merkle"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

type Option func(*Ledger)

func WithClock(c clock.Clock) Option {
	return func(l *Ledger) { l.clock = c }
}

func WithAuthorizer(a auth.Authorizer) Option {
	return func(l *Ledger) { l.authorizer = a }
}

type Ledger struct {
	db         kvdb.Database
	kv         *certstore.KVStore
	clock      clock.Clock
	authorizer auth.Authorizer
	manager    *certs.Manager
	verifier   *certs.Verifier
	merkle     *merkle.Verifier
}

func New(cfg *config.Config, opts ...Option) (ret *Ledger, err error) {
	if cfg.Store == nil {
		return nil, errors.New("ledger: no store configured")
	}
	ret = &Ledger{clock: clock.System{}}
	if ret.authorizer, err = auth.ByName(cfg.Auth); err != nil {
		return nil, err
	}
	hasher, err := merkle.HasherByName(cfg.MerkleHash)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.db, err = cfg.Store.NewDB(); err != nil {
		return nil, err
	}
	ret.kv = certstore.NewKVStore(ret.db)
	var store certs.RecordStore = ret.kv
	if cfg.CacheSize > 0 {
		if store, err = certstore.NewCachedStore(ret.kv, cfg.CacheSize); err != nil {
			ret.db.Close()
			return nil, err
		}
	}
	ret.manager = certs.NewManager(store, ret.authorizer, ret.clock)
	ret.verifier = certs.NewVerifier(store)
	ret.merkle = merkle.NewVerifier(hasher)
	log.Info("Ledger opened", "store", cfg.Store.Type, "cache", cfg.CacheSize, "auth", cfg.Auth, "hash", cfg.MerkleHash)
	return ret, nil
}

func (this *Ledger) Issue(id string, issuer, owner common.Address, metadataURI string, cred auth.Credential) error {
	return this.manager.Issue(id, issuer, owner, metadataURI, cred)
}

func (this *Ledger) Revoke(id, reason string, cred auth.Credential) error {
	return this.manager.Revoke(id, reason, cred)
}

func (this *Ledger) IsRevoked(id string) (bool, error) {
	return this.manager.IsRevoked(id)
}

func (this *Ledger) Get(id string) (certs.Certificate, error) {
	return this.manager.Get(id)
}

func (this *Ledger) VerifyCertificates(ids []string) (certs.BatchVerificationResult, error) {
	return this.verifier.VerifyBatch(ids)
}

func (this *Ledger) VerifyMerkle(root common.Hash, proofs []merkle.Proof) ([]merkle.Result, error) {
	return this.merkle.VerifyBatch(root, proofs)
}

// IDs lists every stored certificate id; not every backend supports it.
func (this *Ledger) IDs() ([]string, error) {
	return this.kv.IDs()
}

func (this *Ledger) Close() error {
	return this.db.Close()
}
