package ledger

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/clock"
	"github.com/Taraxa-project/taraxa-certs/config"
	"github.com/Taraxa-project/taraxa-certs/kvdb"
	"github.com/Taraxa-project/taraxa-certs/merkle"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerMemory(t *testing.T) {
	assert := assert.New(t)
	cfg := config.Default()
	l, err := New(cfg, WithClock(clock.NewManual(42)), WithAuthorizer(auth.CallerAuthorizer{}))
	require.NoError(t, err)
	defer l.Close()

	issuer, owner := common.HexToAddress("0x1"), common.HexToAddress("0x2")
	require.NoError(t, l.Issue("a", issuer, owner, "uri", auth.Credential{Caller: issuer}))
	require.NoError(t, l.Issue("b", issuer, owner, "uri", auth.Credential{Caller: issuer}))
	require.NoError(t, l.Revoke("b", "gone", auth.Credential{Caller: issuer}))

	cert, err := l.Get("a")
	require.NoError(t, err)
	assert.Equal(uint64(42), cert.IssuedAt)
	revoked, err := l.IsRevoked("b")
	assert.NoError(err)
	assert.True(revoked)

	report, err := l.VerifyCertificates([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(uint32(1), report.Successful)
	assert.Equal(uint32(2), report.Failed)
	assert.Equal(uint64(25), report.TotalCost)

	ids, err := l.IDs()
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, ids)

	leaf := merkle.SHA256.Hash([]byte("leaf"))
	results, err := l.VerifyMerkle(leaf, []merkle.Proof{{Leaf: leaf}})
	assert.NoError(err)
	assert.True(results[0].IsValid)
}

func TestLedgerLevelDBSignedAndPersistent(t *testing.T) {
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "ledger-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := config.Default()
	cfg.Store = kvdb.NewGenericFactory("leveldb", &kvdb.LevelDBFactory{File: filepath.Join(dir, "db")})
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	issuer := crypto.PubkeyToAddress(key.PublicKey)
	owner := common.HexToAddress("0x2")

	l, err := New(cfg)
	require.NoError(t, err)
	cred, err := auth.Sign(key, certs.IssueOperation("cert-1", issuer, owner, "uri"))
	require.NoError(t, err)
	require.NoError(t, l.Issue("cert-1", issuer, owner, "uri", cred))
	assert.True(errors.Is(l.Issue("cert-2", issuer, owner, "uri", auth.Credential{Caller: issuer}), certs.ErrUnauthorized))
	require.NoError(t, l.Close())

	l, err = New(cfg)
	require.NoError(t, err)
	defer l.Close()
	cert, err := l.Get("cert-1")
	require.NoError(t, err)
	assert.Equal(owner, cert.Owner)
}

func TestLedgerRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MerkleHash = "md5"
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Auth = "trust-me"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestLedgerRejectsNullStore(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"store": null}`))
	require.NoError(t, err)
	assert.Nil(t, cfg.Store)
	l, err := New(cfg)
	assert.Error(t, err)
	assert.Nil(t, l)
}
