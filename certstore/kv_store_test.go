package certstore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/kvdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	issuer = common.HexToAddress("0x8671A6B8d5781Db8920166c77B1D8749704062cF")
	owner  = common.HexToAddress("0x1337")
)

func sampleCert(id string) certs.Certificate {
	return certs.Certificate{
		ID:          id,
		Issuer:      issuer,
		Owner:       owner,
		MetadataURI: "ipfs://meta",
		IssuedAt:    1000,
	}
}

func TestKVStoreRoundTrip(t *testing.T) {
	assert := assert.New(t)
	store := NewKVStore(kvdb.NewMemDatabase())

	_, found, err := store.Get("cert-1")
	assert.NoError(err)
	assert.False(found)

	cert := sampleCert("cert-1")
	require.NoError(t, store.Set(cert))
	has, err := store.Has("cert-1")
	assert.NoError(err)
	assert.True(has)

	got, found, err := store.Get("cert-1")
	assert.NoError(err)
	assert.True(found)
	assert.Equal(cert, got)
	assert.Nil(got.Revocation)

	cert.Revocation = &certs.Revocation{Reason: "policy", RevokedAt: 2000, RevokedBy: issuer}
	require.NoError(t, store.Set(cert))
	got, _, err = store.Get("cert-1")
	assert.NoError(err)
	assert.Equal(cert, got)
	assert.True(got.Revoked())
}

func TestKVStoreCorruptRecord(t *testing.T) {
	db := kvdb.NewMemDatabase()
	require.NoError(t, db.Put(Key("bad"), []byte{0x01, 0x02}))
	_, found, err := NewKVStore(db).Get("bad")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestKVStoreIDs(t *testing.T) {
	assert := assert.New(t)
	db := kvdb.NewMemDatabase()
	store := NewKVStore(db)
	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, store.Set(sampleCert(id)))
	}
	require.NoError(t, db.Put([]byte("unrelated"), []byte("x")))
	ids, err := store.IDs()
	assert.NoError(err)
	assert.Equal([]string{"a", "b", "c"}, ids)
}

func TestKVStoreLevelDBReopen(t *testing.T) {
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "certstore-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "db")

	db, err := kvdb.NewLDBDatabase(file, 0, 0)
	require.NoError(t, err)
	cert := sampleCert("persisted")
	cert.Revocation = &certs.Revocation{Reason: "r", RevokedAt: 5, RevokedBy: issuer}
	require.NoError(t, NewKVStore(db).Set(cert))
	require.NoError(t, db.Close())

	db, err = kvdb.NewLDBDatabase(file, 0, 0)
	require.NoError(t, err)
	defer db.Close()
	got, found, err := NewKVStore(db).Get("persisted")
	assert.NoError(err)
	assert.True(found)
	assert.Equal(cert, got)
}
