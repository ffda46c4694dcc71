package kvdb

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLDB(t *testing.T) (file string, cleanup func()) {
	dir, err := ioutil.TempDir("", "kvdb-test")
	require.NoError(t, err)
	return filepath.Join(dir, "db"), func() { os.RemoveAll(dir) }
}

func TestLDBDatabase(t *testing.T) {
	assert := assert.New(t)
	file, cleanup := newTestLDB(t)
	defer cleanup()

	db, err := NewLDBDatabase(file, 0, 0)
	require.NoError(t, err)
	assert.Equal(file, db.Path())
	testDatabase(assert, db)
	assert.NoError(db.Close())

	db, err = NewLDBDatabase(file, 0, 0)
	require.NoError(t, err)
	defer db.Close()
	v, err := db.Get([]byte("cert/b"))
	assert.NoError(err)
	assert.Equal([]byte("2"), v)
}
