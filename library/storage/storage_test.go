package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/common"
)

func TestWriteAndRead(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	ref, err := store.Write([]byte("hello"))
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	data, err := store.Read(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestWriteCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "content")
	store := NewBlobStore(root)

	ref, err := store.Write([]byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, ref))
	assert.NoError(t, err)
}

func TestWriteGeneratesUniqueRefs(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	first, err := store.Write([]byte("a"))
	require.NoError(t, err)
	second, err := store.Write([]byte("a"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestReadMissing(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	_, err := store.Read("no-such-ref")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestWriteRefAndPath(t *testing.T) {
	root := t.TempDir()
	store := NewBlobStore(root)

	require.NoError(t, store.WriteRef("abc_100", []byte("variant")))
	assert.Equal(t, filepath.Join(root, "abc_100"), store.Path("abc_100"))
	assert.True(t, store.Exists("abc_100"))
	assert.False(t, store.Exists("abc_250"))

	data, err := store.Read("abc_100")
	require.NoError(t, err)
	assert.Equal(t, []byte("variant"), data)
}
