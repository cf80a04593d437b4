package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_PutGetDelete(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	key := "9f2c1d3e4b5a6789"

	require.NoError(t, store.Put(key, []byte("contract body")))

	data, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("contract body"), data)

	require.NoError(t, store.Delete(key))

	_, err = store.Get(key)
	assert.Error(t, err)
}

func TestLocal_ShardsByKeyPrefix(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocal(root)
	require.NoError(t, err)

	require.NoError(t, store.Put("abcdef", []byte("x")))

	_, err = os.Stat(filepath.Join(root, "ab", "abcdef"))
	assert.NoError(t, err)
}

func TestLocal_RejectsUnsafeKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "a", "../../etc/passwd", "a/b", `a\b`, "a.b"} {
		assert.Error(t, store.Put(key, []byte("x")), "key %q should be rejected", key)
	}
}

func TestLocal_DeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("abcdef"))
}
