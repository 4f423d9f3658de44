package fs_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	deplistfs "go.trai.ch/deplist/internal/adapters/fs"
)

func TestHasher_HashFile_MatchesHashBytes(t *testing.T) {
	content := []byte("|depends| depends\n=================\nfoo1.2\n")
	path := filepath.Join(t.TempDir(), "depends.rst")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	h := deplistfs.NewHasher()
	fileHash, err := h.HashFile(path)
	require.NoError(t, err)

	assert.Equal(t, h.HashBytes(content), fileHash)
}

func TestHasher_HashBytes_DetectsChanges(t *testing.T) {
	h := deplistfs.NewHasher()

	assert.NotEqual(t, h.HashBytes([]byte("foo1.2\n")), h.HashBytes([]byte("foo1.3\n")))
	assert.Equal(t, h.HashBytes([]byte("foo1.2\n")), h.HashBytes([]byte("foo1.2\n")))
}

func TestHasher_HashFile_Missing(t *testing.T) {
	_, err := deplistfs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
