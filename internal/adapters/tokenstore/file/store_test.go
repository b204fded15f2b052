package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"boi-na-nuvem/internal/ports/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, tokenstore.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, tokenstore.KeyToken, "jwt-1"))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, tokenstore.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt-1", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, tokenstore.KeyToken, "jwt-1"))
	require.NoError(t, s.Delete(ctx, tokenstore.KeyToken))
	require.NoError(t, s.Delete(ctx, "missing"))

	_, ok, err := s.Get(ctx, tokenstore.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), tokenstore.KeyToken)
	assert.Error(t, err)
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("  ")
	assert.Error(t, err)
}
