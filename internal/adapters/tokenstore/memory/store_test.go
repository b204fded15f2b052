package memory

import (
	"context"
	"testing"

	"boi-na-nuvem/internal/ports/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok, err := s.Get(ctx, tokenstore.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, tokenstore.KeyToken, "abc"))
	v, ok, err := s.Get(ctx, tokenstore.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Delete(ctx, tokenstore.KeyToken))
	_, ok, _ = s.Get(ctx, tokenstore.KeyToken)
	assert.False(t, ok)

	assert.Error(t, s.Set(ctx, " ", "x"))
}
