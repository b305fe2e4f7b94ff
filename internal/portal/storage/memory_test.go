package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_CopiesValues(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'z'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[1] = 'z'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStorage_UpdateSetAfterDelete(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k", []byte("v1")))

	err := m.Update(ctx, func(ctx context.Context, tx Storage) error {
		require.NoError(t, tx.Delete(ctx, "k"))
		v, err := tx.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, v)
		return tx.Set(ctx, "k", []byte("v2"))
	})
	require.NoError(t, err)

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}
