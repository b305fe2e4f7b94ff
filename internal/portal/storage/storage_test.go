package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations returns a fresh instance of every Storage implementation.
func implementations(t *testing.T) map[string]Storage {
	t.Helper()

	sqlite, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Storage{
		"sqlite": sqlite,
		"memory": NewMemoryStorage(),
	}
}

func TestStorage_SetGetDelete(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			v, err := s.Get(ctx, "absent")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, s.Set(ctx, "k", []byte("old")))
			require.NoError(t, s.Set(ctx, "k", []byte("new")))

			v, err = s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("new"), v)

			require.NoError(t, s.Delete(ctx, "k"))
			v, err = s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Nil(t, v)

			// deleting again is fine
			require.NoError(t, s.Delete(ctx, "k"))
		})
	}
}

func TestStorage_UpdateCommits(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "gone", []byte("x")))

			err := s.Update(ctx, func(ctx context.Context, tx Storage) error {
				if err := tx.Set(ctx, "a", []byte("1")); err != nil {
					return err
				}
				v, err := tx.Get(ctx, "a")
				if err != nil {
					return err
				}
				assert.Equal(t, []byte("1"), v, "writes are visible inside the update")
				return tx.Delete(ctx, "gone")
			})
			require.NoError(t, err)

			v, err := s.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), v)

			v, err = s.Get(ctx, "gone")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStorage_UpdateRollsBack(t *testing.T) {
	boom := errors.New("boom")

	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "kept", []byte("before")))

			err := s.Update(ctx, func(ctx context.Context, tx Storage) error {
				require.NoError(t, tx.Set(ctx, "kept", []byte("after")))
				require.NoError(t, tx.Set(ctx, "new", []byte("x")))
				return boom
			})
			require.ErrorIs(t, err, boom)

			v, err := s.Get(ctx, "kept")
			require.NoError(t, err)
			assert.Equal(t, []byte("before"), v)

			v, err = s.Get(ctx, "new")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStorage_NestedUpdateSharesTransaction(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			err := s.Update(ctx, func(ctx context.Context, tx Storage) error {
				return tx.Update(ctx, func(ctx context.Context, inner Storage) error {
					return inner.Set(ctx, "nested", []byte("ok"))
				})
			})
			require.NoError(t, err)

			v, err := s.Get(ctx, "nested")
			require.NoError(t, err)
			assert.Equal(t, []byte("ok"), v)
		})
	}
}
