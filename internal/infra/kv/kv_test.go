//go:build unit

package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"barber-agenda/internal/infra/kv"
	"barber-agenda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providers under test share one behavioral contract
func providers(t *testing.T) map[string]kv.Store {
	t.Helper()

	file, err := kv.NewFile(t.TempDir())
	require.NoError(t, err)

	bolt, err := kv.OpenBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]kv.Store{
		"memory": kv.NewMemory(),
		"file":   file,
		"bolt":   bolt,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range providers(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("missing key reports absent without error", func(t *testing.T) {
				_, ok, err := s.Get("nothing")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("set then get round-trips", func(t *testing.T) {
				require.NoError(t, s.Set("barber_clients", `[{"id":"c1"}]`))
				v, ok, err := s.Get("barber_clients")
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, `[{"id":"c1"}]`, v)
			})

			t.Run("set overwrites", func(t *testing.T) {
				require.NoError(t, s.Set("k", "one"))
				require.NoError(t, s.Set("k", "two"))
				v, _, err := s.Get("k")
				require.NoError(t, err)
				assert.Equal(t, "two", v)
			})

			t.Run("delete removes, deleting absent is fine", func(t *testing.T) {
				require.NoError(t, s.Set("gone", "x"))
				require.NoError(t, s.Delete("gone"))
				_, ok, err := s.Get("gone")
				require.NoError(t, err)
				assert.False(t, ok)
				assert.NoError(t, s.Delete("gone"))
			})
		})
	}
}

func TestFileProvider(t *testing.T) {
	t.Run("values survive reopening the directory", func(t *testing.T) {
		dir := t.TempDir()

		first, err := kv.NewFile(dir)
		require.NoError(t, err)
		require.NoError(t, first.Set("barber_settings", `{"shopName":"Zé"}`))

		second, err := kv.NewFile(dir)
		require.NoError(t, err)
		v, ok, err := second.Get("barber_settings")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"shopName":"Zé"}`, v)
	})

	t.Run("write failure carries StorageError", func(t *testing.T) {
		dir := t.TempDir()
		f, err := kv.NewFile(dir)
		require.NoError(t, err)

		// turning the target path into a directory makes the rename fail
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "blocked.json"), 0o755))
		err = f.Set("blocked", "value")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestBoltProvider(t *testing.T) {
	t.Run("values survive reopening the database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agenda.db")

		first, err := kv.OpenBolt(path)
		require.NoError(t, err)
		require.NoError(t, first.Set("barber_appointments", "[]"))
		require.NoError(t, first.Close())

		second, err := kv.OpenBolt(path)
		require.NoError(t, err)
		defer func() { _ = second.Close() }()

		v, ok, err := second.Get("barber_appointments")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "[]", v)
	})
}
