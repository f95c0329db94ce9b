package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/store"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	N    int    `json:"n"`
}

func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	file, err := store.NewFile(filepath.Join(t.TempDir(), "cms.json"))
	require.NoError(t, err)

	sqlite, err := store.NewSQLite(filepath.Join(t.TempDir(), "cms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	saved := []record{{ID: "a", Name: "first", N: 1}, {ID: "b", Name: "second", N: 2}}

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(ctx, "records", saved))

			var loaded []record
			require.NoError(t, s.Load(ctx, "records", &loaded))
			require.Equal(t, saved, loaded)

			// Overwrite replaces wholesale.
			require.NoError(t, s.Save(ctx, "records", saved[:1]))
			loaded = nil
			require.NoError(t, s.Load(ctx, "records", &loaded))
			require.Equal(t, saved[:1], loaded)
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var dest []record
			err := s.Load(ctx, "never-written", &dest)
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Delete(ctx, "never-written"))
		})
	}
}

func TestDeleteRemovesValue(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(ctx, "k", record{ID: "x"}))
			require.NoError(t, s.Delete(ctx, "k"))

			var dest record
			require.ErrorIs(t, s.Load(ctx, "k", &dest), store.ErrNotFound)
		})
	}
}

func TestLoadOrSubstitutesDefault(t *testing.T) {
	ctx := context.Background()
	def := []record{{ID: "default"}}

	t.Run("missing key", func(t *testing.T) {
		s := store.NewMemory()
		require.Equal(t, def, store.LoadOr(ctx, s, "absent", def))
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cms.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		s, err := store.NewFile(path)
		require.NoError(t, err)
		require.Equal(t, def, store.LoadOr(ctx, s, "records", def))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		s := store.NewMemory()
		require.NoError(t, s.Save(ctx, "records", "just a string"))
		require.Equal(t, def, store.LoadOr(ctx, s, "records", def))
	})

	t.Run("present value wins", func(t *testing.T) {
		s := store.NewMemory()
		saved := []record{{ID: "real"}}
		require.NoError(t, s.Save(ctx, "records", saved))
		require.Equal(t, saved, store.LoadOr(ctx, s, "records", def))
	})
}

func TestFileStoreKeepsSiblingKeys(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewFile(filepath.Join(t.TempDir(), "cms.json"))
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "services", []record{{ID: "svc"}}))
	require.NoError(t, s.Save(ctx, "team", []record{{ID: "member"}}))
	require.NoError(t, s.Delete(ctx, "services"))

	var team []record
	require.NoError(t, s.Load(ctx, "team", &team))
	require.Equal(t, []record{{ID: "member"}}, team)
}

func TestFileStoreRefusesToOverwriteCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cms.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := store.NewFile(path)
	require.NoError(t, err)
	require.Error(t, s.Save(ctx, "records", []record{{ID: "x"}}))
}
