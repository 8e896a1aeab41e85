package moviemap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/pkg/catalog"
	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/movies"
	"github.com/agentstation/moviemap/pkg/store"
)

func TestNewWithDatabasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")

	mm, err := moviemap.New(moviemap.WithDatabasePath(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mm.Close() })

	assert.Equal(t, path, mm.Store().Path())
	assert.Equal(t, catalog.DuplicateExact, mm.Catalog().Policy())

	require.NoError(t, mm.Catalog().AddMovie("Heat", 1995, 8.3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Heat"`)
}

func TestNewSelectsBackendByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"movies.json", "movies.yaml", "movies.db"} {
		t.Run(name, func(t *testing.T) {
			mm, err := moviemap.New(moviemap.WithDatabasePath(filepath.Join(dir, name)))
			require.NoError(t, err)
			defer mm.Close()

			require.NoError(t, mm.Catalog().AddMovie("Alien", 1979, 8.5))
			got, err := mm.Catalog().Movies()
			require.NoError(t, err)
			assert.Equal(t, movies.Collection{{Title: "Alien", Year: 1979, Rating: 8.5}}, got)
		})
	}
}

func TestNewWithStore(t *testing.T) {
	s := store.NewMemoryStore(movies.Collection{{Title: "Aliens", Year: 1986, Rating: 8.4}})
	tl := logging.NewTestLogger(t)

	mm, err := moviemap.New(
		moviemap.WithStore(s),
		moviemap.WithDuplicatePolicy(catalog.DuplicateSubstring),
		moviemap.WithLogger(tl.Logger),
	)
	require.NoError(t, err)

	assert.Same(t, s, mm.Store())
	assert.True(t, pkgerrors.IsAlreadyExists(mm.Catalog().AddMovie("Alien", 1979, 8.5)))
	tl.AssertContains(t, "Client created")

	require.NoError(t, mm.Close())
	assert.True(t, s.Exists())
}

func TestNewOptionErrors(t *testing.T) {
	_, err := moviemap.New(moviemap.WithDatabasePath(""))
	assert.True(t, pkgerrors.IsValidationError(err))

	_, err = moviemap.New(moviemap.WithDuplicatePolicy("fuzzy"))
	assert.True(t, pkgerrors.IsValidationError(err))
}
