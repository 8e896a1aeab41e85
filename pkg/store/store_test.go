package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/movies"
)

func sampleMovies() movies.Collection {
	return movies.Collection{
		{Title: "A", Year: 2020, Rating: 9.5},
		{Title: "B", Year: 2021, Rating: 8.8},
		{Title: "C", Year: 2020, Rating: 3.6},
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file  string
		check func(t *testing.T, s Store)
	}{
		{"movies.json", func(t *testing.T, s Store) {
			fs, ok := s.(*FileStore)
			require.True(t, ok)
			assert.Equal(t, "json", fs.Codec().Name())
		}},
		{"movies.YAML", func(t *testing.T, s Store) {
			fs, ok := s.(*FileStore)
			require.True(t, ok)
			assert.Equal(t, "yaml", fs.Codec().Name())
		}},
		{"movies.yml", func(t *testing.T, s Store) {
			fs, ok := s.(*FileStore)
			require.True(t, ok)
			assert.Equal(t, "yaml", fs.Codec().Name())
		}},
		{"movies", func(t *testing.T, s Store) {
			fs, ok := s.(*FileStore)
			require.True(t, ok)
			assert.Equal(t, "json", fs.Codec().Name())
		}},
		{"movies.db", func(t *testing.T, s Store) {
			_, ok := s.(*SQLiteStore)
			assert.True(t, ok)
		}},
		{"movies.sqlite3", func(t *testing.T, s Store) {
			_, ok := s.(*SQLiteStore)
			assert.True(t, ok)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			s, err := Open(path)
			require.NoError(t, err)
			defer s.Close()

			assert.Equal(t, path, s.Path())
			tt.check(t, s)
		})
	}
}

// Every backend must round-trip content and order, and treat a missing
// resource as an empty collection.
func TestBackendsRoundTrip(t *testing.T) {
	for _, name := range []string{"movies.json", "movies.yaml", "movies.db"} {
		t.Run(name, func(t *testing.T) {
			s, err := Open(filepath.Join(t.TempDir(), "nested", name))
			require.NoError(t, err)
			defer s.Close()

			empty, err := s.Load()
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			want := sampleMovies()
			require.NoError(t, s.Save(want))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)

			// save(load()) leaves content unchanged
			require.NoError(t, s.Save(got))
			again, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, want, again)

			// overwrite replaces everything
			require.NoError(t, s.Save(movies.Collection{{Title: "Z", Year: 1, Rating: 0}}))
			got, err = s.Load()
			require.NoError(t, err)
			assert.Equal(t, movies.Collection{{Title: "Z", Year: 1, Rating: 0}}, got)

			require.NoError(t, s.Save(nil))
			got, err = s.Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}
