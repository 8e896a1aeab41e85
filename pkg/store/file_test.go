package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/movies"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"), nil)

	c, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, movies.Collection{}, c)
}

func TestFileStoreLoadJSON(t *testing.T) {
	path := writeFile(t, "movies.json", `[
  {"title": "The Shawshank Redemption", "year": 1994, "rating": 9.5},
  {"title": "The Room", "year": 2003, "rating": 3.6, "notes": "ignored"},
  {"title": "Titanic", "year": 1997.0, "rating": 9}
]`)

	c, err := NewFileStore(path, JSON).Load()
	require.NoError(t, err)
	assert.Equal(t, movies.Collection{
		{Title: "The Shawshank Redemption", Year: 1994, Rating: 9.5},
		{Title: "The Room", Year: 2003, Rating: 3.6},
		{Title: "Titanic", Year: 1997, Rating: 9},
	}, c)
}

func TestFileStoreLoadYAML(t *testing.T) {
	path := writeFile(t, "movies.yaml", `- title: Pulp Fiction
  year: 1994
  rating: 8.8
- title: "1984"
  year: 1984
  rating: 7
`)

	c, err := NewFileStore(path, YAML).Load()
	require.NoError(t, err)
	assert.Equal(t, movies.Collection{
		{Title: "Pulp Fiction", Year: 1994, Rating: 8.8},
		{Title: "1984", Year: 1984, Rating: 7},
	}, c)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		codec   Codec
		content string
	}{
		{"truncated json", "m.json", JSON, `[{"title": "A", "year": 2020`},
		{"empty json", "m.json", JSON, ``},
		{"trailing data", "m.json", JSON, `[] []`},
		{"not json", "m.json", JSON, `title: A`},
		{"bad yaml", "m.yaml", YAML, "- title: \"unterminated\n  year: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			c, err := NewFileStore(path, tt.codec).Load()
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, pkgerrors.ErrCorruptStore), err.Error())

			var corrupt *pkgerrors.CorruptStoreError
			require.True(t, errors.As(err, &corrupt))
			assert.Equal(t, path, corrupt.Path)
		})
	}
}

func TestFileStoreLoadUnreadable(t *testing.T) {
	// a directory exists but cannot be read as a file
	dir := t.TempDir()

	_, err := NewFileStore(dir, JSON).Load()
	assert.True(t, errors.Is(err, pkgerrors.ErrCorruptStore))
}

func TestFileStoreLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		index   int
		reason  string
	}{
		{"object not list", `{"title": "A", "year": 1, "rating": 1}`, -1, "expected a list of movies"},
		{"null document", `null`, -1, "expected a list of movies"},
		{"element not object", `[{"title": "A", "year": 1, "rating": 1}, "B"]`, 1, "expected an object"},
		{"missing title", `[{"year": 1, "rating": 1}]`, 0, `missing field "title"`},
		{"missing year", `[{"title": "A", "year": 1, "rating": 1}, {"title": "B", "rating": 2}]`, 1, `missing field "year"`},
		{"missing rating", `[{"title": "A", "year": 1}]`, 0, `missing field "rating"`},
		{"title not text", `[{"title": 7, "year": 1, "rating": 1}]`, 0, "title is not text"},
		{"fractional year", `[{"title": "A", "year": 1999.5, "rating": 1}]`, 0, "year is not an integer"},
		{"year out of int range", `[{"title": "A", "year": 1e300, "rating": 1}]`, 0, "year is not an integer"},
		{"rating not number", `[{"title": "A", "year": 1, "rating": "high"}]`, 0, "rating is not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "movies.json", tt.content)

			c, err := NewFileStore(path, JSON).Load()
			require.Error(t, err)
			assert.Nil(t, c)

			var malformed *pkgerrors.MalformedRecordError
			require.True(t, errors.As(err, &malformed), err.Error())
			assert.Equal(t, tt.index, malformed.Index)
			assert.Contains(t, malformed.Reason, tt.reason)
			assert.True(t, pkgerrors.IsStoreError(err))
		})
	}
}

func TestFileStoreLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "movies.yaml", "- title: A\n  rating: 5\n")

	_, err := NewFileStore(path, YAML).Load()
	var malformed *pkgerrors.MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 0, malformed.Index)
	assert.Contains(t, malformed.Reason, `"year"`)
}

func TestFileStoreSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	s := NewFileStore(path, JSON)

	require.NoError(t, s.Save(movies.Collection{{Title: "Heat", Year: 1995, Rating: 8.3}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "title": "Heat",
    "year": 1995,
    "rating": 8.3
  }
]
`, string(data))

	require.NoError(t, s.Save(movies.Collection{}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestFileStoreSaveError(t *testing.T) {
	// the parent "directory" is a regular file, so the write cannot succeed
	parent := writeFile(t, "blocker", "x")
	path := filepath.Join(parent, "movies.json")

	err := NewFileStore(path, JSON).Save(movies.Collection{{Title: "A"}})
	require.Error(t, err)

	var writeErr *pkgerrors.StoreWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, path, writeErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestFileStoreLogs(t *testing.T) {
	tl := logging.NewTestLogger(t)
	path := filepath.Join(t.TempDir(), "movies.json")
	s := NewFileStore(path, JSON, WithLogger(tl.Logger))

	require.NoError(t, s.Save(sampleMovies()))
	_, err := s.Load()
	require.NoError(t, err)

	tl.AssertContains(t, "Saved movies")
	tl.AssertContains(t, "Loaded movies")
	tl.AssertContains(t, `"count":3`)
}
