package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap"
	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/movies"
	"github.com/agentstation/moviemap/pkg/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	isolate(t)

	app, err := New("1.0.0", "abc123", "2026-01-01", "test", WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })
	return app
}

// execute runs args against a fresh root command and returns stdout and
// stderr.
func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := app.createRootCommand()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	require.NotNil(t, app.Config())
	assert.Equal(t, "movie_database.json", app.Config().Database)
}

func TestApp_WithConfigValidates(t *testing.T) {
	_, err := New("dev", "", "", "", WithConfig(&Config{Database: "x.json", DuplicatePolicy: "fuzzy"}))
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestApp_Client_Singleton(t *testing.T) {
	app := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	clients := make([]moviemap.Client, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := app.Client()
			assert.NoError(t, err)
			clients[idx] = c
		}(i)
	}
	wg.Wait()

	for _, c := range clients[1:] {
		assert.Same(t, clients[0], c)
	}
}

func TestApp_WithClient(t *testing.T) {
	isolate(t)
	s := store.NewMemoryStore(movies.Collection{{Title: "Heat", Year: 1995, Rating: 8.3}})
	client, err := moviemap.New(moviemap.WithStore(s))
	require.NoError(t, err)

	app, err := New("dev", "", "", "", WithClient(client))
	require.NoError(t, err)

	out, _, err := execute(t, app, "list", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Heat"`)
}

func TestCLIScenario(t *testing.T) {
	app := newTestApp(t)
	db := filepath.Join(t.TempDir(), "catalog", "movies.json")

	for _, args := range [][]string{
		{"add", "A", "2020", "9.5"},
		{"add", "B", "2019", "8.8"},
		{"add", "C", "2021", "3.6"},
	} {
		_, _, err := execute(t, app, append(args, "-d", db)...)
		require.NoError(t, err)
	}

	out, _, err := execute(t, app, "sort", "-d", db, "-o", "json")
	require.NoError(t, err)
	var rated []movies.RatedTitle
	require.NoError(t, json.Unmarshal([]byte(out), &rated))
	assert.Equal(t, []movies.RatedTitle{
		{Title: "A", Rating: 9.5},
		{Title: "B", Rating: 8.8},
		{Title: "C", Rating: 3.6},
	}, rated)

	out, _, err = execute(t, app, "filter", "-d", db, "-o", "json",
		"--min-rating", "5", "--start-year", "2020", "--end-year", "2020")
	require.NoError(t, err)
	var filtered movies.Collection
	require.NoError(t, json.Unmarshal([]byte(out), &filtered))
	assert.Equal(t, movies.Collection{{Title: "A", Year: 2020, Rating: 9.5}}, filtered)

	out, _, err = execute(t, app, "search", "b", "-d", db, "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title": "B", "rating": 8.8}]`, out)

	_, _, err = execute(t, app, "delete", "A", "-d", db)
	require.NoError(t, err)

	data, err := os.ReadFile(db)
	require.NoError(t, err)
	var stored movies.Collection
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, movies.Collection{
		{Title: "B", Year: 2019, Rating: 8.8},
		{Title: "C", Year: 2021, Rating: 3.6},
	}, stored)
}

func TestCLIBackends(t *testing.T) {
	for _, name := range []string{"movies.yaml", "movies.db"} {
		t.Run(name, func(t *testing.T) {
			app := newTestApp(t)
			db := filepath.Join(t.TempDir(), name)

			_, _, err := execute(t, app, "add", "Alien", "1979", "8.5", "-d", db)
			require.NoError(t, err)

			out, _, err := execute(t, app, "list", "-d", db, "-o", "json")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"title": "Alien", "year": 1979, "rating": 8.5}]`, out)
		})
	}
}

func TestCLIDuplicatePolicyFromConfigFile(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "movies.json")
	cfg := filepath.Join(dir, "moviemap.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("database: "+db+"\nduplicate_policy: substring\n"), 0o644))

	_, _, err := execute(t, app, "add", "Aliens", "1986", "8.4", "--config", cfg)
	require.NoError(t, err)

	_, _, err = execute(t, app, "add", "Alien", "1979", "8.5", "--config", cfg)
	assert.True(t, pkgerrors.IsAlreadyExists(err))
}

func TestCLIErrors(t *testing.T) {
	app := newTestApp(t)
	db := filepath.Join(t.TempDir(), "movies.json")

	_, _, err := execute(t, app, "stats", "-d", db)
	assert.True(t, pkgerrors.IsEmptyCollection(err))

	_, _, err = execute(t, app, "update", "Ghost", "5", "-d", db)
	assert.True(t, pkgerrors.IsNotFound(err))

	require.NoError(t, os.WriteFile(db, []byte("{not json"), 0o644))
	_, _, err = execute(t, app, "list", "-d", db)
	assert.True(t, pkgerrors.IsStoreError(err))
	assert.False(t, pkgerrors.IsRecoverable(err))

	_, _, err = execute(t, app, "list", "-o", "xml")
	assert.True(t, pkgerrors.IsConfigError(err))
	assert.False(t, pkgerrors.IsRecoverable(err))

	_, _, err = execute(t, app, "list", "--duplicate-policy", "bogus")
	assert.True(t, pkgerrors.IsConfigError(err))
	assert.False(t, pkgerrors.IsRecoverable(err))
}

func TestVersionCommand(t *testing.T) {
	app := newTestApp(t)

	out, _, err := execute(t, app, "version")
	require.NoError(t, err)
	assert.Equal(t, "moviemap 1.0.0\n", out)

	out, _, err = execute(t, app, "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:   abc123")
}

func TestApp_ClientFollowsDatabaseFlag(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	_, _, err := execute(t, app, "add", "Heat", "1995", "8.3", "-d", first)
	require.NoError(t, err)

	out, _, err := execute(t, app, "list", "-d", second, "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}
