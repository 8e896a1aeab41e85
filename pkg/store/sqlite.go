package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/agentstation/moviemap/pkg/constants"
	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS movies (
		position INTEGER PRIMARY KEY,
		title    TEXT,
		year     INTEGER,
		rating   REAL
	)`
	sqliteHasTable = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'movies'`
	sqliteSelect   = `SELECT title, year, rating FROM movies ORDER BY position`
	sqliteInsert   = `INSERT INTO movies(position, title, year, rating) VALUES(?, ?, ?, ?)`
)

// SQLiteStore keeps the collection in one table of a SQLite database file,
// one row per movie, ordered by position. Save rewrites the whole table in a
// single transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
	opts *options
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a store for the database file at path. The file is
// not opened or created until the first Load or Save.
func NewSQLiteStore(path string, opts ...Option) *SQLiteStore {
	return &SQLiteStore{
		path: path,
		opts: newOptions(opts),
	}
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db
	return db, nil
}

// Load reads every row of the movies table. A missing database file, or one
// without the movies table, yields an empty collection.
func (s *SQLiteStore) Load() (movies.Collection, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.opts.logger.Debug().Str("store", s.path).Msg("Store does not exist yet, starting empty")
		return movies.Collection{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}

	var tables int
	if err := db.QueryRow(sqliteHasTable).Scan(&tables); err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}
	if tables == 0 {
		return movies.Collection{}, nil
	}

	rows, err := db.Query(sqliteSelect)
	if err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}
	defer func() { _ = rows.Close() }()

	c := movies.Collection{}
	for i := 0; rows.Next(); i++ {
		var (
			title  sql.NullString
			year   sql.NullInt64
			rating sql.NullFloat64
		)
		if err := rows.Scan(&title, &year, &rating); err != nil {
			return nil, pkgerrors.NewMalformedRecordError(s.path, i, err.Error())
		}
		switch {
		case !title.Valid:
			return nil, pkgerrors.NewMalformedRecordError(s.path, i, `missing field "title"`)
		case !year.Valid:
			return nil, pkgerrors.NewMalformedRecordError(s.path, i, `missing field "year"`)
		case !rating.Valid:
			return nil, pkgerrors.NewMalformedRecordError(s.path, i, `missing field "rating"`)
		}
		c = append(c, movies.Movie{
			Title:  title.String,
			Year:   int(year.Int64),
			Rating: rating.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}

	s.opts.logger.Debug().
		Str("store", s.path).
		Str("format", "sqlite").
		Int("count", len(c)).
		Msg("Loaded movies")
	return c, nil
}

// Save replaces every row of the movies table with c.
func (s *SQLiteStore) Save(c movies.Collection) (retErr error) {
	defer func() {
		retErr = pkgerrors.WrapWrite(s.path, retErr)
	}()

	for i, m := range c {
		if math.IsNaN(m.Rating) || math.IsInf(m.Rating, 0) {
			return fmt.Errorf("entry %d: unsupported rating %v", i, m.Rating)
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return err
		}
	}

	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM movies`); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}

	stmt, err := tx.Prepare(sqliteInsert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, m := range c {
		if _, err := stmt.Exec(i, m.Title, m.Year, m.Rating); err != nil {
			return fmt.Errorf("insert %q: %w", m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.opts.logger.Debug().
		Str("store", s.path).
		Str("format", "sqlite").
		Int("count", len(c)).
		Msg("Saved movies")
	return nil
}

// DB exposes the underlying database handle, opening it if needed.
func (s *SQLiteStore) DB() (*sql.DB, error) {
	return s.open()
}

// Close closes the database handle if one was opened.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
