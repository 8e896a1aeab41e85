package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentstation/moviemap/pkg/constants"
	pkgerrors "github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

// FileStore keeps the collection in a single human-readable file.
//
// Save truncates and rewrites the file in place. There is no temp-file swap,
// so a write that fails part way leaves the file holding old content, new
// content, or a mix of both.
type FileStore struct {
	path  string
	codec Codec
	opts  *options
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store for path using codec. A nil codec means JSON.
func NewFileStore(path string, codec Codec, opts ...Option) *FileStore {
	if codec == nil {
		codec = JSON
	}
	return &FileStore{
		path:  path,
		codec: codec,
		opts:  newOptions(opts),
	}
}

// Path returns the file path.
func (s *FileStore) Path() string {
	return s.path
}

// Codec returns the file format.
func (s *FileStore) Codec() Codec {
	return s.codec
}

// Load reads and validates the whole file.
func (s *FileStore) Load() (movies.Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.opts.logger.Debug().Str("store", s.path).Msg("Store does not exist yet, starting empty")
		return movies.Collection{}, nil
	}
	if err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}

	raw, err := s.codec.Decode(data)
	if err != nil {
		return nil, pkgerrors.NewCorruptStoreError(s.path, err)
	}

	c, err := toCollection(s.path, raw)
	if err != nil {
		return nil, err
	}

	s.opts.logger.Debug().
		Str("store", s.path).
		Str("format", s.codec.Name()).
		Int("count", len(c)).
		Msg("Loaded movies")
	return c, nil
}

// Save replaces the file content with c.
func (s *FileStore) Save(c movies.Collection) error {
	if c == nil {
		c = movies.Collection{}
	}

	data, err := s.codec.Marshal(c)
	if err != nil {
		return pkgerrors.WrapWrite(s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return pkgerrors.WrapWrite(s.path, err)
		}
	}

	if err := os.WriteFile(s.path, data, constants.FilePermissions); err != nil {
		return pkgerrors.WrapWrite(s.path, err)
	}

	s.opts.logger.Debug().
		Str("store", s.path).
		Str("format", s.codec.Name()).
		Int("count", len(c)).
		Msg("Saved movies")
	return nil
}

// Close is a no-op; the file is opened only for the duration of each call.
func (s *FileStore) Close() error {
	return nil
}
