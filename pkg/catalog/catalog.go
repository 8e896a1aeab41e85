// Package catalog holds the movie operations built on top of a store.
//
// Mutators (AddMovie, UpdateMovie, DeleteMovie) are each one transaction:
// load the full collection from the store, change it, save it back. Nothing
// is cached between calls. Queries (Statistics, Search, Filter, ...) are
// package functions over a collection supplied by the caller and never touch
// the store.
//
// There is no locking around the load/save cycle. Two mutators running at the
// same time against the same store race, and the later save silently
// overwrites the earlier one. Callers must serialise access to a store.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/movies"
	"github.com/agentstation/moviemap/pkg/store"
)

// DuplicatePolicy decides which existing titles block an insert.
type DuplicatePolicy string

const (
	// DuplicateExact rejects a title equal to an existing title.
	DuplicateExact DuplicatePolicy = "exact"

	// DuplicateSubstring rejects a title contained in any existing title.
	// "Alien" is rejected when "Aliens" is stored, but "Aliens" is accepted
	// when only "Alien" is stored.
	DuplicateSubstring DuplicatePolicy = "substring"

	// DuplicateNone accepts every insert.
	DuplicateNone DuplicatePolicy = "none"
)

// ParseDuplicatePolicy converts a configuration value to a DuplicatePolicy.
// The empty string selects DuplicateExact.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DuplicateExact, nil
	case DuplicateExact, DuplicateSubstring, DuplicateNone:
		return p, nil
	default:
		return "", errors.NewValidationError("duplicate_policy", s,
			fmt.Sprintf("unknown policy %q: must be one of exact, substring, none", s))
	}
}

// conflict returns the stored title that blocks title under p, if any.
func (p DuplicatePolicy) conflict(c movies.Collection, title string) (string, bool) {
	for _, m := range c {
		switch p {
		case DuplicateExact:
			if m.Title == title {
				return m.Title, true
			}
		case DuplicateSubstring:
			if strings.Contains(m.Title, title) {
				return m.Title, true
			}
		}
	}
	return "", false
}

// Catalog runs load-mutate-save transactions against a store.
type Catalog struct {
	store  store.Store
	policy DuplicatePolicy
	logger *zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDuplicatePolicy sets the rule AddMovie uses to reject duplicates.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *Catalog) {
		c.policy = p
	}
}

// WithLogger sets the logger for mutation diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a catalog over s.
func New(s store.Store, opts ...Option) *Catalog {
	c := &Catalog{
		store:  s,
		policy: DuplicateExact,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the backing store.
func (c *Catalog) Store() store.Store {
	return c.store
}

// Policy returns the duplicate policy in effect.
func (c *Catalog) Policy() DuplicatePolicy {
	return c.policy
}

// Movies loads the current collection.
func (c *Catalog) Movies() (movies.Collection, error) {
	return c.store.Load()
}

// AddMovie appends a movie. It returns a DuplicateMovieError when the
// catalog's duplicate policy rejects the title.
func (c *Catalog) AddMovie(title string, year int, rating float64) error {
	current, err := c.store.Load()
	if err != nil {
		return err
	}

	if existing, found := c.policy.conflict(current, title); found {
		return errors.NewDuplicateMovieError(title, existing)
	}

	current = append(current, movies.Movie{Title: title, Year: year, Rating: rating})
	if err := c.store.Save(current); err != nil {
		return err
	}

	c.logger.Debug().
		Str("title", title).
		Int("year", year).
		Float64("rating", rating).
		Msg("Movie added")
	return nil
}

// UpdateMovie sets the rating of the first movie whose title equals title.
// Later movies with the same title are left untouched.
func (c *Catalog) UpdateMovie(title string, rating float64) error {
	current, err := c.store.Load()
	if err != nil {
		return err
	}

	i := current.IndexOf(title)
	if i < 0 {
		return errors.NewMovieNotFoundError(title)
	}
	current[i].Rating = rating

	if err := c.store.Save(current); err != nil {
		return err
	}

	c.logger.Debug().
		Str("title", title).
		Float64("rating", rating).
		Msg("Movie updated")
	return nil
}

// DeleteMovie removes every movie whose title equals title.
func (c *Catalog) DeleteMovie(title string) error {
	current, err := c.store.Load()
	if err != nil {
		return err
	}

	kept := current[:0:0]
	for _, m := range current {
		if m.Title != title {
			kept = append(kept, m)
		}
	}
	removed := len(current) - len(kept)
	if removed == 0 {
		return errors.NewMovieNotFoundError(title)
	}

	if err := c.store.Save(kept); err != nil {
		return err
	}

	c.logger.Debug().
		Str("title", title).
		Int("removed", removed).
		Msg("Movie deleted")
	return nil
}
