// Package moviemap provides the main entry point for the moviemap movie
// catalog. It opens a store for a database path, wraps it in a catalog and
// hands both back behind a small Client interface.
//
// Example usage:
//
//	mm, err := moviemap.New(moviemap.WithDatabasePath("movies.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mm.Close()
//
//	if err := mm.Catalog().AddMovie("Heat", 1995, 8.3); err != nil {
//	    log.Fatal(err)
//	}
//
//	all, err := mm.Catalog().Movies()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats, err := catalog.Statistics(all)
package moviemap

import (
	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/store"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client gives access to a catalog and the store behind it.
type Client interface {
	// Catalog returns the catalog bound to the client's store.
	Catalog() *catalog.Catalog

	// Store returns the backing store.
	Store() store.Store

	// Close releases the store.
	Close() error
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	store   store.Store
	catalog *catalog.Catalog
	owned   bool // store was opened by New and is closed by Close
}

// New creates a Client. Without WithStore the store is opened from the
// database path, choosing the backend from its extension.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	c := &client{options: o, store: o.store}
	if c.store == nil {
		if c.store, err = store.Open(o.databasePath, store.WithLogger(o.logger)); err != nil {
			return nil, errors.NewConfigError("database", "cannot open store", err)
		}
		c.owned = true
	}

	c.catalog = catalog.New(c.store,
		catalog.WithDuplicatePolicy(o.duplicatePolicy),
		catalog.WithLogger(o.logger),
	)

	o.logger.Debug().
		Str("store", c.store.Path()).
		Str("duplicate_policy", string(o.duplicatePolicy)).
		Msg("Client created")

	return c, nil
}

// Catalog returns the catalog bound to the client's store.
func (c *client) Catalog() *catalog.Catalog {
	return c.catalog
}

// Store returns the backing store.
func (c *client) Store() store.Store {
	return c.store
}

// Close closes the store when New opened it. A store passed in with
// WithStore stays open and belongs to the caller.
func (c *client) Close() error {
	if !c.owned {
		return nil
	}
	return c.store.Close()
}
