// Package mysql provides a collection bound to a database handle. Despite the
// name it works with any database/sql driver; the MySQL flavour is the one the
// error formatting was first written for.
//
// Fetch failures are not returned as errors. They are logged, kept for
// LastError and reported through a false second return value.
package mysql

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/conduit-lang/modler/internal/orm/collection"
)

// Preparer is satisfied by *sql.DB, *sql.Tx and *sql.Conn
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Row is a single result row keyed by column name
type Row = map[string]any

// Collection is a collection.Collection with a database handle
type Collection struct {
	*collection.Collection

	db        Preparer
	logger    *zap.Logger
	lastError string
}

// Option configures a Collection
type Option func(*Collection)

// WithLogger sets the logger used to report fetch failures
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty collection that fetches through db
func New(db Preparer, opts ...Option) *Collection {
	c := &Collection{
		Collection: collection.New(),
		db:         db,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDB replaces the database handle
func (c *Collection) SetDB(db Preparer) {
	c.db = db
}

// DB returns the database handle
func (c *Collection) DB() Preparer {
	return c.db
}

// LastError returns the formatted message of the most recent failure
func (c *Collection) LastError() string {
	return c.lastError
}

// Fetch prepares query, executes it with params and returns every row.
// An empty result is an empty slice. On failure it returns nil and false.
func (c *Collection) Fetch(ctx context.Context, query string, params []any) ([]Row, bool) {
	stmt, err := c.db.PrepareContext(ctx, query)
	if err != nil {
		c.fail(query, "prepare", err)
		return nil, false
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, params...)
	if err != nil {
		c.fail(query, "execute", err)
		return nil, false
	}
	defer rows.Close()

	results, err := scanRows(rows)
	if err != nil {
		c.fail(query, "scan", err)
		return nil, false
	}

	return results, true
}

// FetchOne is Fetch returning only the first row, or nil when there is none
func (c *Collection) FetchOne(ctx context.Context, query string, params []any) (Row, bool) {
	rows, ok := c.Fetch(ctx, query, params)
	if !ok {
		return nil, false
	}
	if len(rows) == 0 {
		return nil, true
	}
	return rows[0], true
}

// Populate fetches rows and adds build(row) for each of them. A nil build
// adds the rows themselves.
func (c *Collection) Populate(ctx context.Context, query string, params []any, build func(Row) any) bool {
	rows, ok := c.Fetch(ctx, query, params)
	if !ok {
		return false
	}

	for _, row := range rows {
		if build == nil {
			c.Add(row)
			continue
		}
		c.Add(build(row))
	}
	return true
}

// Filter returns a new database collection sharing this handle
func (c *Collection) Filter(fn func(item any) bool) *Collection {
	return &Collection{
		Collection: c.Collection.Filter(fn),
		db:         c.db,
		logger:     c.logger,
	}
}

func (c *Collection) fail(query, stage string, err error) {
	c.lastError = FormatError(err)
	c.logger.Error(c.lastError,
		zap.String("stage", stage),
		zap.String("query", query),
		zap.Error(err),
	)
}
