package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQLStore is the MySQL backed Store.
type SQLStore struct {
	db *sqlx.DB
	*queries
}

// queries holds every statement.  It runs against either the pool or a
// transaction, which is how WithTx reuses the read methods.
type queries struct {
	db sqlx.ExtContext
}

// NewSQLStore constructs a SQLStore on top of an open pool.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, queries: &queries{db: db}}
}

// DB exposes the underlying pool.
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

// WithTx runs fn inside a single transaction.
func (s *SQLStore) WithTx(ctx context.Context, fn func(w Writer) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&queries{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// likePattern turns a search term into a case-insensitive substring
// pattern with LIKE wildcards in the term escaped.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// exists reports whether the query returns a row.
func (q *queries) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := sqlx.GetContext(ctx, q.db, &one, query, args...)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, err
}
