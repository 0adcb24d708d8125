// Package sqlite stores extraction output in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const sinkName = "sqlite"

type (
	Metrics interface {
		Observe(operation, sink string, err error, started time.Time)
	}
)

type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens (or creates) the SQLite file at path and creates any
// missing table.
func NewRepository(ctx context.Context, path string, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if err := applyMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer; a pool only adds lock contention.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// execBatch runs query once per row inside a single transaction.
func execBatch[T any](ctx context.Context, r *Repository, operation, query string, rows []T, args func(T) ([]any, error)) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operation, sinkName, err, started)
	}()

	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", operation, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", operation, err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, row := range rows {
		var values []any
		if values, err = args(row); err != nil {
			return fmt.Errorf("%s: %w", operation, err)
		}
		if _, err = stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("%s: exec: %w", operation, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", operation, err)
	}
	return nil
}
