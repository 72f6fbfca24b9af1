package artifacts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. A partial unique index on the
// active column guarantees at most one active row even under concurrent
// activations.
type PGRepo struct {
	DB *sql.DB
}

// Save inserts metadata for a new version.
func (r *PGRepo) Save(ctx context.Context, meta Meta) error {
	const query = `
INSERT INTO model_artifacts (
	version, storage_key, category_classes, component_classes, vocabulary_size, training_rows, active, trained_at, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)`

	_, err := r.DB.ExecContext(ctx, query,
		meta.Version,
		meta.StorageKey,
		meta.CategoryClasses,
		meta.ComponentClasses,
		meta.VocabularySize,
		meta.TrainingRows,
		meta.TrainedAt,
		meta.CreatedAt,
	)
	return err
}

// GetActive returns the active version's metadata.
func (r *PGRepo) GetActive(ctx context.Context) (Meta, error) {
	const query = `
SELECT version, storage_key, category_classes, component_classes, vocabulary_size, training_rows, active, trained_at, created_at
FROM model_artifacts
WHERE active
LIMIT 1`

	meta, err := scanMeta(r.DB.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Meta{}, ErrNotFound
		}
		return Meta{}, err
	}
	return meta, nil
}

// Activate deactivates the current version and activates the given one in a
// single transaction.
func (r *PGRepo) Activate(ctx context.Context, version string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE model_artifacts SET active = FALSE WHERE active`); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE model_artifacts SET active = TRUE WHERE version = $1`, version)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// List returns all versions newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Meta, error) {
	const query = `
SELECT version, storage_key, category_classes, component_classes, vocabulary_size, training_rows, active, trained_at, created_at
FROM model_artifacts
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Meta
	for rows.Next() {
		meta, err := scanMeta(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, meta)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeta(row rowScanner) (Meta, error) {
	var meta Meta
	err := row.Scan(
		&meta.Version,
		&meta.StorageKey,
		&meta.CategoryClasses,
		&meta.ComponentClasses,
		&meta.VocabularySize,
		&meta.TrainingRows,
		&meta.Active,
		&meta.TrainedAt,
		&meta.CreatedAt,
	)
	return meta, err
}

var _ Repo = (*PGRepo)(nil)
