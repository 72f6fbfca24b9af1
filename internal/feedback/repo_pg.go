package feedback

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts a new feedback record.
func (r *PGRepo) Append(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO feedback_records (
	id, user_text, predicted_label, confidence, user_correct_label, source, channel, needs_review, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var correction any
	if rec.UserCorrectLabel != "" {
		correction = rec.UserCorrectLabel
	}
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserText,
		rec.PredictedLabel,
		rec.Confidence,
		correction,
		rec.Source,
		rec.Channel,
		rec.NeedsReview,
		rec.CreatedAt,
	)
	return err
}

// ReadAll returns every feedback record oldest-first.
func (r *PGRepo) ReadAll(ctx context.Context) ([]Record, error) {
	const query = `
SELECT id, user_text, predicted_label, confidence, user_correct_label, source, channel, needs_review, created_at
FROM feedback_records
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var correction sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.UserText,
			&rec.PredictedLabel,
			&rec.Confidence,
			&correction,
			&rec.Source,
			&rec.Channel,
			&rec.NeedsReview,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if correction.Valid {
			rec.UserCorrectLabel = correction.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the total number of feedback records.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback_records`).Scan(&n)
	return n, err
}

var _ Repo = (*PGRepo)(nil)
