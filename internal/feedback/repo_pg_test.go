package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{
		ID:               "rec-1",
		UserText:         "pc randomly restarts during games",
		PredictedLabel:   "PSU Upgrade",
		Confidence:       0.82,
		UserCorrectLabel: "RAM Upgrade",
		Source:           "rule",
		Channel:          ChannelUser,
		NeedsReview:      true,
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO feedback_records").
		WithArgs(
			rec.ID,
			rec.UserText,
			rec.PredictedLabel,
			rec.Confidence,
			rec.UserCorrectLabel,
			rec.Source,
			rec.Channel,
			rec.NeedsReview,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAppendNullCorrection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{
		ID:             "rec-2",
		UserText:       "no sound in zoom calls",
		PredictedLabel: "Audio Issue",
		Confidence:     0.93,
		Source:         "hierarchical_ml",
		Channel:        ChannelAutoLowConfidence,
		CreatedAt:      time.Now().UTC(),
	}

	// An absent correction must be stored as NULL, not an empty string.
	mock.ExpectExec("INSERT INTO feedback_records").
		WithArgs(
			rec.ID,
			rec.UserText,
			rec.PredictedLabel,
			rec.Confidence,
			nil,
			rec.Source,
			rec.Channel,
			rec.NeedsReview,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoReadAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_text", "predicted_label", "confidence", "user_correct_label", "source", "channel", "needs_review", "created_at",
	}).
		AddRow("rec-1", "pc slow", "RAM Upgrade", 0.9, nil, "rule", ChannelUser, false, now).
		AddRow("rec-2", "screen flickers", "Display Cable Replacement", 0.4, "Monitor Replacement", "hierarchical_ml", ChannelUser, true, now)

	mock.ExpectQuery("SELECT id, user_text, predicted_label").WillReturnRows(rows)

	got, err := repo.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].UserCorrectLabel != "" {
		t.Errorf("record 0 correction = %q, want empty", got[0].UserCorrectLabel)
	}
	if got[1].UserCorrectLabel != "Monitor Replacement" || !got[1].NeedsReview {
		t.Errorf("record 1 = %+v, want correction with needs_review", got[1])
	}
	if got[1].Source != "hierarchical_ml" || got[1].Channel != ChannelUser {
		t.Errorf("record 1 source/channel = %q/%q, want hierarchical_ml/%q", got[1].Source, got[1].Channel, ChannelUser)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 7 {
		t.Errorf("count = %d, want 7", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
