package artifacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	meta := Meta{
		Version:          "v1",
		StorageKey:       "artifacts/v1.json",
		CategoryClasses:  6,
		ComponentClasses: 21,
		VocabularySize:   4210,
		TrainingRows:     150,
		TrainedAt:        time.Now().UTC(),
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO model_artifacts").
		WithArgs(
			meta.Version,
			meta.StorageKey,
			meta.CategoryClasses,
			meta.ComponentClasses,
			meta.VocabularySize,
			meta.TrainingRows,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), meta); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoActivateFlipsPointerTransactionally(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE model_artifacts SET active = FALSE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE model_artifacts SET active = TRUE").
		WithArgs("v2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Activate(context.Background(), "v2"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoActivateUnknownVersionRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE model_artifacts SET active = FALSE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE model_artifacts SET active = TRUE").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Activate(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetActiveMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT version, storage_key").
		WillReturnRows(sqlmock.NewRows([]string{
			"version", "storage_key", "category_classes", "component_classes",
			"vocabulary_size", "training_rows", "active", "trained_at", "created_at",
		}))

	if _, err := repo.GetActive(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
