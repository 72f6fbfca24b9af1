package artifacts

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"hardware-advisor/internal/classify"
	"hardware-advisor/internal/shared/storage/object"
	"hardware-advisor/internal/shared/telemetry"
)

const blobPrefix = "artifacts"

// Service publishes and loads artifact versions, pairing the blob store with
// the metadata repo.
type Service struct {
	Repo  Repo
	Blobs object.BlobStore
	Now   func() time.Time
}

// NewService wires an artifact service.
func NewService(repo Repo, blobs object.BlobStore) *Service {
	return &Service{Repo: repo, Blobs: blobs, Now: time.Now}
}

// Publish stores a freshly trained artifact and activates it. The blob is
// written before the metadata row, so a half-published version is never
// activatable. Previous versions remain stored for rollback.
func (s *Service) Publish(ctx context.Context, a *classify.Artifact) (Meta, error) {
	data, err := classify.EncodeArtifact(a)
	if err != nil {
		return Meta{}, err
	}

	key := path.Join(blobPrefix, a.Version+".json")
	if err := s.Blobs.Put(ctx, key, data); err != nil {
		return Meta{}, fmt.Errorf("store artifact blob: %w", err)
	}

	meta := Meta{
		Version:          a.Version,
		StorageKey:       key,
		ComponentClasses: len(a.ComponentStage.Classes),
		VocabularySize:   a.Vectorizer.Size(),
		TrainingRows:     a.TrainingRows,
		TrainedAt:        a.TrainedAt,
		CreatedAt:        s.Now().UTC(),
	}
	if a.CategoryStage != nil {
		meta.CategoryClasses = len(a.CategoryStage.Classes)
	}
	if err := s.Repo.Save(ctx, meta); err != nil {
		return Meta{}, fmt.Errorf("save artifact metadata: %w", err)
	}
	if err := s.Repo.Activate(ctx, a.Version); err != nil {
		return Meta{}, fmt.Errorf("activate artifact: %w", err)
	}
	meta.Active = true

	telemetry.Info("artifacts.published", map[string]any{
		"version":       meta.Version,
		"training_rows": meta.TrainingRows,
		"vocabulary":    meta.VocabularySize,
	})
	return meta, nil
}

// LoadActive fetches and decodes the active artifact. Returns ErrNotFound
// when no version has been published yet.
func (s *Service) LoadActive(ctx context.Context) (*classify.Artifact, error) {
	meta, err := s.Repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.Blobs.Get(ctx, meta.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("fetch artifact blob %s: %w", meta.StorageKey, err)
	}
	return classify.DecodeArtifact(data)
}

// ActiveVersion returns the active version id, or "" when none is active.
func (s *Service) ActiveVersion(ctx context.Context) (string, error) {
	meta, err := s.Repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return meta.Version, nil
}
