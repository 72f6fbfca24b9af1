// Package artifacts manages versioned model artifact storage: the blob
// itself lives in object storage, the metadata and the active pointer live
// in the repo. Old versions are retained for rollback; at most one version
// is active at a time.
package artifacts

import "time"

// Meta describes one stored artifact version.
type Meta struct {
	Version          string    `json:"version"`
	StorageKey       string    `json:"storage_key"`
	CategoryClasses  int       `json:"category_classes"`
	ComponentClasses int       `json:"component_classes"`
	VocabularySize   int       `json:"vocabulary_size"`
	TrainingRows     int       `json:"training_rows"`
	Active           bool      `json:"active"`
	TrainedAt        time.Time `json:"trained_at"`
	CreatedAt        time.Time `json:"created_at"`
}
