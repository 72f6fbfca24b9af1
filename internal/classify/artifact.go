package classify

import (
	"encoding/json"
	"fmt"
	"time"
)

// artifactFormat is bumped whenever the serialized layout changes
// incompatibly. Decoding rejects artifacts from a different format.
const artifactFormat = 1

// Artifact is a fully self-contained, versioned snapshot of a trained
// classifier: the shared vectorizer, both stages, and the component-to-
// category map frozen from the catalog at training time. Everything needed
// for inference travels inside the artifact so model versions stay
// reproducible even if the live catalog changes later.
type Artifact struct {
	Format            int               `json:"format"`
	Version           string            `json:"version"`
	TrainedAt         time.Time         `json:"trained_at"`
	TrainingRows      int               `json:"training_rows"`
	Vectorizer        *Vectorizer       `json:"vectorizer"`
	CategoryStage     *Model            `json:"category_stage,omitempty"`
	ComponentStage    *Model            `json:"component_stage"`
	ComponentCategory map[string]string `json:"component_category"`
}

// EncodeArtifact serializes an artifact for blob storage.
func EncodeArtifact(a *Artifact) ([]byte, error) {
	a.Format = artifactFormat
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return data, nil
}

// DecodeArtifact parses a stored artifact and validates that it is usable
// for inference.
func DecodeArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if a.Format != artifactFormat {
		return nil, fmt.Errorf("decode artifact: unsupported format %d", a.Format)
	}
	if a.Vectorizer == nil || len(a.Vectorizer.Vocabulary) == 0 {
		return nil, fmt.Errorf("decode artifact %s: missing vectorizer", a.Version)
	}
	if a.ComponentStage == nil || len(a.ComponentStage.Classes) == 0 {
		return nil, fmt.Errorf("decode artifact %s: missing component stage", a.Version)
	}
	return &a, nil
}
