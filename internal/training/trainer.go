package training

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hardware-advisor/internal/classify"
	"hardware-advisor/internal/knowledge"
	"hardware-advisor/internal/shared/telemetry"
)

// Fit trains both classifier stages on the examples and wraps them in a new
// versioned artifact. Examples labeled with components missing from the
// catalog are skipped with a warning rather than failing the whole run.
func Fit(examples []Example, catalog *knowledge.Catalog) (*classify.Artifact, error) {
	var usable []Example
	for _, ex := range examples {
		if _, ok := catalog.Get(ex.Label); !ok {
			telemetry.Warn("training.unknown_label", map[string]any{"label": ex.Label})
			continue
		}
		usable = append(usable, ex)
	}
	if len(usable) == 0 {
		return nil, errors.New("training: no usable examples")
	}

	texts := make([]string, len(usable))
	for i, ex := range usable {
		texts[i] = ex.Text
	}
	vec := classify.BuildVocabulary(texts)

	var (
		compClasses []string
		catClasses  []string
	)
	compIndex := map[string]int{}
	catIndex := map[string]int{}
	vectors := make([]map[int]float64, len(usable))
	compLabels := make([]int, len(usable))
	catLabels := make([]int, len(usable))
	for i, ex := range usable {
		if _, ok := compIndex[ex.Label]; !ok {
			compIndex[ex.Label] = len(compClasses)
			compClasses = append(compClasses, ex.Label)
		}
		cat := string(catalog.CategoryOf(ex.Label))
		if _, ok := catIndex[cat]; !ok {
			catIndex[cat] = len(catClasses)
			catClasses = append(catClasses, cat)
		}
		vectors[i] = vec.Counts(ex.Text)
		compLabels[i] = compIndex[ex.Label]
		catLabels[i] = catIndex[cat]
	}

	compModel, err := classify.TrainModel(compClasses, vectors, compLabels, vec.Size())
	if err != nil {
		return nil, fmt.Errorf("fit component stage: %w", err)
	}
	catModel, err := classify.TrainModel(catClasses, vectors, catLabels, vec.Size())
	if err != nil {
		return nil, fmt.Errorf("fit category stage: %w", err)
	}

	return &classify.Artifact{
		Version:           uuid.NewString(),
		TrainedAt:         time.Now().UTC(),
		TrainingRows:      len(usable),
		Vectorizer:        vec,
		CategoryStage:     catModel,
		ComponentStage:    compModel,
		ComponentCategory: catalog.ComponentCategoryMap(),
	}, nil
}
