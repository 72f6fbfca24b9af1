package classify

import "sort"

// Prediction sources reported to callers and logged with each request.
const (
	SourceHierarchical = "hierarchical_ml"
	SourceFlat         = "flat_ml"
)

// maxAlternatives bounds the ranked list returned with a prediction.
const maxAlternatives = 5

// Scored is one ranked component candidate.
type Scored struct {
	Label      string
	Confidence float64
}

// Prediction is the classifier's answer for one input text. Alternatives are
// sorted by descending confidence and always lead with the primary
// component, so Alternatives[0] mirrors Component and Confidence.
type Prediction struct {
	Component    string
	Category     string
	Confidence   float64
	Source       string
	Alternatives []Scored
}

// Classify runs two-stage inference: predict the category, filter the
// component distribution down to that category, and renormalize so the
// surviving probabilities sum to 1. An artifact without a category stage
// degrades to the flat component distribution. If the category filter
// removes every component (a category with no mapped components), the
// unfiltered distribution is used instead.
func (a *Artifact) Classify(text string) Prediction {
	counts := a.Vectorizer.Counts(text)
	compProbs := a.ComponentStage.Probabilities(counts)

	if a.CategoryStage == nil {
		return a.rank(compProbs, "", SourceFlat)
	}

	catProbs := a.CategoryStage.Probabilities(counts)
	category := a.CategoryStage.Classes[argmax(catProbs)]

	filtered := make([]float64, len(compProbs))
	var sum float64
	for i, label := range a.ComponentStage.Classes {
		if a.ComponentCategory[label] == category {
			filtered[i] = compProbs[i]
			sum += compProbs[i]
		}
	}
	if sum <= 0 {
		return a.rank(compProbs, category, SourceHierarchical)
	}
	for i := range filtered {
		filtered[i] /= sum
	}
	return a.rank(filtered, category, SourceHierarchical)
}

func (a *Artifact) rank(probs []float64, category, source string) Prediction {
	ranked := make([]Scored, 0, len(probs))
	for i, p := range probs {
		if p > 0 {
			ranked = append(ranked, Scored{Label: a.ComponentStage.Classes[i], Confidence: p})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Label < ranked[j].Label
	})
	if len(ranked) > maxAlternatives {
		ranked = ranked[:maxAlternatives]
	}

	top := ranked[0]
	return Prediction{
		Component:    top.Label,
		Category:     category,
		Confidence:   top.Confidence,
		Source:       source,
		Alternatives: ranked,
	}
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
