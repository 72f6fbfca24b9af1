// Package recommend turns free-text problem descriptions into hardware
// component recommendations. The rule engine is consulted first; when no
// rule fires, the hierarchical classifier decides, and either result passes
// through the composer for augmentation, tiering, grouping, and enrichment.
package recommend

import (
	"sort"

	"hardware-advisor/internal/knowledge"
)

// Prediction source for rule matches. The classifier sources live in
// internal/classify.
const SourceRule = "rule"

// Confidence tiers, response metadata only.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

const (
	// relatedFactor scales the primary confidence for related components
	// merged into the alternatives. Tuned empirically, not load-bearing.
	relatedFactor = 0.8

	maxAlternatives      = 5
	askFeedbackThreshold = 0.5
)

// Candidate is one scored component in a recommendation.
type Candidate struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// CategoryGroup is the alternatives of one category, in confidence order.
type CategoryGroup struct {
	Category   string      `json:"category"`
	Components []Candidate `json:"components"`
}

// Result is a fully composed recommendation.
type Result struct {
	Component         string
	Confidence        float64
	Source            string
	Tier              string
	AskFeedback       bool
	Alternatives      []Candidate
	GroupedByCategory []CategoryGroup
	Definition        string
	WhyUseful         string
	FixingTips        []string
}

// Composer enriches a raw prediction with knowledge-base context.
type Composer struct {
	Catalog *knowledge.Catalog
}

// Compose builds the final result from a raw prediction. alternatives must
// lead with the primary; entries for the same label are deduplicated keeping
// the highest confidence seen.
func (cp *Composer) Compose(primary string, confidence float64, source string, alternatives []Candidate) Result {
	merged := mergeCandidates(primary, confidence, alternatives)

	// Related components from the knowledge base join the list at a reduced
	// confidence. An already-present entry keeps its own, higher or lower.
	if comp, ok := cp.Catalog.Get(primary); ok {
		for _, rel := range comp.Related {
			merged = addIfAbsent(merged, Candidate{Label: rel, Confidence: relatedFactor * confidence})
		}
	}
	rest := merged[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Confidence > rest[j].Confidence
	})
	if len(merged) > maxAlternatives {
		merged = merged[:maxAlternatives]
	}

	res := Result{
		Component:    primary,
		Confidence:   confidence,
		Source:       source,
		Tier:         tierFor(confidence),
		AskFeedback:  confidence < askFeedbackThreshold,
		Alternatives: merged,
	}
	res.GroupedByCategory = cp.group(merged)

	if comp, ok := cp.Catalog.Get(primary); ok {
		res.Definition = comp.Definition
		res.WhyUseful = comp.WhyUseful
		res.FixingTips = append([]string(nil), comp.FixingTips...)
	}
	return res
}

// mergeCandidates dedupes by label keeping the maximum confidence, pins the
// primary first, and orders the rest by descending confidence.
func mergeCandidates(primary string, confidence float64, alternatives []Candidate) []Candidate {
	best := map[string]float64{primary: confidence}
	order := []string{primary}
	for _, alt := range alternatives {
		if prev, seen := best[alt.Label]; seen {
			if alt.Confidence > prev && alt.Label != primary {
				best[alt.Label] = alt.Confidence
			}
			continue
		}
		best[alt.Label] = alt.Confidence
		order = append(order, alt.Label)
	}

	rest := order[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return best[rest[i]] > best[rest[j]]
	})

	out := make([]Candidate, 0, len(order))
	for _, label := range order {
		out = append(out, Candidate{Label: label, Confidence: best[label]})
	}
	return out
}

func addIfAbsent(candidates []Candidate, c Candidate) []Candidate {
	for _, existing := range candidates {
		if existing.Label == c.Label {
			return candidates
		}
	}
	return append(candidates, c)
}

// group partitions candidates by category, preserving relative confidence
// order within each group and ordering groups by first appearance.
func (cp *Composer) group(candidates []Candidate) []CategoryGroup {
	index := map[string]int{}
	var groups []CategoryGroup
	for _, c := range candidates {
		cat := string(cp.Catalog.CategoryOf(c.Label))
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Components = append(groups[i].Components, c)
	}
	return groups
}

func tierFor(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return TierHigh
	case confidence >= 0.4:
		return TierMedium
	default:
		return TierLow
	}
}
