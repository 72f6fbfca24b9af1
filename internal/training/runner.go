package training

import (
	"context"
	"fmt"

	"hardware-advisor/internal/artifacts"
	"hardware-advisor/internal/feedback"
	"hardware-advisor/internal/knowledge"
	"hardware-advisor/internal/shared/telemetry"
)

// FeedbackSource reads the full feedback log for a retraining run.
type FeedbackSource interface {
	ReadAll(ctx context.Context) ([]feedback.Record, error)
}

// Runner executes the full retraining procedure: load corpus, merge
// feedback, fit, publish.
type Runner struct {
	CorpusPath string
	Feedback   FeedbackSource
	Artifacts  *artifacts.Service
	Catalog    *knowledge.Catalog
}

// Run retrains on the merged corpus and publishes the resulting artifact as
// the active version. The previous version is kept for rollback.
func (r *Runner) Run(ctx context.Context) (artifacts.Meta, error) {
	corpus, err := LoadCorpus(r.CorpusPath)
	if err != nil {
		return artifacts.Meta{}, err
	}

	var records []feedback.Record
	if r.Feedback != nil {
		records, err = r.Feedback.ReadAll(ctx)
		if err != nil {
			return artifacts.Meta{}, fmt.Errorf("read feedback log: %w", err)
		}
	}
	merged := MergeFeedback(corpus, records)

	telemetry.Info("training.run", map[string]any{
		"corpus_rows":   len(corpus),
		"feedback_rows": len(records),
		"merged_rows":   len(merged),
	})

	artifact, err := Fit(merged, r.Catalog)
	if err != nil {
		return artifacts.Meta{}, err
	}
	return r.Artifacts.Publish(ctx, artifact)
}
