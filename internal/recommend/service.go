package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hardware-advisor/internal/classify"
	"hardware-advisor/internal/rules"
	"hardware-advisor/internal/shared/metrics"
	"hardware-advisor/internal/shared/telemetry"
)

// FeedbackSink receives system-solicited records for low-confidence
// predictions. Implemented by the feedback service.
type FeedbackSink interface {
	AutoRecord(ctx context.Context, userText, predictedLabel, source string, confidence float64) error
}

// Service runs the full recommendation pipeline: rules first, classifier
// second, composer last.
type Service struct {
	Rules    *rules.Engine
	Models   *classify.Provider
	Composer *Composer
	Feedback FeedbackSink
}

// NewService wires a recommendation service. feedback may be nil to disable
// auto-solicited records.
func NewService(engine *rules.Engine, models *classify.Provider, composer *Composer, feedback FeedbackSink) *Service {
	return &Service{Rules: engine, Models: models, Composer: composer, Feedback: feedback}
}

// Recommend classifies the problem text and composes the response. Empty
// text is rejected before any classification attempt. When neither a rule
// nor a trained model can decide, ErrModelUnavailable is returned rather
// than a fabricated label.
func (s *Service) Recommend(ctx context.Context, text string) (Result, error) {
	start := time.Now()

	text = strings.TrimSpace(text)
	if text == "" {
		metrics.IncRecommendRejected()
		return Result{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	var res Result
	if m, ok := s.Rules.Match(text); ok {
		alts := make([]Candidate, 0, 1+len(m.Related))
		alts = append(alts, Candidate{Label: m.Component, Confidence: m.Confidence})
		for _, rel := range m.Related {
			alts = append(alts, Candidate{Label: rel, Confidence: relatedFactor * m.Confidence})
		}
		res = s.Composer.Compose(m.Component, m.Confidence, SourceRule, alts)
	} else {
		artifact := s.Models.Active()
		if artifact == nil {
			return Result{}, ErrModelUnavailable
		}
		pred := artifact.Classify(text)
		alts := make([]Candidate, 0, len(pred.Alternatives))
		for _, a := range pred.Alternatives {
			alts = append(alts, Candidate{Label: a.Label, Confidence: a.Confidence})
		}
		res = s.Composer.Compose(pred.Component, pred.Confidence, pred.Source, alts)
	}

	metrics.IncRecommend(res.Source)
	metrics.ObserveRecommendDurationMs(float64(time.Since(start).Milliseconds()))

	if res.AskFeedback && s.Feedback != nil {
		// Low-confidence predictions are recorded for the retraining loop.
		// A failed write never fails the recommendation itself.
		if err := s.Feedback.AutoRecord(ctx, text, res.Component, res.Source, res.Confidence); err != nil {
			telemetry.Warn("feedback.auto_record_failed", map[string]any{
				"error":     err.Error(),
				"component": res.Component,
			})
		}
	}
	return res, nil
}
