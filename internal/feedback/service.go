package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hardware-advisor/internal/shared/metrics"
)

// Record channels.
const (
	ChannelUser              = "user"
	ChannelAutoLowConfidence = "auto_low_confidence"
)

// Service validates and appends feedback records.
type Service struct {
	Repo Repo
	// KnownLabel reports whether a component label exists in the catalog.
	KnownLabel func(label string) bool
	Now        func() time.Time
}

// NewService wires a feedback service.
func NewService(repo Repo, knownLabel func(string) bool) *Service {
	return &Service{Repo: repo, KnownLabel: knownLabel, Now: time.Now}
}

// SubmitInput is a user-submitted feedback entry. Source names where the
// judged prediction came from, as reported by the recommend response.
type SubmitInput struct {
	UserText         string
	PredictedLabel   string
	Confidence       float64
	UserCorrectLabel string
	Source           string
}

// Submit validates and appends a user feedback record, returning the total
// record count after the append. A record whose correction differs from the
// prediction is flagged for review.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (int, error) {
	in.UserText = strings.TrimSpace(in.UserText)
	in.PredictedLabel = strings.TrimSpace(in.PredictedLabel)
	in.UserCorrectLabel = strings.TrimSpace(in.UserCorrectLabel)
	in.Source = strings.TrimSpace(in.Source)

	if in.UserText == "" {
		return 0, fmt.Errorf("%w: user_text is required", ErrInvalidInput)
	}
	if in.PredictedLabel == "" {
		return 0, fmt.Errorf("%w: predicted_label is required", ErrInvalidInput)
	}
	if in.Source == "" {
		return 0, fmt.Errorf("%w: source is required", ErrInvalidInput)
	}
	if !s.KnownLabel(in.PredictedLabel) {
		return 0, fmt.Errorf("%w: unknown component %q", ErrInvalidInput, in.PredictedLabel)
	}
	if in.UserCorrectLabel != "" && !s.KnownLabel(in.UserCorrectLabel) {
		return 0, fmt.Errorf("%w: unknown component %q", ErrInvalidInput, in.UserCorrectLabel)
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		return 0, fmt.Errorf("%w: confidence must be within [0, 1]", ErrInvalidInput)
	}

	rec := Record{
		ID:               uuid.NewString(),
		UserText:         in.UserText,
		PredictedLabel:   in.PredictedLabel,
		Confidence:       in.Confidence,
		UserCorrectLabel: in.UserCorrectLabel,
		Source:           in.Source,
		Channel:          ChannelUser,
		CreatedAt:        s.Now().UTC(),
	}
	rec.NeedsReview = rec.Corrected()

	if err := s.Repo.Append(ctx, rec); err != nil {
		metrics.IncFeedbackFailed()
		return 0, err
	}
	metrics.IncFeedbackSaved()
	return s.Repo.Count(ctx)
}

// AutoRecord appends a system-solicited record for a low-confidence
// prediction. There is no user verdict yet, so it never needs review.
func (s *Service) AutoRecord(ctx context.Context, userText, predictedLabel, source string, confidence float64) error {
	rec := Record{
		ID:             uuid.NewString(),
		UserText:       strings.TrimSpace(userText),
		PredictedLabel: predictedLabel,
		Confidence:     confidence,
		Source:         source,
		Channel:        ChannelAutoLowConfidence,
		CreatedAt:      s.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, rec); err != nil {
		metrics.IncFeedbackFailed()
		return err
	}
	metrics.IncFeedbackSaved()
	return nil
}

// Count returns the total number of stored feedback records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
