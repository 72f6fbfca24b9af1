// Package feedback stores user verdicts on recommendations. The log is
// append-only: retraining reads every record ever written, so records are
// never updated or deleted.
package feedback

import "time"

// Record is one feedback entry. UserCorrectLabel is empty when the user
// confirmed the prediction; when set, it names the component the user says
// was actually at fault. Source carries the provenance of the prediction
// being judged ("rule", "hierarchical_ml", "flat_ml"); Channel records how
// the entry arrived, a user submission or an automatic low-confidence
// solicitation.
type Record struct {
	ID               string    `json:"id"`
	UserText         string    `json:"user_text"`
	PredictedLabel   string    `json:"predicted_label"`
	Confidence       float64   `json:"confidence"`
	UserCorrectLabel string    `json:"user_correct_label,omitempty"`
	Source           string    `json:"source"`
	Channel          string    `json:"channel"`
	NeedsReview      bool      `json:"needs_review"`
	CreatedAt        time.Time `json:"created_at"`
}

// Corrected reports whether the user supplied a different label than the
// prediction.
func (r Record) Corrected() bool {
	return r.UserCorrectLabel != "" && r.UserCorrectLabel != r.PredictedLabel
}

// TrainingLabel returns the label this record contributes to retraining: the
// correction when present, otherwise the confirmed prediction.
func (r Record) TrainingLabel() string {
	if r.UserCorrectLabel != "" {
		return r.UserCorrectLabel
	}
	return r.PredictedLabel
}
