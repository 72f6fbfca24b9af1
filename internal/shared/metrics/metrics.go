package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	recommendRuleTotal         atomic.Uint64
	recommendHierarchicalTotal atomic.Uint64
	recommendFlatTotal         atomic.Uint64
	recommendRejectedTotal     atomic.Uint64
	feedbackSavedTotal         atomic.Uint64
	feedbackFailedTotal        atomic.Uint64
	modelSwapTotal             atomic.Uint64

	recommendDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500})
)

// IncRecommend increments the recommendation counter for the given prediction source.
func IncRecommend(source string) {
	switch source {
	case "rule":
		recommendRuleTotal.Add(1)
	case "hierarchical_ml":
		recommendHierarchicalTotal.Add(1)
	case "flat_ml":
		recommendFlatTotal.Add(1)
	}
}

// IncRecommendRejected increments the rejected-input counter.
func IncRecommendRejected() {
	recommendRejectedTotal.Add(1)
}

// IncFeedbackSaved increments the saved-feedback counter.
func IncFeedbackSaved() {
	feedbackSavedTotal.Add(1)
}

// IncFeedbackFailed increments the failed-feedback-write counter.
func IncFeedbackFailed() {
	feedbackFailedTotal.Add(1)
}

// IncModelSwap increments the artifact swap counter.
func IncModelSwap() {
	modelSwapTotal.Add(1)
}

// ObserveRecommendDurationMs records a recommendation duration in milliseconds.
func ObserveRecommendDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	recommendDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommend_rule_total", "Recommendations resolved by the rule engine", recommendRuleTotal.Load())
	writeCounter(&buf, "recommend_hierarchical_total", "Recommendations resolved by the hierarchical classifier", recommendHierarchicalTotal.Load())
	writeCounter(&buf, "recommend_flat_total", "Recommendations resolved by the flat fallback classifier", recommendFlatTotal.Load())
	writeCounter(&buf, "recommend_rejected_total", "Recommendation requests rejected as invalid input", recommendRejectedTotal.Load())
	writeCounter(&buf, "feedback_saved_total", "Feedback records appended", feedbackSavedTotal.Load())
	writeCounter(&buf, "feedback_failed_total", "Feedback record writes that failed", feedbackFailedTotal.Load())
	writeCounter(&buf, "model_swap_total", "Model artifact swaps", modelSwapTotal.Load())
	writeHistogram(&buf, "recommend_duration_ms", "Recommendation duration in milliseconds", recommendDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
