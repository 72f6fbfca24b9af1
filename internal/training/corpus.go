// Package training builds model artifacts from the labeled corpus merged
// with accumulated feedback. It runs out-of-band, never on the request path.
package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"hardware-advisor/internal/feedback"
	"hardware-advisor/internal/shared/util"
)

// Example is one labeled training row.
type Example struct {
	Text  string
	Label string
}

// LoadCorpus reads a CSV corpus with a user_text,component_label header.
// Blank rows are skipped.
func LoadCorpus(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return readCorpus(f)
}

func readCorpus(r io.Reader) ([]Example, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}
	if len(header) != 2 || strings.TrimSpace(header[0]) != "user_text" || strings.TrimSpace(header[1]) != "component_label" {
		return nil, fmt.Errorf("unexpected corpus header %v, want [user_text component_label]", header)
	}

	var out []Example
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus row: %w", err)
		}
		text := strings.TrimSpace(row[0])
		label := strings.TrimSpace(row[1])
		if text == "" || label == "" {
			continue
		}
		out = append(out, Example{Text: text, Label: label})
	}
	return out, nil
}

// MergeFeedback folds feedback records into the corpus. The label is the
// user's correction when present, otherwise the confirmed prediction.
// Duplicate (text, label) pairs are dropped, keeping first occurrence.
func MergeFeedback(corpus []Example, records []feedback.Record) []Example {
	merged := make([]Example, 0, len(corpus)+len(records))
	seen := make(map[string]bool, len(corpus)+len(records))

	add := func(ex Example) {
		key := util.NormalizeText(ex.Text) + "\x00" + ex.Label
		if seen[key] {
			return
		}
		seen[key] = true
		merged = append(merged, ex)
	}

	for _, ex := range corpus {
		add(ex)
	}
	for _, rec := range records {
		if strings.TrimSpace(rec.UserText) == "" {
			continue
		}
		add(Example{Text: rec.UserText, Label: rec.TrainingLabel()})
	}
	return merged
}
