package classify

import (
	"math"
	"testing"
	"time"
)

func trainTestArtifact(t *testing.T, withCategoryStage bool) *Artifact {
	t.Helper()

	type row struct {
		text      string
		component string
		category  string
	}
	rows := []row{
		{"pc is very slow when opening programs", "RAM Upgrade", "Performance"},
		{"computer slow and freezes with many tabs open", "RAM Upgrade", "Performance"},
		{"not enough memory for my applications", "RAM Upgrade", "Performance"},
		{"games stutter and frame rate is terrible", "GPU Upgrade", "Performance"},
		{"low fps in every game I play", "GPU Upgrade", "Performance"},
		{"graphics card too weak for new games", "GPU Upgrade", "Performance"},
		{"pc does not start at all no lights", "PSU Upgrade", "Power"},
		{"computer wont power on anymore", "PSU Upgrade", "Power"},
		{"machine shuts off randomly under load", "PSU Upgrade", "Power"},
		{"boot takes forever on old hard drive", "SSD Upgrade", "Storage"},
		{"windows startup extremely slow disk at 100", "SSD Upgrade", "Storage"},
		{"hard drive very slow loading files", "SSD Upgrade", "Storage"},
	}

	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.text
	}
	vec := BuildVocabulary(texts)

	componentCategory := map[string]string{
		"RAM Upgrade": "Performance",
		"GPU Upgrade": "Performance",
		"PSU Upgrade": "Power",
		"SSD Upgrade": "Storage",
	}

	compClasses := []string{"RAM Upgrade", "GPU Upgrade", "PSU Upgrade", "SSD Upgrade"}
	compIndex := map[string]int{}
	for i, c := range compClasses {
		compIndex[c] = i
	}
	catClasses := []string{"Performance", "Power", "Storage"}
	catIndex := map[string]int{}
	for i, c := range catClasses {
		catIndex[c] = i
	}

	vectors := make([]map[int]float64, len(rows))
	compLabels := make([]int, len(rows))
	catLabels := make([]int, len(rows))
	for i, r := range rows {
		vectors[i] = vec.Counts(r.text)
		compLabels[i] = compIndex[r.component]
		catLabels[i] = catIndex[r.category]
	}

	compModel, err := TrainModel(compClasses, vectors, compLabels, vec.Size())
	if err != nil {
		t.Fatalf("train component stage: %v", err)
	}
	a := &Artifact{
		Version:           "test-version",
		TrainedAt:         time.Now().UTC(),
		TrainingRows:      len(rows),
		Vectorizer:        vec,
		ComponentStage:    compModel,
		ComponentCategory: componentCategory,
	}
	if withCategoryStage {
		catModel, err := TrainModel(catClasses, vectors, catLabels, vec.Size())
		if err != nil {
			t.Fatalf("train category stage: %v", err)
		}
		a.CategoryStage = catModel
	}
	return a
}

func TestProbabilitiesSumToOne(t *testing.T) {
	a := trainTestArtifact(t, true)
	probs := a.ComponentStage.Probabilities(a.Vectorizer.Counts("my pc is slow"))
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum = %v, want 1", sum)
	}
}

func TestHierarchicalRenormalization(t *testing.T) {
	a := trainTestArtifact(t, true)
	pred := a.Classify("low fps and stutter in every game")

	if pred.Source != SourceHierarchical {
		t.Fatalf("source = %q, want %q", pred.Source, SourceHierarchical)
	}
	if pred.Category != "Performance" {
		t.Errorf("category = %q, want Performance", pred.Category)
	}
	if pred.Component != "GPU Upgrade" {
		t.Errorf("component = %q, want GPU Upgrade", pred.Component)
	}

	// Performance holds two components, so the filter keeps both and the
	// renormalized pair must sum to 1.
	if len(pred.Alternatives) != 2 {
		t.Fatalf("alternatives = %v, want the two Performance components", pred.Alternatives)
	}
	var sum float64
	for _, alt := range pred.Alternatives {
		if a.ComponentCategory[alt.Label] != "Performance" {
			t.Errorf("alternative %q escapes the predicted category", alt.Label)
		}
		sum += alt.Confidence
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("renormalized alternatives sum = %v, want 1", sum)
	}
}

func TestPrimaryMirrorsFirstAlternative(t *testing.T) {
	a := trainTestArtifact(t, true)
	for _, text := range []string{
		"pc very slow",
		"no power at all",
		"slow boot old disk",
		"terrible fps in games",
	} {
		pred := a.Classify(text)
		if len(pred.Alternatives) == 0 {
			t.Fatalf("no alternatives for %q", text)
		}
		first := pred.Alternatives[0]
		if first.Label != pred.Component || first.Confidence != pred.Confidence {
			t.Errorf("alternatives[0] = %v, want {%s %v}", first, pred.Component, pred.Confidence)
		}
	}
}

func TestFlatFallbackWithoutCategoryStage(t *testing.T) {
	a := trainTestArtifact(t, false)
	pred := a.Classify("machine shuts off randomly")
	if pred.Source != SourceFlat {
		t.Errorf("source = %q, want %q", pred.Source, SourceFlat)
	}
	if pred.Category != "" {
		t.Errorf("category = %q, want empty for flat prediction", pred.Category)
	}
	if pred.Component != "PSU Upgrade" {
		t.Errorf("component = %q, want PSU Upgrade", pred.Component)
	}
}

func TestEmptyCategoryFilterFallsBackToUnfiltered(t *testing.T) {
	a := trainTestArtifact(t, true)
	// Detach every component from its category so the filter removes all of
	// them. The prediction must then come from the unfiltered distribution.
	a.ComponentCategory = map[string]string{}

	pred := a.Classify("pc very slow opening programs")
	if pred.Source != SourceHierarchical {
		t.Errorf("source = %q, want %q", pred.Source, SourceHierarchical)
	}
	if pred.Component != "RAM Upgrade" {
		t.Errorf("component = %q, want RAM Upgrade from unfiltered distribution", pred.Component)
	}
	var sum float64
	for _, alt := range pred.Alternatives {
		sum += alt.Confidence
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("unfiltered alternatives sum = %v, want 1", sum)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	a := trainTestArtifact(t, true)
	first := a.Classify("pc is slow and freezes")
	second := a.Classify("pc is slow and freezes")

	if first.Component != second.Component || first.Confidence != second.Confidence {
		t.Errorf("predictions differ: %v vs %v", first, second)
	}
	if len(first.Alternatives) != len(second.Alternatives) {
		t.Fatalf("alternative counts differ: %d vs %d", len(first.Alternatives), len(second.Alternatives))
	}
	for i := range first.Alternatives {
		if first.Alternatives[i] != second.Alternatives[i] {
			t.Errorf("alternative %d differs: %v vs %v", i, first.Alternatives[i], second.Alternatives[i])
		}
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	a := trainTestArtifact(t, true)
	data, err := EncodeArtifact(a)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeArtifact(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Version != a.Version {
		t.Errorf("version = %q, want %q", decoded.Version, a.Version)
	}
	orig := a.Classify("no power at all")
	restored := decoded.Classify("no power at all")
	if orig.Component != restored.Component || math.Abs(orig.Confidence-restored.Confidence) > 1e-12 {
		t.Errorf("decoded artifact predicts %v, original predicts %v", restored, orig)
	}
}

func TestDecodeRejectsInvalidArtifacts(t *testing.T) {
	if _, err := DecodeArtifact([]byte("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := DecodeArtifact([]byte(`{"format":99}`)); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := DecodeArtifact([]byte(`{"format":1,"vectorizer":{"vocabulary":{}}}`)); err == nil {
		t.Error("expected error for empty vocabulary")
	}
}

func TestProviderSwap(t *testing.T) {
	p := NewProvider(nil)
	if p.Active() != nil {
		t.Fatal("expected nil artifact before any swap")
	}
	a := trainTestArtifact(t, true)
	p.Swap(a)
	if p.Active() != a {
		t.Error("active artifact not updated after swap")
	}
}

func TestTrainModelValidation(t *testing.T) {
	if _, err := TrainModel(nil, nil, nil, 0); err == nil {
		t.Error("expected error for empty classes")
	}
	if _, err := TrainModel([]string{"a"}, []map[int]float64{{0: 1}}, []int{5}, 1); err == nil {
		t.Error("expected error for out-of-range label")
	}
	if _, err := TrainModel([]string{"a"}, nil, nil, 1); err == nil {
		t.Error("expected error for empty training set")
	}
}
