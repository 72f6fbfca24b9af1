// Package classify implements the two-stage text classifier that backs
// hardware recommendations: a category stage that narrows the problem domain
// and a component stage whose distribution is filtered and renormalized
// against the predicted category.
package classify

import (
	"strings"

	"hardware-advisor/internal/shared/util"
)

const (
	charGramMin = 3
	charGramMax = 5

	// Character grams share the vocabulary with word grams, so they carry a
	// marker prefix to avoid collisions like the token "the" vs the trigram
	// "the".
	charGramPrefix = "#c:"
)

// Vectorizer maps text onto sparse term-count vectors over a fixed
// vocabulary. The vocabulary is frozen at training time and serialized inside
// the model artifact, so inference across processes stays consistent.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
}

// BuildVocabulary fits a vectorizer on the training texts. Terms are assigned
// indices in first-seen order.
func BuildVocabulary(texts []string) *Vectorizer {
	v := &Vectorizer{Vocabulary: make(map[string]int)}
	for _, text := range texts {
		for _, term := range Terms(text) {
			if _, ok := v.Vocabulary[term]; !ok {
				v.Vocabulary[term] = len(v.Vocabulary)
			}
		}
	}
	return v
}

// Size returns the vocabulary size.
func (v *Vectorizer) Size() int {
	return len(v.Vocabulary)
}

// Counts returns the sparse term-count vector for text. Terms outside the
// vocabulary are dropped.
func (v *Vectorizer) Counts(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range Terms(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}
	return counts
}

// Terms extracts the feature terms of a text: word unigrams and bigrams plus
// character 3..5-grams of each word. Short inputs like "my ps not start"
// produce too few word grams to separate classes, which is what the character
// grams are for.
func Terms(text string) []string {
	words := strings.Fields(util.NormalizeText(text))
	terms := make([]string, 0, len(words)*6)
	for i, w := range words {
		terms = append(terms, w)
		if i+1 < len(words) {
			terms = append(terms, w+" "+words[i+1])
		}
		terms = append(terms, charGrams(w)...)
	}
	return terms
}

func charGrams(word string) []string {
	runes := []rune(word)
	if len(runes) < charGramMin {
		return nil
	}
	var grams []string
	for n := charGramMin; n <= charGramMax && n <= len(runes); n++ {
		for i := 0; i+n <= len(runes); i++ {
			grams = append(grams, charGramPrefix+string(runes[i:i+n]))
		}
	}
	return grams
}
