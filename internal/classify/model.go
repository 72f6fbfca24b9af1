package classify

import (
	"errors"
	"math"
)

// Model is a multinomial naive Bayes classifier over sparse term counts.
// Likelihoods use Laplace smoothing so unseen terms never zero out a class.
type Model struct {
	Classes []string `json:"classes"`
	// LogPrior[c] is log P(class c).
	LogPrior []float64 `json:"log_prior"`
	// LogLikelihood[c][t] is log P(term t | class c).
	LogLikelihood [][]float64 `json:"log_likelihood"`
}

// TrainModel fits a model from sparse term-count vectors and their class
// labels. labels[i] indexes classes. vocabSize is the fitted vocabulary size.
func TrainModel(classes []string, vectors []map[int]float64, labels []int, vocabSize int) (*Model, error) {
	if len(classes) == 0 {
		return nil, errors.New("classify: no classes")
	}
	if len(vectors) != len(labels) {
		return nil, errors.New("classify: vector/label length mismatch")
	}
	if len(vectors) == 0 {
		return nil, errors.New("classify: no training vectors")
	}

	classCounts := make([]float64, len(classes))
	termCounts := make([][]float64, len(classes))
	termTotals := make([]float64, len(classes))
	for c := range classes {
		termCounts[c] = make([]float64, vocabSize)
	}

	for i, vec := range vectors {
		c := labels[i]
		if c < 0 || c >= len(classes) {
			return nil, errors.New("classify: label out of range")
		}
		classCounts[c]++
		for idx, n := range vec {
			if idx < 0 || idx >= vocabSize {
				return nil, errors.New("classify: term index out of range")
			}
			termCounts[c][idx] += n
			termTotals[c] += n
		}
	}

	m := &Model{
		Classes:       classes,
		LogPrior:      make([]float64, len(classes)),
		LogLikelihood: make([][]float64, len(classes)),
	}
	total := float64(len(vectors))
	for c := range classes {
		// Classes absent from the corpus still get a smoothed prior so
		// inference never divides by zero.
		m.LogPrior[c] = math.Log((classCounts[c] + 1) / (total + float64(len(classes))))
		m.LogLikelihood[c] = make([]float64, vocabSize)
		denom := termTotals[c] + float64(vocabSize)
		for t := 0; t < vocabSize; t++ {
			m.LogLikelihood[c][t] = math.Log((termCounts[c][t] + 1) / denom)
		}
	}
	return m, nil
}

// Probabilities returns P(class | counts) for every class, computed from the
// log-joint with a max-shifted softmax for numeric stability. The result sums
// to 1.
func (m *Model) Probabilities(counts map[int]float64) []float64 {
	logJoint := make([]float64, len(m.Classes))
	for c := range m.Classes {
		score := m.LogPrior[c]
		for idx, n := range counts {
			if idx < len(m.LogLikelihood[c]) {
				score += n * m.LogLikelihood[c][idx]
			}
		}
		logJoint[c] = score
	}

	max := logJoint[0]
	for _, s := range logJoint[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	probs := make([]float64, len(logJoint))
	for c, s := range logJoint {
		probs[c] = math.Exp(s - max)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}
