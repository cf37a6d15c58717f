// Package ml implements the ticket classifier adapter. The model is a
// serialized tf-idf + linear artifact produced offline; at runtime it is
// read-only and only scored.
package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// modelArtifact is the on-disk layout of the trained model.
type modelArtifact struct {
	Classes    []string       `json:"classes"`    // category labels
	Vocabulary map[string]int `json:"vocabulary"` // term -> feature index
	Idf        []float64      `json:"idf"`        // per-feature idf weight
	Coef       [][]float64    `json:"coef"`       // per-class feature weights
	Intercept  []float64      `json:"intercept"`  // per-class bias
}

// Classifier assigns a ticket category to normalized text.
type Classifier struct {
	model modelArtifact
}

// NewClassifier loads the model artifact from path.
func NewClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}
	var model modelArtifact
	if err = json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}
	if len(model.Classes) == 0 || len(model.Classes) != len(model.Coef) || len(model.Classes) != len(model.Intercept) {
		return nil, fmt.Errorf("model artifact %s is inconsistent", path)
	}
	for _, row := range model.Coef {
		if len(row) != len(model.Idf) {
			return nil, fmt.Errorf("model artifact %s is inconsistent", path)
		}
	}
	logrus.Infof("Classifier model loaded: %d classes, %d features", len(model.Classes), len(model.Vocabulary))
	return &Classifier{model: model}, nil
}

// Predict returns the best scoring category label for the normalized text.
func (c *Classifier) Predict(text string) (string, error) {
	features := c.vectorize(text)

	best := 0
	bestScore := math.Inf(-1)
	for i, weights := range c.model.Coef {
		score := c.model.Intercept[i]
		for j, value := range features {
			if value != 0 {
				score += weights[j] * value
			}
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return c.model.Classes[best], nil
}

// vectorize builds the l2-normalized tf-idf vector of text.
func (c *Classifier) vectorize(text string) []float64 {
	features := make([]float64, len(c.model.Idf))
	for _, term := range strings.Fields(text) {
		if idx, ok := c.model.Vocabulary[term]; ok && idx < len(features) {
			features[idx] += c.model.Idf[idx]
		}
	}

	var norm float64
	for _, value := range features {
		norm += value * value
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range features {
			features[i] /= norm
		}
	}
	return features
}
