package predictor

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/mediassist/mediassist-api/consts"
)

const logPrefix = "predictor"

var (
	ErrUnknownDisease = fmt.Errorf("unknown disease")
)

// FeatureLengthError reports a feature vector whose length does not
// match the disease's field schema.
type FeatureLengthError struct {
	Disease  string
	Expected int
	Actual   int
}

func (e *FeatureLengthError) Error() string {
	return fmt.Sprintf("Invalid or incomplete features list. Expected %d values.", e.Expected)
}

// Classifier is a pretrained binary risk classifier. The model itself
// is opaque: it is fitted offline and only evaluated here.
type Classifier interface {
	Predict(features []float64) (bool, error)
}

// LinearClassifier evaluates a linear decision function exported from
// an offline training run: high risk iff w·x + b > 0.
type LinearClassifier struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (c *LinearClassifier) Predict(features []float64) (bool, error) {
	if len(features) != len(c.Weights) {
		return false, fmt.Errorf("feature count %d does not match model dimension %d",
			len(features), len(c.Weights))
	}

	score := c.Intercept
	for i, w := range c.Weights {
		score += w * features[i]
	}
	return score > 0, nil
}

// Registry maps each disease kind to its field schema and classifier.
type Registry struct {
	classifiers map[string]Classifier
}

// NewRegistry builds a registry from explicit classifiers. Every
// disease in the map must be a supported kind.
func NewRegistry(classifiers map[string]Classifier) (*Registry, error) {
	for disease := range classifiers {
		if !consts.ValidDisease(disease) {
			return nil, fmt.Errorf("classifier registered for unsupported disease %q", disease)
		}
	}

	return &Registry{classifiers: classifiers}, nil
}

// LoadRegistry reads one model file per supported disease from dir,
// named {disease}_model.json. All four models must be present.
func LoadRegistry(dir string) (*Registry, error) {
	classifiers := make(map[string]Classifier)

	for _, disease := range consts.Diseases() {
		path := filepath.Join(dir, fmt.Sprintf("%s_model.json", disease))
		d, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load model for %s: %w", disease, err)
		}

		var c LinearClassifier
		if err := json.Unmarshal(d, &c); err != nil {
			return nil, fmt.Errorf("parse model for %s: %w", disease, err)
		}

		if len(c.Weights) != len(consts.FieldsFor(disease)) {
			return nil, fmt.Errorf("model for %s has %d weights, schema expects %d",
				disease, len(c.Weights), len(consts.FieldsFor(disease)))
		}

		classifiers[disease] = &c

		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"disease": disease,
			"dim":     len(c.Weights),
		}).Info("loaded prediction model")
	}

	return NewRegistry(classifiers)
}

// Predict dispatches a completed feature vector to the classifier for
// the given disease. The vector length must match the disease's field
// schema exactly.
func (r *Registry) Predict(disease string, features []float64) (bool, error) {
	if !consts.ValidDisease(disease) {
		return false, ErrUnknownDisease
	}

	expected := len(consts.FieldsFor(disease))
	if len(features) != expected {
		return false, &FeatureLengthError{
			Disease:  disease,
			Expected: expected,
			Actual:   len(features),
		}
	}

	c, ok := r.classifiers[disease]
	if !ok {
		return false, ErrUnknownDisease
	}

	return c.Predict(features)
}

// Count returns the number of registered classifiers.
func (r *Registry) Count() int {
	return len(r.classifiers)
}
