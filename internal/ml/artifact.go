package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames inside the models directory. The offline training
// step (scikit-learn random forest + standard scaler) exports both as
// JSON so the serving process never depends on pickle.
const (
	ModelFile  = "asd_classifier.json"
	ScalerFile = "scaler.json"
)

// ErrModelUnavailable is returned when the trained artifacts cannot be
// located or parsed. This is a startup/config problem: the operator must
// run the offline training step, the request is not retried.
var ErrModelUnavailable = errors.New("model artifacts unavailable")

// Scaler applies per-feature standardization: (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform returns the standardized copy of a feature vector.
func (s *Scaler) Transform(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, x := range features {
		scaled[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return scaled
}

// Tree is one decision tree in flat node-array form, the layout the
// exporter writes from sklearn's tree_ attributes. Node i routes to
// Left[i] when feature value <= Threshold[i], else Right[i]. A node with
// Left[i] == -1 is a leaf and Value[i] holds its class distribution.
type Tree struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"left"`
	Right     []int       `json:"right"`
	Value     [][]float64 `json:"value"`
}

// distribution walks the tree for a scaled vector and returns the
// normalized class distribution at the reached leaf.
func (t *Tree) distribution(scaled []float64) []float64 {
	node := 0
	for t.Left[node] != -1 {
		if scaled[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}

	leaf := t.Value[node]
	total := 0.0
	for _, v := range leaf {
		total += v
	}
	dist := make([]float64, len(leaf))
	if total > 0 {
		for i, v := range leaf {
			dist[i] = v / total
		}
	}
	return dist
}

// Forest is the exported tree ensemble. Class order is pinned by the
// exporter: index 0 = negative, index 1 = positive (ASD).
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// loadArtifacts reads and validates the forest and scaler from dir.
func loadArtifacts(dir string) (*Forest, *Scaler, error) {
	var forest Forest
	if err := readJSON(filepath.Join(dir, ModelFile), &forest); err != nil {
		return nil, nil, err
	}
	var scaler Scaler
	if err := readJSON(filepath.Join(dir, ScalerFile), &scaler); err != nil {
		return nil, nil, err
	}

	if forest.NumFeatures != NumFeatures {
		return nil, nil, fmt.Errorf("%w: model expects %d features, service uses %d",
			ErrModelUnavailable, forest.NumFeatures, NumFeatures)
	}
	if len(forest.Trees) == 0 {
		return nil, nil, fmt.Errorf("%w: forest has no trees", ErrModelUnavailable)
	}
	if len(scaler.Mean) != NumFeatures || len(scaler.Scale) != NumFeatures {
		return nil, nil, fmt.Errorf("%w: scaler length mismatch", ErrModelUnavailable)
	}
	for i, s := range scaler.Scale {
		if s == 0 {
			return nil, nil, fmt.Errorf("%w: zero scale at feature %d", ErrModelUnavailable, i)
		}
	}

	return &forest, &scaler, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s missing", ErrModelUnavailable, filepath.Base(path))
		}
		return fmt.Errorf("%w: read %s: %v", ErrModelUnavailable, filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrModelUnavailable, filepath.Base(path), err)
	}
	return nil
}
