// Package ml wraps the pre-trained ASD classifier and feature scaler.
// Artifacts are loaded once at startup and are read-only afterwards, so
// a Predictor is safe for unlimited concurrent use.
package ml

import (
	"fmt"

	"asdscreen/internal/model"
)

// NumFeatures is the fixed length of the input vector.
const NumFeatures = 15

// FeatureOrder pins the input vector layout. Reordering silently
// corrupts predictions, so every caller must build vectors through
// FeatureVector rather than by hand.
var FeatureOrder = [NumFeatures]string{
	"a1_score", "a2_score", "a3_score", "a4_score", "a5_score",
	"a6_score", "a7_score", "a8_score", "a9_score", "a10_score",
	"age", "gender", "ethnicity", "jaundice", "family_history",
}

// Prediction is the classifier output for one submission.
type Prediction struct {
	Label       int     `json:"prediction"`
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"`
}

// Predictor runs inference against the loaded artifacts.
type Predictor interface {
	Predict(features []float64) (Prediction, error)
}

type forestPredictor struct {
	forest *Forest
	scaler *Scaler
}

// Load reads the classifier and scaler artifacts from dir. A missing or
// malformed artifact yields ErrModelUnavailable.
func Load(dir string) (Predictor, error) {
	forest, scaler, err := loadArtifacts(dir)
	if err != nil {
		return nil, err
	}
	return &forestPredictor{forest: forest, scaler: scaler}, nil
}

// FeatureVector encodes one submission in the pinned feature order:
// the ten AQ-10 scores, then age, gender, ethnicity, jaundice and
// family history.
func FeatureVector(d model.DemographicData, b model.BehavioralData) []float64 {
	scores := b.Scores()
	features := make([]float64, 0, NumFeatures)
	for _, s := range scores {
		features = append(features, float64(s))
	}
	features = append(features,
		float64(d.Age),
		float64(d.Gender),
		float64(d.Ethnicity),
		float64(d.Jaundice),
		float64(d.FamilyHistory),
	)
	return features
}

func (p *forestPredictor) Predict(features []float64) (Prediction, error) {
	if len(features) != NumFeatures {
		return Prediction{}, fmt.Errorf("feature vector has %d elements, want %d", len(features), NumFeatures)
	}

	scaled := p.scaler.Transform(features)

	// Average the per-tree leaf distributions across the forest.
	avg := make([]float64, 2)
	for i := range p.forest.Trees {
		dist := p.forest.Trees[i].distribution(scaled)
		for c := 0; c < len(avg) && c < len(dist); c++ {
			avg[c] += dist[c]
		}
	}
	n := float64(len(p.forest.Trees))
	for c := range avg {
		avg[c] /= n
	}

	label := 0
	if avg[1] > avg[0] {
		label = 1
	}
	confidence := avg[0]
	if avg[1] > confidence {
		confidence = avg[1]
	}

	return Prediction{
		Label:       label,
		Probability: avg[1],
		Confidence:  confidence,
	}, nil
}
