package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteDemoArtifacts writes a small hand-specified forest and scaler to
// dir so the service can run without the offline training pipeline. The
// demo forest votes on each AQ-10 answer plus the jaundice and family
// history flags, which gives a probability that grows with the number of
// positive answers (all zeros lands in the Low tier, all ones in High).
// Intended for local development and tests only.
func WriteDemoArtifacts(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	scaler := Scaler{
		Mean: []float64{
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			28.0, 0.5, 4.0, 0.1, 0.13,
		},
		Scale: []float64{
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			16.0, 0.5, 3.0, 0.3, 0.34,
		},
	}

	forest := Forest{NumFeatures: NumFeatures}

	// One stump per behavioral answer. Thresholds are in scaled space:
	// 0/1 answers standardize to -1/+1, so 0 separates them.
	for f := 0; f < 10; f++ {
		forest.Trees = append(forest.Trees, stump(f, 0.0, [2]float64{8, 2}, [2]float64{2, 8}))
	}
	// Weaker votes on the two clinical history flags.
	forest.Trees = append(forest.Trees, stump(13, 1.3, [2]float64{7, 3}, [2]float64{3, 7}))
	forest.Trees = append(forest.Trees, stump(14, 1.0, [2]float64{7, 3}, [2]float64{3, 7}))

	if err := writeJSON(filepath.Join(dir, ModelFile), forest); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, ScalerFile), scaler)
}

// stump builds a single-split tree: node 0 routes on feature/threshold,
// nodes 1 and 2 are the left and right leaves.
func stump(feature int, threshold float64, left, right [2]float64) Tree {
	return Tree{
		Feature:   []int{feature, -1, -1},
		Threshold: []float64{threshold, 0, 0},
		Left:      []int{1, -1, -1},
		Right:     []int{2, -1, -1},
		Value: [][]float64{
			{0, 0},
			{left[0], left[1]},
			{right[0], right[1]},
		},
	}
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
