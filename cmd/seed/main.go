// Command seed writes demo model artifacts so the service can run
// without the offline training pipeline. The demo forest is hand
// specified and only suitable for local development.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"asdscreen/config"
	"asdscreen/internal/ml"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := ml.WriteDemoArtifacts(cfg.ModelsDir); err != nil {
		log.Fatalf("failed to write demo artifacts: %v", err)
	}
	log.Printf("demo classifier and scaler written to %s", cfg.ModelsDir)

	// Demo evaluation metrics so /api/model-metrics has content.
	metrics := map[string]interface{}{
		"accuracy":  0.91,
		"precision": 0.89,
		"recall":    0.87,
		"f1":        0.88,
		"confusion_matrix": [][]int{
			{52, 6},
			{7, 47},
		},
	}
	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode demo metrics: %v", err)
	}
	path := filepath.Join(cfg.ModelsDir, "questionnaire_metrics.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write demo metrics: %v", err)
	}
	log.Printf("demo metrics written to %s", path)
}
