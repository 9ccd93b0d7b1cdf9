package service

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Metrics filenames written by the offline evaluation step.
const (
	questionnaireMetricsFile = "questionnaire_metrics.json"
	imageMetricsFile         = "image_metrics.json"
)

// ModelMetrics holds the precomputed evaluation metrics for the two
// sub-models. Either side is nil when its file is absent or unreadable.
type ModelMetrics struct {
	Questionnaire interface{} `json:"questionnaire"`
	Image         interface{} `json:"image"`
}

// MetricsService serves static model evaluation metrics from disk.
type MetricsService struct {
	modelsDir string
	log       *logrus.Logger
}

// NewMetricsService creates a new metrics service reading from modelsDir.
func NewMetricsService(modelsDir string, log *logrus.Logger) *MetricsService {
	return &MetricsService{modelsDir: modelsDir, log: log}
}

// Load reads both metrics files. Missing or malformed files degrade to
// nil per category, never to an error.
func (s *MetricsService) Load() ModelMetrics {
	return ModelMetrics{
		Questionnaire: s.loadFile(questionnaireMetricsFile),
		Image:         s.loadFile(imageMetricsFile),
	}
}

func (s *MetricsService) loadFile(name string) interface{} {
	path := filepath.Join(s.modelsDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("file", name).Warn("could not read metrics file")
		}
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(sanitizeNonFinite(data), &v); err != nil {
		s.log.WithError(err).WithField("file", name).Warn("could not parse metrics file")
		return nil
	}
	return v
}

// sanitizeNonFinite replaces bare NaN/Infinity/-Infinity tokens with
// null. Python's json writer emits these for non-finite floats even
// though they are not valid JSON, and they must serialize as null on
// the wire.
func sanitizeNonFinite(data []byte) []byte {
	var out bytes.Buffer
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out.WriteByte(c)
			if c == '\\' && i+1 < len(data) {
				i++
				out.WriteByte(data[i])
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out.WriteByte(c)
		case c == 'N' && bytes.HasPrefix(data[i:], []byte("NaN")):
			out.WriteString("null")
			i += 2
		case c == '-' && bytes.HasPrefix(data[i:], []byte("-Infinity")):
			out.WriteString("null")
			i += 8
		case c == 'I' && bytes.HasPrefix(data[i:], []byte("Infinity")):
			out.WriteString("null")
			i += 7
		default:
			out.WriteByte(c)
		}
	}
	return out.Bytes()
}
