package report

import (
	"bytes"
	"testing"
	"time"

	"asdscreen/internal/model"
	"asdscreen/internal/recommend"
	"asdscreen/internal/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(uploadsDir string) *PDFRenderer {
	r := NewPDFRenderer(uploadsDir)
	// Uncompressed streams keep the text assertable; pinned clock keeps
	// repeated renders byte-identical.
	r.Compress = false
	r.Now = func() time.Time {
		return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	}
	return r
}

func testAssessment() *model.Assessment {
	return &model.Assessment{
		ID:        "11111111-2222-3333-4444-555555555555",
		Timestamp: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		Demographic: model.DemographicData{
			Name: "Alex", Age: 7, Gender: 1, Ethnicity: 2,
			Country: "Canada", Jaundice: 1, FamilyHistory: 0, Respondent: "Parent",
		},
		Behavioral: model.BehavioralData{
			A1Score: 1, A2Score: 0, A3Score: 1, A4Score: 0, A5Score: 1,
			A6Score: 0, A7Score: 1, A8Score: 0, A9Score: 1, A10Score: 0,
		},
		Prediction:  1,
		Probability: 0.72,
		Confidence:  0.72,
		RiskLevel:   "High",
	}
}

func TestRenderFullRecord(t *testing.T) {
	r := testRenderer(t.TempDir())
	a := testAssessment()

	doc, err := r.Render(a, recommend.ForLevel(risk.High))
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	// Ten AQ-10 rows in the fixed question order.
	for _, q := range Questions {
		assert.Contains(t, string(doc), q.Label)
	}
	assert.Contains(t, string(doc), "Risk Level:")
	assert.Contains(t, string(doc), "High")
	assert.Contains(t, string(doc), "72.0%")
	// MultiCell wraps at spaces, so only assert single tokens from the
	// disclaimer body.
	assert.Contains(t, string(doc), "IMPORTANT MEDICAL DISCLAIMER")
	assert.Contains(t, string(doc), "doctor-patient")
	assert.Contains(t, string(doc), a.ID)
	assert.Contains(t, string(doc), "Subject Name: Alex")
}

func TestRenderDeterministic(t *testing.T) {
	r := testRenderer(t.TempDir())
	a := testAssessment()
	recs := recommend.ForLevel(risk.High)

	first, err := r.Render(a, recs)
	require.NoError(t, err)
	second, err := r.Render(a, recs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderWithoutImageReference(t *testing.T) {
	r := testRenderer(t.TempDir())
	a := testAssessment()
	a.ImageFilename = ""

	_, err := r.Render(a, recommend.ForLevel(risk.High))
	assert.NoError(t, err)
}

func TestRenderMissingImageFileSkippedSilently(t *testing.T) {
	r := testRenderer(t.TempDir())
	a := testAssessment()
	a.ImageFilename = "does-not-exist.png"

	doc, err := r.Render(a, recommend.ForLevel(risk.High))
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestRenderPartialRecordUsesDefaults(t *testing.T) {
	r := testRenderer(t.TempDir())
	partial := &model.Assessment{ID: "partial-record"}

	doc, err := r.Render(partial, recommend.ForLevel(risk.Low))
	require.NoError(t, err)

	assert.Contains(t, string(doc), "Unknown")
	assert.Contains(t, string(doc), "Not provided")
	assert.Contains(t, string(doc), "0 years")
}
